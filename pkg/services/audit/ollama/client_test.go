package ollama

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GenerateReport(t *testing.T) {
	var captured map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))

		_, _ = w.Write([]byte(`{"message": {"content": "{\"leaks\": []}"}, "done": true}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, Model: "qwen3", Token: "secret"})

	report, err := client.GenerateReport(context.Background(), "audit this")
	require.NoError(t, err)
	assert.JSONEq(t, `{"leaks": []}`, string(report))

	assert.Equal(t, "qwen3", captured["model"])
	assert.Equal(t, false, captured["stream"])
	assert.Equal(t, "json", captured["format"])
}

func TestClient_GenerateReport_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	_, err := client.GenerateReport(context.Background(), "audit this")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestClient_GenerateReport_EmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"message": {"content": ""}, "done": true}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	_, err := client.GenerateReport(context.Background(), "audit this")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}
