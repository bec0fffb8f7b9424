package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GenerateReport(t *testing.T) {
	var captured map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "/models/gemini-3-pro-preview:generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))

		_, _ = w.Write([]byte(`{
			"candidates": [{
				"content": {"parts": [{"text": "{\"leaks\":"}, {"text": "[]}"}]}
			}]
		}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	report, err := client.GenerateReport(context.Background(), "audit this")
	require.NoError(t, err)
	assert.Equal(t, `{"leaks":[]}`, string(report), "candidate parts concatenate")

	gen, ok := captured["generationConfig"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "application/json", gen["response_mime_type"])
	assert.NotNil(t, gen["response_schema"], "structured output schema attached")
}

func TestClient_GenerateReport_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "http failure",
			status:  http.StatusTooManyRequests,
			body:    `{"error": {"message": "quota"}}`,
			wantMsg: "status 429",
		},
		{
			name:    "api error in 200 body",
			status:  http.StatusOK,
			body:    `{"error": {"message": "model overloaded"}}`,
			wantMsg: "model overloaded",
		},
		{
			name:    "empty candidates",
			status:  http.StatusOK,
			body:    `{"candidates": []}`,
			wantMsg: "no completion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client, err := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
			require.NoError(t, err)

			_, err = client.GenerateReport(context.Background(), "audit this")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestClient_GenerateReport_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	client, err := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = client.GenerateReport(ctx, "audit this")
	assert.Error(t, err)
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}
