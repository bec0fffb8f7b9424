package portal

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/de-tools/leak-finder/pkg/models/domain"
)

func TestRespondError_StatusMapping(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "not found",
			err:            fmt.Errorf("resource vm-x: %w", domain.ErrNotFound),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "validation",
			err:            &domain.ValidationError{Field: "hours", Reason: "must be positive"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "analysis",
			err:            &domain.AnalysisError{Provider: "gemini-3-pro-preview", Err: errors.New("429")},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:           "storage",
			err:            &domain.StorageError{Op: "load", Err: errors.New("disk I/O error")},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "unknown",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondError(rec, &logger, tt.err)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}
