package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalErrors "github.com/gcbaptista/tfidf-search-engine/internal/errors"
)

func TestSendEngineError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   ErrorCode
	}{
		{
			name:           "missing index",
			err:            internalErrors.NewIndexNotFoundError("books"),
			expectedStatus: http.StatusNotFound,
			expectedCode:   ErrorCodeIndexNotFound,
		},
		{
			name:           "duplicate index",
			err:            internalErrors.NewIndexAlreadyExistsError("books"),
			expectedStatus: http.StatusConflict,
			expectedCode:   ErrorCodeIndexExists,
		},
		{
			name:           "wrapped negative document ID",
			err:            fmt.Errorf("document at position 0: %w", internalErrors.NewDocumentIDError(-1)),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCodeValidationFailed,
		},
		{
			name:           "unexpected failure",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   ErrorCodeIndexingFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Set(requestIDKey, "req-1")

			SendEngineError(c, ErrorCodeIndexingFailed, "add documents", tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var apiErr APIError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
			assert.Equal(t, tt.expectedCode, apiErr.Code)
			assert.Equal(t, "req-1", apiErr.RequestID)
			assert.Contains(t, apiErr.Message, tt.err.Error())
		})
	}
}
