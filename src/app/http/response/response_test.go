package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forumapi/src/core/domain"
)

func TestFromDomainError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		wantCode   string
	}{
		{"missing property", domain.NewMissingPropertyError("NEW_THREAD", "title"), http.StatusBadRequest, StatusFail, "NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY"},
		{"wrong type", domain.NewWrongTypeError("NEW_THREAD", "title"), http.StatusBadRequest, StatusFail, "NEW_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION"},
		{"not found", domain.NewNotFoundError("thread"), http.StatusNotFound, StatusFail, "NOT_FOUND"},
		{"forbidden", domain.NewForbiddenError("not owner"), http.StatusForbidden, StatusFail, "FORBIDDEN"},
		{"unauthorized", domain.NewUnauthorizedError("no token"), http.StatusUnauthorized, StatusFail, "UNAUTHORIZED"},
		{"conflict", domain.NewConflictError("taken"), http.StatusConflict, StatusFail, "CONFLICT"},
		{"unknown", errors.New("db is down"), http.StatusInternalServerError, StatusError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			FromDomainError(c, tt.err, "req-1")

			assert.Equal(t, tt.wantStatus, w.Code)
			var body Error
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body.Status)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, "req-1", body.Error.RequestID)
		})
	}
}

func TestOKWithoutData(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	OK(c, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success"}`, w.Body.String())
}
