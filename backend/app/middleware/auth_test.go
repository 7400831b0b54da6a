package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quora-backend/backend/app/apperr"
	"quora-backend/backend/app/dto"
)

func TestRequireTokenRejectsMissingHeader(t *testing.T) {
	h := RequireToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached without an authorization header")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/question/all", nil))

	assert.Equal(t, apperr.ErrUnauthenticated.Status, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// body must track the sentinel, not a local copy of its strings
	assert.Equal(t, apperr.ErrUnauthenticated.Code, resp.Code)
	assert.Equal(t, apperr.ErrUnauthenticated.Message, resp.Message)
}

func TestRequireTokenStripsBearerPrefix(t *testing.T) {
	var got string
	h := RequireToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetToken(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/question/all", nil)
	req.Header.Set("authorization", "Bearer tok-123")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "tok-123", got)

	req = httptest.NewRequest(http.MethodGet, "/question/all", nil)
	req.Header.Set("authorization", "tok-456")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "tok-456", got)
}
