package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func authedHandler(t *testing.T, keys map[string]string) (http.Handler, *string) {
	t.Helper()
	var seenClient string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenClient = GetClientFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return APIKeyAuth(keys)(inner), &seenClient
}

func TestAPIKeyAuthDisabledWithoutKeys(t *testing.T) {
	h, _ := authedHandler(t, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/profiles", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKeyAuthRejectsMissingHeader(t *testing.T) {
	h, _ := authedHandler(t, map[string]string{"cli": "secret"})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/profiles", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIKeyAuthRejectsWrongKey(t *testing.T) {
	h, _ := authedHandler(t, map[string]string{"cli": "secret"})

	req := httptest.NewRequest(http.MethodGet, "/v1/profiles", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIKeyAuthAcceptsBearerAndBareKey(t *testing.T) {
	for _, header := range []string{"Bearer secret", "secret"} {
		h, client := authedHandler(t, map[string]string{"cli": "secret"})

		req := httptest.NewRequest(http.MethodGet, "/v1/profiles", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "header %q", header)
		assert.Equal(t, "cli", *client)
	}
}

func TestAPIKeyAuthSkipsProbePaths(t *testing.T) {
	h, _ := authedHandler(t, map[string]string{"cli": "secret"})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
