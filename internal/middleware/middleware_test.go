package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inHttp "github.com/freshcart/freshcart/internal/http"
	"github.com/freshcart/freshcart/internal/log"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSecureHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)

	SecureHeaders(okHandler()).ServeHTTP(rec, req)

	expected := map[string]string{
		"Content-Security-Policy": "default-src 'self'",
		"X-Frame-Options":         "SAMEORIGIN",
		"X-Content-Type-Options":  "nosniff",
		"X-XSS-Protection":        "1; mode=block",
		"Referrer-Policy":         "strict-origin-when-cross-origin",
		"Permissions-Policy":      "geolocation=(), microphone=(), camera=(), payment=()",
		"Vary":                    "Accept-Encoding",
	}
	for header, value := range expected {
		assert.Equal(t, value, rec.Header().Get(header), header)
	}
}

func TestLoggingMintsRequestID(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)

	var seen string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.RequestIDFromContext(r.Context())
	})
	Logging(handler).ServeHTTP(rec, req)

	require.NotEmpty(t, seen, "request id should be attached to the request context")
	assert.Equal(t, seen, rec.Header().Get(inHttp.HeaderRequestID))
}

func TestLoggingKeepsProvidedRequestID(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set(inHttp.HeaderRequestID, "req-123")

	Logging(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(inHttp.HeaderRequestID))
}

func TestRecoverPanic(t *testing.T) {
	tests := []struct {
		name  string
		panic func()
	}{
		{name: "error panic", panic: func() { panic(assert.AnError) }},
		{name: "string panic", panic: func() { panic("boom") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/products", nil)

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.panic()
			})
			RecoverPanic(handler).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"error": "Internal server error"}`, rec.Body.String())
		})
	}
}
