package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "Remote addr", remote: "10.0.0.7:52100", want: "10.0.0.7"},
		{name: "Forwarded first hop", headers: map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"}, remote: "10.0.0.1:80", want: "203.0.113.9"},
		{name: "Real ip", headers: map[string]string{"X-Real-IP": "198.51.100.4"}, remote: "10.0.0.1:80", want: "198.51.100.4"},
		{name: "Cloudflare", headers: map[string]string{"CF-Connecting-IP": "192.0.2.33"}, remote: "10.0.0.1:80", want: "192.0.2.33"},
		{name: "Remote without port", remote: "10.0.0.8", want: "10.0.0.8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := ClientIP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = GetClientIP(r.Context())
			}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Outside middleware", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, GetClientIP(req.Context()))
	})
}
