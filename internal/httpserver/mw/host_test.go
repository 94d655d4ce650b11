package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrSnakeDoc/startpage/internal/logger"
)

func TestEnforceHost(t *testing.T) {
	h := EnforceHost([]string{"start.example.com", "*.lan"}, logger.Nop())(okHandler)

	tests := []struct {
		host string
		want int
	}{
		{"start.example.com", http.StatusNoContent},
		{"START.example.com:1111", http.StatusNoContent},
		{"nas.lan", http.StatusNoContent},
		{"lan", http.StatusForbidden},
		{"evil.com", http.StatusForbidden},
		{"start.example.com.evil.com", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Host = tt.host
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestEnforceHostEmptyIsPassthrough(t *testing.T) {
	h := EnforceHost(nil, logger.Nop())(okHandler)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "anything"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAllowOnlyCIDRS(t *testing.T) {
	h := AllowOnlyCIDRS([]string{"192.168.1.0/24", "10.0.0.7", "garbage"}, false, logger.Nop())(okHandler)

	tests := []struct {
		remote string
		want   int
	}{
		{"192.168.1.42:5000", http.StatusNoContent},
		{"10.0.0.7:5000", http.StatusNoContent},
		{"10.0.0.8:5000", http.StatusForbidden},
		{"[::1]:5000", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.remote, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			req.RemoteAddr = tt.remote
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestAllowOnlyCIDRSTrustsProxyHeader(t *testing.T) {
	h := AllowOnlyCIDRS([]string{"203.0.113.9"}, true, logger.Nop())(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	req.RemoteAddr = "127.0.0.1:9999"
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
