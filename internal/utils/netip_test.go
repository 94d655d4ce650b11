package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixMatcher(t *testing.T) {
	m, rejected := NewPrefixMatcher([]string{"10.0.0.0/8", " 192.168.1.7 ", "::1", "bogus", ""})

	assert.Equal(t, []string{"bogus"}, rejected)
	assert.False(t, m.IsEmpty())

	tests := []struct {
		ip   string
		want bool
	}{
		{"10.1.2.3", true},
		{"192.168.1.7", true},
		{"192.168.1.8", false},
		{"::1", true},
		{"::ffff:10.0.0.1", true},
		{"not-an-ip", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.Allow(tt.ip), tt.ip)
	}

	empty, _ := NewPrefixMatcher(nil)
	assert.True(t, empty.IsEmpty())
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "127.0.0.1:5555"
	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

	assert.Equal(t, "127.0.0.1", ClientIP(r, false))
	assert.Equal(t, "203.0.113.9", ClientIP(r, true))

	r.Header.Set("CF-Connecting-IP", "198.51.100.4")
	assert.Equal(t, "198.51.100.4", ClientIP(r, true))
}

func TestParseHostNoPort(t *testing.T) {
	assert.Equal(t, "::1", ParseHostNoPort("[::1]:80"))
	assert.Equal(t, "::1", ParseHostNoPort("[::1]"))
	assert.Equal(t, "1.2.3.4", ParseHostNoPort("1.2.3.4"))
	assert.Equal(t, "", ParseHostNoPort(""))
}
