package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c
}

func TestClientIPFromRemoteAddr(t *testing.T) {
	c := newTestContext(t)
	c.Request.RemoteAddr = "203.0.113.7:4321"

	if got := clientIP(c); got != "203.0.113.7" {
		t.Fatalf("expected remote address host, got %q", got)
	}
}

func TestClientIPHonorsForwardingFromTrustedProxy(t *testing.T) {
	c := newTestContext(t)
	c.Request.RemoteAddr = "10.0.0.1:4321"
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	if got := clientIP(c); got != "203.0.113.7" {
		t.Fatalf("expected forwarded client address, got %q", got)
	}
}

func TestClientIPFallsBackToRawRemoteAddr(t *testing.T) {
	c := newTestContext(t)
	c.Request.RemoteAddr = "not-an-ip"

	if got := clientIP(c); got != "not-an-ip" {
		t.Fatalf("expected raw remote address fallback, got %q", got)
	}
}
