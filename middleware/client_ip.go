package middleware

import (
	"net"

	"github.com/gin-gonic/gin"
)

// clientIP resolves the caller's address for rate limiting. Gin's ClientIP
// consults forwarding headers only for peers the engine trusts as proxies,
// so a spoofed X-Forwarded-For from an untrusted peer cannot dodge a limit.
func clientIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}
