package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// RealIP resolves the client address into the Gin context (key "real_ip")
// for rate limiting and login notifications. Forwarding headers are only
// honored when the direct peer is a loopback or private address, i.e. our
// own proxy; a public peer cannot spoof its address via X-Forwarded-For.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("real_ip", resolveClientIP(c))
		c.Next()
	}
}

func resolveClientIP(c *gin.Context) string {
	peer := peerIP(c.Request.RemoteAddr)
	if peer == nil {
		return c.ClientIP()
	}
	if !peer.IsLoopback() && !peer.IsPrivate() {
		return peer.String()
	}

	// Cloudflare sets the original client here
	if cf := strings.TrimSpace(c.GetHeader("CF-Connecting-IP")); cf != "" {
		if ip := net.ParseIP(cf); ip != nil {
			return ip.String()
		}
	}
	// left-most X-Forwarded-For entry is the original client
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
		if ip := net.ParseIP(first); ip != nil {
			return ip.String()
		}
	}
	return peer.String()
}

func peerIP(remoteAddr string) net.IP {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	return net.ParseIP(host)
}
