package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func realIPOf(t *testing.T, remoteAddr string, headers map[string]string) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	var got string
	r := gin.New()
	r.GET("/", RealIP(), func(c *gin.Context) {
		got = c.GetString("real_ip")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestRealIPPublicPeerIgnoresForwardingHeaders(t *testing.T) {
	got := realIPOf(t, "203.0.113.9:4321", map[string]string{
		"X-Forwarded-For":  "10.0.0.1",
		"CF-Connecting-IP": "198.51.100.4",
	})
	assert.Equal(t, "203.0.113.9", got)
}

func TestRealIPPrivatePeerHonorsCloudflareHeader(t *testing.T) {
	got := realIPOf(t, "10.0.0.2:4321", map[string]string{
		"CF-Connecting-IP": "198.51.100.4",
	})
	assert.Equal(t, "198.51.100.4", got)
}

func TestRealIPPrivatePeerHonorsXFFLeftMost(t *testing.T) {
	got := realIPOf(t, "10.0.0.2:4321", map[string]string{
		"X-Forwarded-For": "198.51.100.7, 10.0.0.2",
	})
	assert.Equal(t, "198.51.100.7", got)
}

func TestRealIPPrivatePeerNoHeaders(t *testing.T) {
	got := realIPOf(t, "10.0.0.2:4321", nil)
	assert.Equal(t, "10.0.0.2", got)
}

func TestRealIPBadForwardedValueFallsBack(t *testing.T) {
	got := realIPOf(t, "127.0.0.1:4321", map[string]string{
		"X-Forwarded-For": "not-an-ip",
	})
	assert.Equal(t, "127.0.0.1", got)
}
