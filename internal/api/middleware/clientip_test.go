package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func resolveClientKey(headers map[string]string) string {
	var got string

	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		got = ClientKey(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(httptest.NewRecorder(), req)

	return got
}

func TestClientKey_ForwardedFor(t *testing.T) {
	key := resolveClientKey(map[string]string{"X-Forwarded-For": "1.2.3.4"})
	assert.Equal(t, "1.2.3.4", key)
}

func TestClientKey_ForwardedFor_FirstHop(t *testing.T) {
	// 多级代理时取第一跳
	key := resolveClientKey(map[string]string{"X-Forwarded-For": " 1.2.3.4 , 10.0.0.1, 10.0.0.2"})
	assert.Equal(t, "1.2.3.4", key)
}

func TestClientKey_RealIPFallback(t *testing.T) {
	key := resolveClientKey(map[string]string{"X-Real-IP": "5.6.7.8"})
	assert.Equal(t, "5.6.7.8", key)
}

func TestClientKey_ForwardedForWinsOverRealIP(t *testing.T) {
	key := resolveClientKey(map[string]string{
		"X-Forwarded-For": "1.2.3.4",
		"X-Real-IP":       "5.6.7.8",
	})
	assert.Equal(t, "1.2.3.4", key)
}

func TestClientKey_Unknown(t *testing.T) {
	key := resolveClientKey(nil)
	assert.Equal(t, UnknownClientKey, key)
}
