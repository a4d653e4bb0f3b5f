package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// UnknownClientKey 无法识别来源时的兜底标识
// 所有无法识别的客户端共用同一个配额桶（接受的不精确性）
const UnknownClientKey = "unknown"

// ClientKey 从请求头解析客户端标识，用于配额分桶
// 优先 X-Forwarded-For（Nginx 代理）的第一跳，其次 X-Real-IP
func ClientKey(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
		return realIP
	}

	return UnknownClientKey
}
