package ginx

import (
	"github.com/gin-gonic/gin"

	"github.com/narasux/chemreact/pkg/envs"
)

const (
	// RequestIDKey ...
	RequestIDKey = "requestID"
	// ErrorKey ...
	ErrorKey = "error"
)

// GetRequestID ...
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// SetRequestID ...
func SetRequestID(c *gin.Context, requestID string) {
	c.Set(RequestIDKey, requestID)
}

// GetError ...
func GetError(c *gin.Context) (any, bool) {
	return c.Get(ErrorKey)
}

// SetError ...
func SetError(c *gin.Context, err error) {
	c.Set(ErrorKey, err)
}

// GetClientIP 获取客户端 IP，优先使用反向代理透传的请求头
func GetClientIP(c *gin.Context) string {
	if envs.RealClientIPHeaderKey != "" {
		if ip := c.GetHeader(envs.RealClientIPHeaderKey); ip != "" {
			return ip
		}
	}
	return c.ClientIP()
}
