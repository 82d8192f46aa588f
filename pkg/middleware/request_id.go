package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/narasux/chemreact/pkg/utils/ctxx"
	"github.com/narasux/chemreact/pkg/utils/ginx"
	"github.com/narasux/chemreact/pkg/utils/uuid"
)

// RequestID 复用客户端传入的 32 位 Request ID，否则生成新的；同时写入 request context 供下层日志使用
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(ginx.RequestIDHeaderKey)

		if requestID == "" || len(requestID) != 32 {
			requestID = uuid.GenUUID4()
		}
		ginx.SetRequestID(c, requestID)
		c.Request = c.Request.WithContext(ctxx.WithRequestID(c.Request.Context(), requestID))
		c.Writer.Header().Set(ginx.RequestIDHeaderKey, requestID)

		c.Next()
	}
}
