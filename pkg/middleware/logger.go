package middleware

import (
	"bytes"
	"time"

	"github.com/TencentBlueKing/gopkg/stringx"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/narasux/chemreact/pkg/logging"
	"github.com/narasux/chemreact/pkg/utils/ginx"
)

// 请求 / 响应体在日志中保留的最大长度
const maxLoggedBodyLength = 1024

type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

// Write ...
func (w bodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Logger 记录访问日志，出错时附带响应体
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqBody, respBody := "", ""
		if requestBody, err := ginx.ReadRequestBody(c.Request); err == nil {
			reqBody = stringx.Truncate(string(requestBody), maxLoggedBodyLength)
		}

		writer := &bodyLogWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		// 检查错误信息，以手动设置的为主，否则检查 c.Errors
		errStr, hasErr := ginx.GetError(c)
		if !hasErr && len(c.Errors) > 0 {
			errStr = c.Errors.String()
			hasErr = true
		}

		// 统计请求耗时，单位为 ms，限制最小 1ms
		duration := time.Since(start)
		latency := float64(duration/time.Millisecond) + 1

		// 如果没有错误信息，则不关注 respBody
		if hasErr {
			respBody = stringx.Truncate(writer.body.String(), maxLoggedBodyLength)
		}

		fields := logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"params":    stringx.Truncate(c.Request.URL.RawQuery, maxLoggedBodyLength),
			"reqBody":   reqBody,
			"respBody":  respBody,
			"status":    c.Writer.Status(),
			"latency":   latency,
			"requestID": ginx.GetRequestID(c),
			"clientIP":  ginx.GetClientIP(c),
			"error":     errStr,
		}

		logger := logging.GetAccessLogger()
		if hasErr {
			logger.WithFields(fields).Error("-")
		} else {
			logger.WithFields(fields).Info("-")
		}
	}
}
