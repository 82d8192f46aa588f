package ginx

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/narasux/chemreact/pkg/common/errcode"
)

// Response 通用响应体
type Response struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	RequestID string `json:"requestID"`
}

// SetResp 为指定的 gin.Context 设置成功响应数据（建议 200 <= statusCode < 300）
func SetResp(c *gin.Context, statusCode int, data any) {
	// 204 状态码特殊处理
	if statusCode == http.StatusNoContent {
		c.Status(statusCode)
		return
	}
	c.JSON(statusCode, Response{Code: errcode.NoErr, Data: data, RequestID: GetRequestID(c)})
}

// SetErrResp 为指定的 gin.Context 设置错误响应数据，同时记录错误供访问日志使用
func SetErrResp(c *gin.Context, statusCode, code int, message string) {
	SetError(c, errors.New(message))
	c.AbortWithStatusJSON(statusCode, Response{Code: code, Message: message, RequestID: GetRequestID(c)})
}

// SetErrRespWithData 错误响应中携带额外数据（如校验失败的元素列表）
func SetErrRespWithData(c *gin.Context, statusCode, code int, message string, data any) {
	SetError(c, errors.New(message))
	c.AbortWithStatusJSON(statusCode, Response{Code: code, Message: message, Data: data, RequestID: GetRequestID(c)})
}
