// Package ctxx 在 context.Context 中传递请求级别的信息（供 gin 以外的层使用）
package ctxx

import "context"

type ctxKey int

const requestIDKey ctxKey = iota

// WithRequestID ...
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID 获取 Request ID，不存在时返回空字符串
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(requestIDKey).(string)
	return requestID
}
