package errcode

const (
	// NoErr 无错误
	NoErr = 0

	// InvalidParams 参数不合法
	InvalidParams = 40001
	// UnknownElement 元素不存在
	UnknownElement = 40002
	// NotFound 资源不存在
	NotFound = 40401
	// TooManyRequests 请求过于频繁
	TooManyRequests = 42901

	// Unknown 未知错误
	Unknown = 50001
	// AIUnavailable AI 服务不可用
	AIUnavailable = 50301
)
