package ginx

import (
	"bytes"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// RequestIDHeaderKey ...
const RequestIDHeaderKey = "X-Request-ID"

// ErrNilRequestBody ...
var ErrNilRequestBody = errors.New("request Body is nil")

// ReadRequestBody will return the body in []byte, without change the origin body
func ReadRequestBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, ErrNilRequestBody
	}

	body, err := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, err
}

// ReadRequestBodyString 读取请求体并以字符串返回，不影响后续读取
func ReadRequestBodyString(r *http.Request) string {
	body, err := ReadRequestBody(r)
	if err != nil {
		return ""
	}
	return string(body)
}
