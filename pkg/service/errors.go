// Package service 元素 / 反应 / 分子相关的业务逻辑
package service

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidParams 请求参数不合法
	ErrInvalidParams = errors.New("invalid params")
	// ErrElementNotFound 元素不存在
	ErrElementNotFound = errors.New("element not found")
	// ErrReactionNotFound 反应不存在
	ErrReactionNotFound = errors.New("reaction not found")
	// ErrMoleculeNotFound 分子不存在
	ErrMoleculeNotFound = errors.New("molecule not found")
)

// UnknownElementsError 提交的元素符号在数据库中不存在
type UnknownElementsError struct {
	Symbols []string
}

func (e *UnknownElementsError) Error() string {
	return fmt.Sprintf("unknown elements: %s", strings.Join(e.Symbols, ", "))
}

// 构造参数错误，错误信息直接返回给调用方
func invalidParams(format string, args ...any) error {
	return errors.WithMessagef(ErrInvalidParams, format, args...)
}

// ParamErrorMessage 取出参数错误中的描述信息（去掉 sentinel 后缀）
func ParamErrorMessage(err error) string {
	msg := err.Error()
	return strings.TrimSuffix(msg, ": "+ErrInvalidParams.Error())
}
