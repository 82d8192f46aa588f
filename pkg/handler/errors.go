package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/narasux/chemreact/pkg/ai"
	"github.com/narasux/chemreact/pkg/common/errcode"
	"github.com/narasux/chemreact/pkg/logging"
	"github.com/narasux/chemreact/pkg/service"
	"github.com/narasux/chemreact/pkg/utils/ginx"
)

// 将业务错误转换为对应的 HTTP 响应
func respondError(c *gin.Context, err error) {
	var unknownErr *service.UnknownElementsError
	switch {
	case errors.As(err, &unknownErr):
		ginx.SetErrRespWithData(
			c, http.StatusBadRequest, errcode.UnknownElement, err.Error(), gin.H{"unknown": unknownErr.Symbols},
		)
	case errors.Is(err, service.ErrInvalidParams):
		ginx.SetErrResp(c, http.StatusBadRequest, errcode.InvalidParams, service.ParamErrorMessage(err))
	case errors.Is(err, ai.ErrInvalidLevel):
		ginx.SetErrResp(c, http.StatusBadRequest, errcode.InvalidParams, err.Error())
	case errors.Is(err, service.ErrElementNotFound),
		errors.Is(err, service.ErrReactionNotFound),
		errors.Is(err, service.ErrMoleculeNotFound):
		ginx.SetErrResp(c, http.StatusNotFound, errcode.NotFound, err.Error())
	default:
		logging.GetAPILogger().WithField("requestID", ginx.GetRequestID(c)).Errorf("%+v", err)
		ginx.SetErrResp(c, http.StatusInternalServerError, errcode.Unknown, err.Error())
	}
}

// 请求体绑定失败
func respondBindError(c *gin.Context, err error) {
	ginx.SetErrResp(c, http.StatusBadRequest, errcode.InvalidParams, "invalid request body: "+err.Error())
}
