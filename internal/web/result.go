package web

import (
	"errors"
	"net/http"

	"gitee.com/flycash/subscription-notification/internal/errs"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// Result 统一的响应结构，Code 为 0 表示成功
type Result struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

// Handler 各个模块的 HTTP 入口
type Handler interface {
	PublicRoutes(server *gin.Engine)
}

func OK(ctx *gin.Context, data any) {
	ctx.JSON(http.StatusOK, Result{Msg: "OK", Data: data})
}

// BadRequest 请求体无法解析
func BadRequest(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, Result{Code: http.StatusBadRequest, Msg: err.Error()})
}

// Fail 按错误类型决定状态码，校验失败是 400，不存在是 404，其余都是 500
func Fail(ctx *gin.Context, err error) {
	code := StatusCode(err)
	if code == http.StatusInternalServerError {
		elog.DefaultLogger.Error("处理请求失败",
			elog.String("path", ctx.FullPath()),
			elog.FieldErr(err))
	}
	ctx.JSON(code, Result{Code: code, Msg: err.Error()})
}

func StatusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrValidation), errors.Is(err, errs.ErrInvalidParameter),
		errors.Is(err, errs.ErrChannelNotSupported):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrTemplateNotFound), errors.Is(err, errs.ErrSettingNotFound),
		errors.Is(err, errs.ErrChannelNotConfigured), errors.Is(err, errs.ErrSubscriptionNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrChannelCredentialMissing):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
