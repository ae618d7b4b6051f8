package errs

import (
	"errors"
)

// 定义统一的错误类型
var (
	ErrInvalidParameter = errors.New("参数错误")
	ErrValidation       = errors.New("参数校验失败")

	ErrSettingNotFound           = errors.New("通知设置不存在")
	ErrSchedulerSettingsNotFound = errors.New("调度器设置不存在")
	ErrSubscriptionNotFound      = errors.New("订阅不存在")
	ErrTemplateNotFound          = errors.New("通知模板不存在")

	ErrChannelNotConfigured     = errors.New("渠道未配置")
	ErrChannelNotSupported      = errors.New("不支持的渠道")
	ErrChannelCredentialMissing = errors.New("渠道凭证未配置")
	ErrDispatchFailed           = errors.New("发送通知失败")

	ErrSelectionFailed         = errors.New("查询待发送通知失败")
	ErrScheduleReconcileFailed = errors.New("调度器同步失败")
)
