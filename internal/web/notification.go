package web

import (
	"context"
	"fmt"
	"strconv"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/errs"
	"gitee.com/flycash/subscription-notification/internal/service/channel"
	"gitee.com/flycash/subscription-notification/internal/service/channel/telegram"
	"gitee.com/flycash/subscription-notification/internal/service/config"
	"gitee.com/flycash/subscription-notification/internal/service/history"
	"gitee.com/flycash/subscription-notification/internal/service/notification"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
)

var _ Handler = (*NotificationHandler)(nil)

// TelegramBot *telegram.Channel 满足这个接口
type TelegramBot interface {
	BotInfo(ctx context.Context) (telegram.BotInfo, error)
	ConfigStatus() telegram.ConfigStatus
}

type NotificationHandler struct {
	notifications notification.Service
	dispatcher    channel.Dispatcher
	history       history.Service
	config        config.Service
	bot           TelegramBot
}

func NewNotificationHandler(
	notifications notification.Service,
	dispatcher channel.Dispatcher,
	historySvc history.Service,
	configSvc config.Service,
	bot TelegramBot,
) *NotificationHandler {
	return &NotificationHandler{
		notifications: notifications,
		dispatcher:    dispatcher,
		history:       historySvc,
		config:        configSvc,
		bot:           bot,
	}
}

func (h *NotificationHandler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api/notifications")
	g.POST("/send", h.SendNotification)
	g.POST("/test", h.TestNotification)
	g.GET("/history", h.GetHistory)
	g.GET("/stats", h.GetStats)

	g.GET("/settings", h.ListSettings)
	g.GET("/settings/:type", h.GetSetting)
	g.PUT("/settings/:id", h.UpdateSetting)

	g.GET("/channels", h.ListChannels)
	g.POST("/channels", h.ConfigureChannel)
	g.GET("/channels/:channelType", h.GetChannelConfig)
	g.POST("/validate-recipient", h.ValidateRecipient)

	g.GET("/telegram/bot-info", h.GetBotInfo)
	g.GET("/telegram/config-status", h.GetTelegramConfigStatus)
}

// SendNotification 单个渠道失败不影响响应状态码，结果都在 data 里
func (h *NotificationHandler) SendNotification(ctx *gin.Context) {
	var req SendNotificationReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		BadRequest(ctx, err)
		return
	}
	sendReq := domain.SendRequest{
		SubscriptionID: req.SubscriptionID,
		Type:           domain.NotificationType(req.NotificationType),
		Channels:       req.Channels,
	}
	if err := sendReq.Validate(); err != nil {
		Fail(ctx, err)
		return
	}
	OK(ctx, h.notifications.SendNotification(ctx.Request.Context(), sendReq))
}

func (h *NotificationHandler) TestNotification(ctx *gin.Context) {
	var req ChannelTypeReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		BadRequest(ctx, err)
		return
	}
	if req.ChannelType == "" {
		Fail(ctx, fmt.Errorf("%w: channel_type 不能为空", errs.ErrInvalidParameter))
		return
	}
	OK(ctx, h.dispatcher.TestNotification(ctx.Request.Context(), req.ChannelType))
}

func (h *NotificationHandler) GetHistory(ctx *gin.Context) {
	// 分页参数不合法时使用默认值
	page, _ := strconv.Atoi(ctx.Query("page"))
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	query := domain.HistoryQuery{
		Page:   page,
		Limit:  limit,
		Status: domain.HistoryStatus(ctx.Query("status")),
		Type:   domain.NotificationType(ctx.Query("type")),
	}
	res, err := h.history.GetHistory(ctx.Request.Context(), query)
	if err != nil {
		Fail(ctx, err)
		return
	}
	OK(ctx, newHistoryResp(res))
}

func (h *NotificationHandler) GetStats(ctx *gin.Context) {
	stats, err := h.history.GetStats(ctx.Request.Context())
	if err != nil {
		Fail(ctx, err)
		return
	}
	OK(ctx, StatsResp{
		Total:     stats.Total,
		Sent:      stats.Sent,
		Failed:    stats.Failed,
		ByType:    stats.ByType,
		ByChannel: stats.ByChannel,
	})
}

func (h *NotificationHandler) ListSettings(ctx *gin.Context) {
	settings, err := h.config.ListSettings(ctx.Request.Context())
	if err != nil {
		Fail(ctx, err)
		return
	}
	OK(ctx, slice.Map(settings, func(_ int, src domain.NotificationSetting) NotificationSetting {
		return newNotificationSetting(src)
	}))
}

func (h *NotificationHandler) GetSetting(ctx *gin.Context) {
	setting, err := h.config.GetSetting(ctx.Request.Context(), domain.NotificationType(ctx.Param("type")))
	if err != nil {
		Fail(ctx, err)
		return
	}
	OK(ctx, newNotificationSetting(setting))
}

func (h *NotificationHandler) UpdateSetting(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		Fail(ctx, fmt.Errorf("%w: id = %s", errs.ErrInvalidParameter, ctx.Param("id")))
		return
	}
	var req UpdateSettingReq
	if err = ctx.ShouldBindJSON(&req); err != nil {
		BadRequest(ctx, err)
		return
	}
	err = h.config.UpdateSetting(ctx.Request.Context(), id, domain.SettingUpdate{
		Enabled:            req.IsEnabled,
		AdvanceDays:        req.AdvanceDays,
		RepeatNotification: req.RepeatNotification,
		Channels:           req.NotificationChannels,
	})
	if err != nil {
		Fail(ctx, err)
		return
	}
	OK(ctx, map[string]string{"message": "通知设置已更新"})
}

func (h *NotificationHandler) ConfigureChannel(ctx *gin.Context) {
	var req ConfigureChannelReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		BadRequest(ctx, err)
		return
	}
	if req.ChannelType == "" || req.Config == nil {
		Fail(ctx, fmt.Errorf("%w: channel_type 和 config 不能为空", errs.ErrInvalidParameter))
		return
	}
	if err := h.config.ConfigureChannel(ctx.Request.Context(), req.ChannelType, req.Config); err != nil {
		Fail(ctx, err)
		return
	}
	OK(ctx, map[string]string{"message": "渠道配置已保存"})
}

// ListChannels 已经注册实现的渠道
func (h *NotificationHandler) ListChannels(ctx *gin.Context) {
	OK(ctx, h.dispatcher.Channels())
}

func (h *NotificationHandler) GetChannelConfig(ctx *gin.Context) {
	cfg, err := h.config.GetChannelConfig(ctx.Request.Context(), ctx.Param("channelType"))
	if err != nil {
		Fail(ctx, err)
		return
	}
	OK(ctx, newChannelConfig(cfg))
}

// ValidateRecipient channel_type 为空时按 telegram 校验
func (h *NotificationHandler) ValidateRecipient(ctx *gin.Context) {
	var req ValidateRecipientReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		BadRequest(ctx, err)
		return
	}
	if req.Recipient == "" {
		Fail(ctx, fmt.Errorf("%w: recipient 不能为空", errs.ErrInvalidParameter))
		return
	}
	if req.ChannelType == "" {
		req.ChannelType = domain.ChannelTelegram
	}
	OK(ctx, h.dispatcher.ValidateRecipient(ctx.Request.Context(), req.ChannelType, req.Recipient))
}

func (h *NotificationHandler) GetBotInfo(ctx *gin.Context) {
	info, err := h.bot.BotInfo(ctx.Request.Context())
	if err != nil {
		Fail(ctx, err)
		return
	}
	OK(ctx, info)
}

func (h *NotificationHandler) GetTelegramConfigStatus(ctx *gin.Context) {
	OK(ctx, h.bot.ConfigStatus())
}
