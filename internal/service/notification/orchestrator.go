package notification

import (
	"context"
	"errors"
	"time"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/errs"
	"gitee.com/flycash/subscription-notification/internal/repository"
	"gitee.com/flycash/subscription-notification/internal/service/channel"
	"gitee.com/flycash/subscription-notification/internal/service/history"
	"gitee.com/flycash/subscription-notification/internal/service/template"
	"github.com/gotomicro/ego/core/elog"
)

const (
	msgTypeDisabled         = "通知类型未启用"
	msgSubscriptionNotFound = "订阅不存在"
)

// Service 处理一个 (订阅, 通知类型)，逐个渠道发送并记录结果
// 不重试，单个渠道失败不影响其他渠道
//
//go:generate mockgen -source=./orchestrator.go -destination=./mocks/orchestrator.mock.go -package=notificationmocks Service
type Service interface {
	// Process 定时检查选出来的通知
	Process(ctx context.Context, due domain.DueNotification) domain.SendReport
	// SendNotification 手动发送，可以指定渠道
	SendNotification(ctx context.Context, req domain.SendRequest) domain.SendReport
}

type service struct {
	settings      repository.NotificationSettingRepository
	subscriptions repository.SubscriptionRepository
	preferences   repository.PreferenceRepository
	channels      repository.ChannelConfigRepository
	dispatcher    channel.Dispatcher
	resolver      template.Resolver
	history       history.Service
	now           func() time.Time
	logger        *elog.Component
}

func NewService(
	settings repository.NotificationSettingRepository,
	subscriptions repository.SubscriptionRepository,
	preferences repository.PreferenceRepository,
	channels repository.ChannelConfigRepository,
	dispatcher channel.Dispatcher,
	resolver template.Resolver,
	historySvc history.Service,
) Service {
	return &service{
		settings:      settings,
		subscriptions: subscriptions,
		preferences:   preferences,
		channels:      channels,
		dispatcher:    dispatcher,
		resolver:      resolver,
		history:       historySvc,
		now:           time.Now,
		logger:        elog.DefaultLogger,
	}
}

func (s *service) Process(ctx context.Context, due domain.DueNotification) domain.SendReport {
	return s.send(ctx, due.Subscription.ID, due.Type, nil)
}

func (s *service) SendNotification(ctx context.Context, req domain.SendRequest) domain.SendReport {
	if err := req.Validate(); err != nil {
		return domain.SendReport{
			SubscriptionID: req.SubscriptionID,
			Type:           req.Type,
			Message:        err.Error(),
			Results:        []domain.ChannelResult{},
		}
	}
	return s.send(ctx, req.SubscriptionID, req.Type, req.Channels)
}

func (s *service) send(ctx context.Context, subscriptionID int64, notificationType domain.NotificationType, override []string) domain.SendReport {
	scheduledAt := s.now()
	report := domain.SendReport{
		SubscriptionID: subscriptionID,
		Type:           notificationType,
		Results:        []domain.ChannelResult{},
	}

	setting, err := s.settings.GetByType(ctx, notificationType)
	if err != nil {
		if errors.Is(err, errs.ErrSettingNotFound) {
			report.Message = msgTypeDisabled
		} else {
			report.Message = err.Error()
		}
		return report
	}
	if !setting.Enabled {
		report.Message = msgTypeDisabled
		return report
	}

	// 使用最新的订阅数据
	sub, err := s.subscriptions.GetByID(ctx, subscriptionID)
	if err != nil {
		if errors.Is(err, errs.ErrSubscriptionNotFound) {
			report.Message = msgSubscriptionNotFound
		} else {
			report.Message = err.Error()
		}
		return report
	}

	targets := override
	if len(targets) == 0 {
		targets = setting.EffectiveChannels()
	}
	for _, ch := range targets {
		report.Results = append(report.Results, s.sendToChannel(ctx, sub, notificationType, ch, scheduledAt))
	}
	report.Success = true
	return report
}

func (s *service) sendToChannel(ctx context.Context, sub domain.Subscription, notificationType domain.NotificationType,
	channelType string, scheduledAt time.Time,
) domain.ChannelResult {
	result := domain.ChannelResult{Channel: channelType}
	cfg, err := s.dispatcher.Target(ctx, channelType)
	if err != nil {
		result.Skipped = true
		result.Error = err.Error()
		if !errors.Is(err, errs.ErrChannelNotConfigured) && !errors.Is(err, errs.ErrChannelNotSupported) {
			s.logger.Error("读取渠道配置失败",
				elog.String("channel", channelType),
				elog.FieldErr(err))
		}
		return result
	}

	lang, err := s.preferences.GetLanguage(ctx)
	if err != nil {
		s.logger.Warn("读取语言偏好失败，使用默认语言", elog.FieldErr(err))
		lang = domain.DefaultLanguage
	}
	msg := s.resolver.Render(notificationType, lang, channelType, sub)
	recipient := cfg.Recipient()
	res := s.dispatcher.Send(ctx, channelType, recipient, msg)

	record := domain.History{
		SubscriptionID: sub.ID,
		Type:           notificationType,
		Channel:        channelType,
		Recipient:      recipient,
		Content:        msg.Content,
		ScheduledAt:    scheduledAt.UnixMilli(),
	}
	sentAt := s.now().UnixMilli()
	if res.Success {
		record.Status = domain.HistoryStatusSent
		record.SentAt = sentAt
	} else {
		record.Status = domain.HistoryStatusFailed
		record.ErrorMessage = res.Error
	}
	saved, err := s.history.Record(ctx, record)
	if err != nil {
		s.logger.Error("写入发送记录失败",
			elog.Int64("subscriptionId", sub.ID),
			elog.String("type", notificationType.String()),
			elog.String("channel", channelType),
			elog.FieldErr(err))
	}
	result.HistoryID = saved.ID

	result.Success = res.Success
	result.Error = res.Error
	if res.Success {
		if err = s.channels.TouchLastUsed(ctx, channelType, sentAt); err != nil {
			s.logger.Warn("更新渠道最后使用时间失败",
				elog.String("channel", channelType),
				elog.FieldErr(err))
		}
	}
	return result
}
