package selector

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/errs"
	"gitee.com/flycash/subscription-notification/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// Selector 找出这一次检查需要发送的 (订阅, 通知类型)
//
//go:generate mockgen -source=./selector.go -destination=./mocks/selector.mock.go -package=selectormocks Selector
type Selector interface {
	// SelectDue today 取 now 所在时区的日期，某个类型查询失败时该类型没有结果
	SelectDue(ctx context.Context, now time.Time) []domain.DueNotification
	// StillDue 重新检查一次设置和发送记录，加锁之后使用
	StillDue(ctx context.Context, now time.Time, due domain.DueNotification) (bool, error)
}

type selector struct {
	settings      repository.NotificationSettingRepository
	subscriptions repository.SubscriptionRepository
	history       repository.HistoryRepository
	logger        *elog.Component
}

func NewSelector(
	settings repository.NotificationSettingRepository,
	subscriptions repository.SubscriptionRepository,
	history repository.HistoryRepository,
) Selector {
	return &selector{
		settings:      settings,
		subscriptions: subscriptions,
		history:       history,
		logger:        elog.DefaultLogger,
	}
}

func (s *selector) SelectDue(ctx context.Context, now time.Time) []domain.DueNotification {
	res := make([]domain.DueNotification, 0, 8)
	for _, t := range []domain.NotificationType{
		domain.NotificationTypeRenewalReminder,
		domain.NotificationTypeExpirationWarning,
	} {
		due, err := s.selectByType(ctx, now, t)
		if err != nil {
			s.logger.Error("查询待发送通知失败",
				elog.String("type", t.String()),
				elog.FieldErr(err))
			continue
		}
		res = append(res, due...)
	}
	return res
}

func (s *selector) selectByType(ctx context.Context, now time.Time, t domain.NotificationType) ([]domain.DueNotification, error) {
	setting, err := s.settings.GetByType(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("%w: 读取通知设置: %w", errs.ErrSelectionFailed, err)
	}
	if !setting.Enabled {
		return nil, nil
	}
	subs, err := s.candidates(ctx, now, setting)
	if err != nil {
		return nil, fmt.Errorf("%w: 查询订阅: %w", errs.ErrSelectionFailed, err)
	}
	res := make([]domain.DueNotification, 0, len(subs))
	for _, sub := range subs {
		if !sub.IsActive() {
			continue
		}
		due := domain.DueNotification{
			Subscription: sub,
			Type:         t,
			Channels:     setting.EffectiveChannels(),
			Repeat:       setting.RepeatNotification,
		}
		ok, err := s.notSentYet(ctx, now, setting, due)
		if err != nil {
			return nil, fmt.Errorf("%w: 查询发送记录: %w", errs.ErrSelectionFailed, err)
		}
		if ok {
			res = append(res, due)
		}
	}
	return res, nil
}

func (s *selector) candidates(ctx context.Context, now time.Time, setting domain.NotificationSetting) ([]domain.Subscription, error) {
	today := startOfDay(now)
	switch setting.Type {
	case domain.NotificationTypeRenewalReminder:
		// [明天, 今天 + advance_days]
		if setting.AdvanceDays < 1 {
			return nil, nil
		}
		return s.subscriptions.FindActiveByBillingDateRange(ctx,
			today.AddDate(0, 0, 1), today.AddDate(0, 0, setting.AdvanceDays))
	case domain.NotificationTypeExpirationWarning:
		// 只在过期后的第一天提醒
		return s.subscriptions.FindActiveByBillingDate(ctx, today.AddDate(0, 0, -1))
	default:
		return nil, nil
	}
}

// notSentYet 去重只看发送记录
func (s *selector) notSentYet(ctx context.Context, now time.Time, setting domain.NotificationSetting, due domain.DueNotification) (bool, error) {
	today := startOfDay(now)
	var start, end time.Time
	switch due.Type {
	case domain.NotificationTypeRenewalReminder:
		if setting.RepeatNotification {
			return true, nil
		}
		start, end = today.AddDate(0, 0, -setting.AdvanceDays), today.AddDate(0, 0, 1)
	case domain.NotificationTypeExpirationWarning:
		start, end = today, today.AddDate(0, 0, 1)
	default:
		return true, nil
	}
	exists, err := s.history.ExistsSent(ctx, due.Subscription.ID, due.Type, start, end)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

func (s *selector) StillDue(ctx context.Context, now time.Time, due domain.DueNotification) (bool, error) {
	setting, err := s.settings.GetByType(ctx, due.Type)
	if err != nil {
		return false, err
	}
	if !setting.Enabled {
		return false, nil
	}
	return s.notSentYet(ctx, now, setting, due)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
