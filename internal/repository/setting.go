package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./setting.go -destination=./mocks/setting.mock.go -package=repomocks NotificationSettingRepository
type NotificationSettingRepository interface {
	// InitDefaults 初始化五种通知类型的默认设置
	InitDefaults(ctx context.Context) error
	GetByType(ctx context.Context, notificationType domain.NotificationType) (domain.NotificationSetting, error)
	List(ctx context.Context) ([]domain.NotificationSetting, error)
	Update(ctx context.Context, setting domain.NotificationSetting) error
}

type notificationSettingRepository struct {
	dao    dao.NotificationSettingDAO
	logger *elog.Component
}

// NewNotificationSettingRepository 创建通知设置仓库实例
func NewNotificationSettingRepository(settingDAO dao.NotificationSettingDAO) NotificationSettingRepository {
	return &notificationSettingRepository{
		dao:    settingDAO,
		logger: elog.DefaultLogger,
	}
}

func (r *notificationSettingRepository) InitDefaults(ctx context.Context) error {
	defaults := slice.Map(domain.NotificationTypes, func(_ int, t domain.NotificationType) domain.NotificationSetting {
		s := domain.NotificationSetting{
			Type:     t,
			Enabled:  true,
			Channels: []string{domain.ChannelTelegram},
		}
		if t == domain.NotificationTypeRenewalReminder {
			s.AdvanceDays = domain.DefaultAdvanceDays
			s.RepeatNotification = true
		}
		return s
	})
	return r.dao.InitDefaults(ctx, slice.Map(defaults, func(_ int, s domain.NotificationSetting) dao.NotificationSetting {
		return r.toEntity(s)
	}))
}

func (r *notificationSettingRepository) GetByType(ctx context.Context, notificationType domain.NotificationType) (domain.NotificationSetting, error) {
	entity, err := r.dao.GetByType(ctx, notificationType.String())
	if err != nil {
		return domain.NotificationSetting{}, err
	}
	return r.toDomain(entity), nil
}

func (r *notificationSettingRepository) List(ctx context.Context) ([]domain.NotificationSetting, error) {
	entities, err := r.dao.List(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.NotificationSetting) domain.NotificationSetting {
		return r.toDomain(src)
	}), nil
}

func (r *notificationSettingRepository) Update(ctx context.Context, setting domain.NotificationSetting) error {
	return r.dao.Update(ctx, r.toEntity(setting))
}

func (r *notificationSettingRepository) toEntity(s domain.NotificationSetting) dao.NotificationSetting {
	channels := sql.NullString{}
	if len(s.Channels) > 0 {
		b, _ := json.Marshal(s.Channels)
		channels = sql.NullString{String: string(b), Valid: true}
	}
	return dao.NotificationSetting{
		ID:                   s.ID,
		NotificationType:     s.Type.String(),
		IsEnabled:            s.Enabled,
		AdvanceDays:          s.AdvanceDays,
		RepeatNotification:   s.RepeatNotification,
		NotificationChannels: channels,
		Ctime:                s.Ctime,
		Utime:                s.Utime,
	}
}

func (r *notificationSettingRepository) toDomain(e dao.NotificationSetting) domain.NotificationSetting {
	var channels []string
	if e.NotificationChannels.Valid && e.NotificationChannels.String != "" {
		if err := json.Unmarshal([]byte(e.NotificationChannels.String), &channels); err != nil {
			// 渠道配置坏了就按没有配置处理，发送时会回退到默认渠道
			r.logger.Warn("解析通知渠道失败",
				elog.String("type", e.NotificationType),
				elog.FieldErr(err))
			channels = nil
		}
	}
	return domain.NotificationSetting{
		ID:                 e.ID,
		Type:               domain.NotificationType(e.NotificationType),
		Enabled:            e.IsEnabled,
		AdvanceDays:        e.AdvanceDays,
		RepeatNotification: e.RepeatNotification,
		Channels:           channels,
		Ctime:              e.Ctime,
		Utime:              e.Utime,
	}
}
