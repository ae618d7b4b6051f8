package config

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/errs"
	"gitee.com/flycash/subscription-notification/internal/pkg/validate"
	"gitee.com/flycash/subscription-notification/internal/repository"
)

// Service 通知设置和渠道配置
//
//go:generate mockgen -source=./service.go -destination=./mocks/service.mock.go -package=configmocks Service
type Service interface {
	ListSettings(ctx context.Context) ([]domain.NotificationSetting, error)
	GetSetting(ctx context.Context, notificationType domain.NotificationType) (domain.NotificationSetting, error)
	UpdateSetting(ctx context.Context, id int64, update domain.SettingUpdate) error

	// ConfigureChannel 保存渠道配置，保存后渠道总是启用的
	ConfigureChannel(ctx context.Context, channelType string, config map[string]any) error
	GetChannelConfig(ctx context.Context, channelType string) (domain.ChannelConfig, error)
}

type service struct {
	settings repository.NotificationSettingRepository
	channels repository.ChannelConfigRepository
}

func NewService(settings repository.NotificationSettingRepository, channels repository.ChannelConfigRepository) Service {
	return &service{
		settings: settings,
		channels: channels,
	}
}

func (s *service) ListSettings(ctx context.Context) ([]domain.NotificationSetting, error) {
	return s.settings.List(ctx)
}

func (s *service) GetSetting(ctx context.Context, notificationType domain.NotificationType) (domain.NotificationSetting, error) {
	if !notificationType.IsValid() {
		return domain.NotificationSetting{}, fmt.Errorf("%w: notificationType = %q", errs.ErrInvalidParameter, notificationType)
	}
	return s.settings.GetByType(ctx, notificationType)
}

func (s *service) UpdateSetting(ctx context.Context, id int64, update domain.SettingUpdate) error {
	if id <= 0 {
		return fmt.Errorf("%w: id = %d", errs.ErrInvalidParameter, id)
	}
	if err := validate.Struct(update); err != nil {
		return err
	}
	channels := update.Channels
	if len(channels) == 0 {
		channels = []string{domain.ChannelTelegram}
	}
	return s.settings.Update(ctx, domain.NotificationSetting{
		ID:                 id,
		Enabled:            update.Enabled,
		AdvanceDays:        update.AdvanceDays,
		RepeatNotification: update.RepeatNotification,
		Channels:           channels,
	})
}

type telegramConfig struct {
	ChatID string `json:"chat_id" validate:"required,min=1,max=50"`
}

type emailConfig struct {
	Email string `json:"email" validate:"required,email"`
}

func (s *service) ConfigureChannel(ctx context.Context, channelType string, config map[string]any) error {
	var normalized any
	switch channelType {
	case domain.ChannelTelegram:
		cfg := telegramConfig{ChatID: stringValue(config["chat_id"])}
		if err := validate.Struct(cfg); err != nil {
			return err
		}
		normalized = cfg
	case domain.ChannelEmail:
		cfg := emailConfig{Email: stringValue(config["email"])}
		if err := validate.Struct(cfg); err != nil {
			return err
		}
		normalized = cfg
	default:
		return fmt.Errorf("%w: %s", errs.ErrChannelNotSupported, channelType)
	}
	b, err := json.Marshal(normalized)
	if err != nil {
		return err
	}
	return s.channels.Save(ctx, domain.ChannelConfig{
		ChannelType: channelType,
		Config:      string(b),
		IsActive:    true,
	})
}

func (s *service) GetChannelConfig(ctx context.Context, channelType string) (domain.ChannelConfig, error) {
	if !domain.IsSupportedChannel(channelType) {
		return domain.ChannelConfig{}, fmt.Errorf("%w: %s", errs.ErrChannelNotSupported, channelType)
	}
	return s.channels.GetByType(ctx, channelType)
}

// stringValue chat_id 可能是数字
func stringValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	default:
		return ""
	}
}
