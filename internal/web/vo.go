package web

import (
	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/service/scheduler"
	"github.com/ecodeclub/ekit/slice"
)

type SchedulerSettings struct {
	NotificationCheckTime string `json:"notification_check_time"`
	Timezone              string `json:"timezone"`
	IsEnabled             bool   `json:"is_enabled"`
}

func newSchedulerSettings(s domain.SchedulerSettings) SchedulerSettings {
	return SchedulerSettings{
		NotificationCheckTime: s.CheckTime,
		Timezone:              s.Timezone,
		IsEnabled:             s.Enabled,
	}
}

// UpdateSchedulerSettingsReq 没有传的字段使用默认值
type UpdateSchedulerSettingsReq struct {
	NotificationCheckTime string `json:"notification_check_time"`
	Timezone              string `json:"timezone"`
	IsEnabled             *bool  `json:"is_enabled"`
}

func (r UpdateSchedulerSettingsReq) toDomain() domain.SchedulerSettings {
	settings := domain.DefaultSchedulerSettings()
	if r.NotificationCheckTime != "" {
		settings.CheckTime = r.NotificationCheckTime
	}
	if r.Timezone != "" {
		settings.Timezone = r.Timezone
	}
	if r.IsEnabled != nil {
		settings.Enabled = *r.IsEnabled
	}
	return settings
}

type UpdateSchedulerSettingsResp struct {
	Message  string            `json:"message"`
	Settings SchedulerSettings `json:"settings"`
}

type SchedulerStatusResp struct {
	Running         bool              `json:"running"`
	CurrentSchedule *domain.Schedule  `json:"currentSchedule"`
	Settings        SchedulerSettings `json:"settings"`
}

type TriggerCheckResp struct {
	Message string                 `json:"message"`
	Summary scheduler.CheckSummary `json:"summary"`
}

type SendNotificationReq struct {
	SubscriptionID   int64    `json:"subscription_id"`
	NotificationType string   `json:"notification_type"`
	Channels         []string `json:"channels"`
}

type ChannelTypeReq struct {
	ChannelType string `json:"channel_type"`
}

type ValidateRecipientReq struct {
	ChannelType string `json:"channel_type"`
	Recipient   string `json:"recipient"`
}

type History struct {
	ID               uint64 `json:"id"`
	SubscriptionID   int64  `json:"subscription_id"`
	SubscriptionName string `json:"subscription_name"`
	NotificationType string `json:"notification_type"`
	ChannelType      string `json:"channel_type"`
	Status           string `json:"status"`
	Recipient        string `json:"recipient"`
	MessageContent   string `json:"message_content"`
	ErrorMessage     string `json:"error_message,omitempty"`
	ScheduledAt      int64  `json:"scheduled_at"`
	SentAt           int64  `json:"sent_at,omitempty"`
	Ctime            int64  `json:"created_at"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type HistoryResp struct {
	Data       []History  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func newHistoryResp(page domain.HistoryPage) HistoryResp {
	return HistoryResp{
		Data: slice.Map(page.Data, func(_ int, src domain.History) History {
			return History{
				ID:               src.ID,
				SubscriptionID:   src.SubscriptionID,
				SubscriptionName: src.SubscriptionName,
				NotificationType: src.Type.String(),
				ChannelType:      src.Channel,
				Status:           src.Status.String(),
				Recipient:        src.Recipient,
				MessageContent:   src.Content,
				ErrorMessage:     src.ErrorMessage,
				ScheduledAt:      src.ScheduledAt,
				SentAt:           src.SentAt,
				Ctime:            src.Ctime,
			}
		}),
		Pagination: Pagination{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	}
}

type StatsResp struct {
	Total     int64                         `json:"total"`
	Sent      int64                         `json:"sent"`
	Failed    int64                         `json:"failed"`
	ByType    map[string]domain.StatusCount `json:"byType"`
	ByChannel map[string]domain.StatusCount `json:"byChannel"`
}

type NotificationSetting struct {
	ID                   int64    `json:"id"`
	NotificationType     string   `json:"notification_type"`
	IsEnabled            bool     `json:"is_enabled"`
	AdvanceDays          int      `json:"advance_days"`
	RepeatNotification   bool     `json:"repeat_notification"`
	NotificationChannels []string `json:"notification_channels"`
	Ctime                int64    `json:"created_at"`
	Utime                int64    `json:"updated_at"`
}

func newNotificationSetting(s domain.NotificationSetting) NotificationSetting {
	return NotificationSetting{
		ID:                   s.ID,
		NotificationType:     s.Type.String(),
		IsEnabled:            s.Enabled,
		AdvanceDays:          s.AdvanceDays,
		RepeatNotification:   s.RepeatNotification,
		NotificationChannels: s.EffectiveChannels(),
		Ctime:                s.Ctime,
		Utime:                s.Utime,
	}
}

type UpdateSettingReq struct {
	IsEnabled            bool     `json:"is_enabled"`
	AdvanceDays          int      `json:"advance_days"`
	RepeatNotification   bool     `json:"repeat_notification"`
	NotificationChannels []string `json:"notification_channels"`
}

type ConfigureChannelReq struct {
	ChannelType string         `json:"channel_type"`
	Config      map[string]any `json:"config"`
}

type ChannelConfig struct {
	ID          int64  `json:"id"`
	ChannelType string `json:"channel_type"`
	Config      string `json:"channel_config"`
	IsActive    bool   `json:"is_active"`
	LastUsedAt  int64  `json:"last_used_at,omitempty"`
	Ctime       int64  `json:"created_at"`
	Utime       int64  `json:"updated_at"`
}

func newChannelConfig(c domain.ChannelConfig) ChannelConfig {
	return ChannelConfig{
		ID:          c.ID,
		ChannelType: c.ChannelType,
		Config:      c.Config,
		IsActive:    c.IsActive,
		LastUsedAt:  c.LastUsedAt,
		Ctime:       c.Ctime,
		Utime:       c.Utime,
	}
}

type Template struct {
	NotificationType string `json:"notificationType"`
	Language         string `json:"language"`
	Channel          string `json:"channel"`
	Subject          string `json:"subject,omitempty"`
	Content          string `json:"content"`
}

type Message struct {
	Subject  string `json:"subject,omitempty"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

type TemplateOverviewResp struct {
	Overview       []domain.TemplateOverview `json:"overview"`
	TotalTypes     int                       `json:"totalTypes"`
	TotalLanguages int                       `json:"totalLanguages"`
	Version        int                       `json:"version"`
}

type PreviewTemplateReq struct {
	NotificationType string            `json:"notificationType"`
	Language         string            `json:"language"`
	Channel          string            `json:"channel"`
	SampleData       map[string]string `json:"sampleData"`
}

type PreviewTemplateResp struct {
	Template Template `json:"template"`
	Rendered Message  `json:"rendered"`
}
