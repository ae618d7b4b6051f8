package ioc

import (
	"context"
	"time"

	"gitee.com/flycash/subscription-notification/internal/repository"
)

const initDefaultsTimeout = 5 * time.Second

// InitDefaultSettings 补齐通知类型和调度器的默认设置，已经存在的记录不会被覆盖
func InitDefaultSettings(settings repository.NotificationSettingRepository,
	scheduler repository.SchedulerSettingsRepository,
) error {
	ctx, cancel := context.WithTimeout(context.Background(), initDefaultsTimeout)
	defer cancel()
	if err := settings.InitDefaults(ctx); err != nil {
		return err
	}
	return scheduler.InitDefault(ctx)
}
