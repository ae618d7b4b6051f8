package repository

import (
	"context"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/repository/dao"
)

//go:generate mockgen -source=./scheduler.go -destination=./mocks/scheduler.mock.go -package=repomocks SchedulerSettingsRepository
type SchedulerSettingsRepository interface {
	Get(ctx context.Context) (domain.SchedulerSettings, error)
	Save(ctx context.Context, settings domain.SchedulerSettings) error
	InitDefault(ctx context.Context) error
}

type schedulerSettingsRepository struct {
	dao dao.SchedulerSettingsDAO
}

// NewSchedulerSettingsRepository 创建调度器设置仓库实例
func NewSchedulerSettingsRepository(settingsDAO dao.SchedulerSettingsDAO) SchedulerSettingsRepository {
	return &schedulerSettingsRepository{
		dao: settingsDAO,
	}
}

func (r *schedulerSettingsRepository) Get(ctx context.Context) (domain.SchedulerSettings, error) {
	entity, err := r.dao.Get(ctx)
	if err != nil {
		return domain.SchedulerSettings{}, err
	}
	return domain.SchedulerSettings{
		CheckTime: entity.NotificationCheckTime,
		Timezone:  entity.Timezone,
		Enabled:   entity.IsEnabled,
	}, nil
}

func (r *schedulerSettingsRepository) Save(ctx context.Context, settings domain.SchedulerSettings) error {
	return r.dao.Save(ctx, r.toEntity(settings))
}

func (r *schedulerSettingsRepository) InitDefault(ctx context.Context) error {
	return r.dao.InitDefault(ctx, r.toEntity(domain.DefaultSchedulerSettings()))
}

func (r *schedulerSettingsRepository) toEntity(settings domain.SchedulerSettings) dao.SchedulerSettings {
	return dao.SchedulerSettings{
		NotificationCheckTime: settings.CheckTime,
		Timezone:              settings.Timezone,
		IsEnabled:             settings.Enabled,
	}
}
