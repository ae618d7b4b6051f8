package repository

import (
	"context"
	"database/sql"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/repository/dao"
)

//go:generate mockgen -source=./channel.go -destination=./mocks/channel.mock.go -package=repomocks ChannelConfigRepository
type ChannelConfigRepository interface {
	GetByType(ctx context.Context, channelType string) (domain.ChannelConfig, error)
	Save(ctx context.Context, config domain.ChannelConfig) error
	TouchLastUsed(ctx context.Context, channelType string, usedAt int64) error
}

type channelConfigRepository struct {
	dao dao.NotificationChannelDAO
}

// NewChannelConfigRepository 创建渠道配置仓库实例
func NewChannelConfigRepository(channelDAO dao.NotificationChannelDAO) ChannelConfigRepository {
	return &channelConfigRepository{
		dao: channelDAO,
	}
}

func (r *channelConfigRepository) GetByType(ctx context.Context, channelType string) (domain.ChannelConfig, error) {
	entity, err := r.dao.GetByType(ctx, channelType)
	if err != nil {
		return domain.ChannelConfig{}, err
	}
	return domain.ChannelConfig{
		ID:          entity.ID,
		ChannelType: entity.ChannelType,
		Config:      entity.ChannelConfig,
		IsActive:    entity.IsActive,
		LastUsedAt:  entity.LastUsedAt.Int64,
		Ctime:       entity.Ctime,
		Utime:       entity.Utime,
	}, nil
}

func (r *channelConfigRepository) Save(ctx context.Context, config domain.ChannelConfig) error {
	return r.dao.Save(ctx, dao.NotificationChannel{
		ChannelType:   config.ChannelType,
		ChannelConfig: config.Config,
		IsActive:      true,
		LastUsedAt: sql.NullInt64{
			Int64: config.LastUsedAt,
			Valid: config.LastUsedAt > 0,
		},
	})
}

func (r *channelConfigRepository) TouchLastUsed(ctx context.Context, channelType string, usedAt int64) error {
	return r.dao.TouchLastUsed(ctx, channelType, usedAt)
}
