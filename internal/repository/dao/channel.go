package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/subscription-notification/internal/errs"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotificationChannel 渠道配置表
type NotificationChannel struct {
	ID            int64         `gorm:"primaryKey;autoIncrement;comment:'渠道配置ID'"`
	ChannelType   string        `gorm:"type:VARCHAR(32);NOT NULL;uniqueIndex:uk_channel_type;comment:'渠道：telegram, email'"`
	ChannelConfig string        `gorm:"type:TEXT;NOT NULL;comment:'渠道配置，例如 {\"chat_id\":\"123\"}'"`
	IsActive      bool          `gorm:"NOT NULL;index:idx_active;comment:'是否启用'"`
	LastUsedAt    sql.NullInt64 `gorm:"comment:'最后一次发送成功的时间'"`
	Ctime         int64
	Utime         int64
}

// TableName 重命名表
func (NotificationChannel) TableName() string {
	return "notification_channels"
}

type NotificationChannelDAO interface {
	GetByType(ctx context.Context, channelType string) (NotificationChannel, error)
	// Save 不存在就插入，存在就覆盖配置，并且总是启用
	Save(ctx context.Context, channel NotificationChannel) error
	TouchLastUsed(ctx context.Context, channelType string, usedAt int64) error
}

type notificationChannelDAO struct {
	db *egorm.Component
}

// NewNotificationChannelDAO 创建渠道配置DAO实例
func NewNotificationChannelDAO(db *egorm.Component) NotificationChannelDAO {
	return &notificationChannelDAO{
		db: db,
	}
}

func (d *notificationChannelDAO) GetByType(ctx context.Context, channelType string) (NotificationChannel, error) {
	var channel NotificationChannel
	err := d.db.WithContext(ctx).
		Where("channel_type = ?", channelType).
		First(&channel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotificationChannel{}, fmt.Errorf("%w: channel=%s", errs.ErrChannelNotConfigured, channelType)
		}
		return NotificationChannel{}, err
	}
	return channel, nil
}

func (d *notificationChannelDAO) Save(ctx context.Context, channel NotificationChannel) error {
	now := time.Now().UnixMilli()
	channel.Ctime = now
	channel.Utime = now
	channel.IsActive = true
	// 使用 upsert 语句，channel_type 冲突时只更新配置
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "channel_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"channel_config", "is_active", "utime"}),
	}).Create(&channel).Error
}

func (d *notificationChannelDAO) TouchLastUsed(ctx context.Context, channelType string, usedAt int64) error {
	return d.db.WithContext(ctx).Model(&NotificationChannel{}).
		Where("channel_type = ?", channelType).
		Updates(map[string]any{
			"last_used_at": usedAt,
			"utime":        time.Now().UnixMilli(),
		}).Error
}
