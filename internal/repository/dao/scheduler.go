package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/subscription-notification/internal/errs"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const schedulerSettingsID = 1

// SchedulerSettings 调度器设置表，只有 id = 1 一条
type SchedulerSettings struct {
	ID                    int64  `gorm:"primaryKey;comment:'固定为1'"`
	NotificationCheckTime string `gorm:"type:VARCHAR(5);NOT NULL;comment:'每日检查时间 HH:MM'"`
	Timezone              string `gorm:"type:VARCHAR(64);NOT NULL;comment:'时区'"`
	IsEnabled             bool   `gorm:"NOT NULL;comment:'是否启用定时检查'"`
	Ctime                 int64
	Utime                 int64
}

// TableName 重命名表
func (SchedulerSettings) TableName() string {
	return "scheduler_settings"
}

type SchedulerSettingsDAO interface {
	Get(ctx context.Context) (SchedulerSettings, error)
	Save(ctx context.Context, settings SchedulerSettings) error
	// InitDefault 没有记录的时候插入默认值
	InitDefault(ctx context.Context, settings SchedulerSettings) error
}

type schedulerSettingsDAO struct {
	db *egorm.Component
}

// NewSchedulerSettingsDAO 创建调度器设置DAO实例
func NewSchedulerSettingsDAO(db *egorm.Component) SchedulerSettingsDAO {
	return &schedulerSettingsDAO{
		db: db,
	}
}

func (d *schedulerSettingsDAO) Get(ctx context.Context) (SchedulerSettings, error) {
	var settings SchedulerSettings
	err := d.db.WithContext(ctx).Where("id = ?", schedulerSettingsID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SchedulerSettings{}, fmt.Errorf("%w: id=%d", errs.ErrSchedulerSettingsNotFound, schedulerSettingsID)
		}
		return SchedulerSettings{}, err
	}
	return settings, nil
}

func (d *schedulerSettingsDAO) Save(ctx context.Context, settings SchedulerSettings) error {
	now := time.Now().UnixMilli()
	settings.ID = schedulerSettingsID
	settings.Ctime = now
	settings.Utime = now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"notification_check_time", "timezone", "is_enabled", "utime"}),
	}).Create(&settings).Error
}

func (d *schedulerSettingsDAO) InitDefault(ctx context.Context, settings SchedulerSettings) error {
	now := time.Now().UnixMilli()
	settings.ID = schedulerSettingsID
	settings.Ctime = now
	settings.Utime = now
	err := d.db.WithContext(ctx).Create(&settings).Error
	if err != nil && !isUniqueConstraintError(err) {
		return err
	}
	return nil
}
