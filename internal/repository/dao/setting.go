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
)

// NotificationSetting 通知设置表，每种通知类型一条
type NotificationSetting struct {
	ID               int64  `gorm:"primaryKey;autoIncrement;comment:'设置ID'"`
	NotificationType string `gorm:"type:VARCHAR(32);NOT NULL;uniqueIndex:uk_notification_type;comment:'通知类型'"`
	// bool 和 int 字段不要加 DEFAULT，否则零值会被数据库默认值覆盖
	IsEnabled            bool           `gorm:"NOT NULL;index:idx_enabled;comment:'是否启用'"`
	AdvanceDays          int            `gorm:"type:INT;NOT NULL;comment:'提前天数，只对续订提醒有效'"`
	RepeatNotification   bool           `gorm:"NOT NULL;comment:'是否允许重复提醒'"`
	NotificationChannels sql.NullString `gorm:"type:JSON;comment:'通知渠道，JSON数组，例如 [\"telegram\"]'"`
	Ctime                int64
	Utime                int64
}

// TableName 重命名表
func (NotificationSetting) TableName() string {
	return "notification_settings"
}

type NotificationSettingDAO interface {
	// InitDefaults 插入默认设置，已经存在的类型保持不变
	InitDefaults(ctx context.Context, settings []NotificationSetting) error
	GetByType(ctx context.Context, notificationType string) (NotificationSetting, error)
	List(ctx context.Context) ([]NotificationSetting, error)
	// Update 按ID更新用户可修改的字段
	Update(ctx context.Context, setting NotificationSetting) error
}

type notificationSettingDAO struct {
	db *egorm.Component
}

// NewNotificationSettingDAO 创建通知设置DAO实例
func NewNotificationSettingDAO(db *egorm.Component) NotificationSettingDAO {
	return &notificationSettingDAO{
		db: db,
	}
}

func (d *notificationSettingDAO) InitDefaults(ctx context.Context, settings []NotificationSetting) error {
	now := time.Now().UnixMilli()
	for i := range settings {
		s := settings[i]
		s.Ctime, s.Utime = now, now
		err := d.db.WithContext(ctx).Create(&s).Error
		if err != nil && !isUniqueConstraintError(err) {
			return err
		}
	}
	return nil
}

func (d *notificationSettingDAO) GetByType(ctx context.Context, notificationType string) (NotificationSetting, error) {
	var setting NotificationSetting
	err := d.db.WithContext(ctx).
		Where("notification_type = ?", notificationType).
		First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotificationSetting{}, fmt.Errorf("%w: type=%s", errs.ErrSettingNotFound, notificationType)
		}
		return NotificationSetting{}, err
	}
	return setting, nil
}

func (d *notificationSettingDAO) List(ctx context.Context) ([]NotificationSetting, error) {
	var settings []NotificationSetting
	err := d.db.WithContext(ctx).Order("id ASC").Find(&settings).Error
	return settings, err
}

func (d *notificationSettingDAO) Update(ctx context.Context, setting NotificationSetting) error {
	res := d.db.WithContext(ctx).Model(&NotificationSetting{}).
		Where("id = ?", setting.ID).
		Updates(map[string]any{
			"is_enabled":            setting.IsEnabled,
			"advance_days":          setting.AdvanceDays,
			"repeat_notification":   setting.RepeatNotification,
			"notification_channels": setting.NotificationChannels,
			"utime":                 time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id=%d", errs.ErrSettingNotFound, setting.ID)
	}
	return nil
}
