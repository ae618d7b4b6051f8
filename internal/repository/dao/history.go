package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotificationHistory 通知发送记录表，只追加不修改
type NotificationHistory struct {
	ID             uint64 `gorm:"primaryKey;comment:'雪花算法ID'"`
	SubscriptionID int64  `gorm:"type:BIGINT;NOT NULL;index:idx_sub_type_status_sent,priority:1;comment:'订阅ID'"`
	// 删除订阅的时候级联删除发送记录
	Subscription     *Subscription  `gorm:"foreignKey:SubscriptionID;constraint:OnDelete:CASCADE"`
	NotificationType string         `gorm:"type:VARCHAR(32);NOT NULL;index:idx_sub_type_status_sent,priority:2;comment:'通知类型'"`
	ChannelType      string         `gorm:"type:VARCHAR(32);NOT NULL;comment:'渠道'"`
	Status           string         `gorm:"type:ENUM('sent','failed');NOT NULL;index:idx_sub_type_status_sent,priority:3;index:idx_status;comment:'发送状态'"`
	Recipient        string         `gorm:"type:VARCHAR(255);NOT NULL;comment:'接收者'"`
	MessageContent   string         `gorm:"type:TEXT;NOT NULL;comment:'消息内容'"`
	ErrorMessage     sql.NullString `gorm:"type:TEXT;comment:'失败原因'"`
	ScheduledAt      int64          `gorm:"comment:'计划发送时间'"`
	SentAt           sql.NullInt64  `gorm:"index:idx_sub_type_status_sent,priority:4;comment:'发送成功时间，失败为NULL'"`
	RetryCount       int            `gorm:"type:INT;NOT NULL;comment:'重试次数，目前没有使用'"`
	MaxRetry         int            `gorm:"type:INT;NOT NULL;comment:'最大重试次数，目前没有使用'"`
	Ctime            int64          `gorm:"index:idx_ctime"`
}

// TableName 重命名表
func (NotificationHistory) TableName() string {
	return "notification_history"
}

// HistoryWithSubscription 查询历史时带上订阅名称
type HistoryWithSubscription struct {
	NotificationHistory
	SubscriptionName sql.NullString
}

// GroupCount 分组计数
type GroupCount struct {
	GroupKey string
	Status   string
	Cnt      int64
}

type NotificationHistoryDAO interface {
	Create(ctx context.Context, history NotificationHistory) (NotificationHistory, error)
	// ExistsSent 是否存在 sent_at 在 [start, end) 之间的发送成功记录
	ExistsSent(ctx context.Context, subscriptionID int64, notificationType string, start, end int64) (bool, error)
	Find(ctx context.Context, status, notificationType string, offset, limit int) ([]HistoryWithSubscription, error)
	Count(ctx context.Context, status, notificationType string) (int64, error)
	// CountByStatus GroupKey 为空
	CountByStatus(ctx context.Context) ([]GroupCount, error)
	CountByTypeAndStatus(ctx context.Context) ([]GroupCount, error)
	CountByChannelAndStatus(ctx context.Context) ([]GroupCount, error)
}

type notificationHistoryDAO struct {
	db *egorm.Component
}

// NewNotificationHistoryDAO 创建发送记录DAO实例
func NewNotificationHistoryDAO(db *egorm.Component) NotificationHistoryDAO {
	return &notificationHistoryDAO{
		db: db,
	}
}

func (d *notificationHistoryDAO) Create(ctx context.Context, history NotificationHistory) (NotificationHistory, error) {
	if history.Ctime == 0 {
		history.Ctime = time.Now().UnixMilli()
	}
	err := d.db.WithContext(ctx).Omit(clause.Associations).Create(&history).Error
	return history, err
}

func (d *notificationHistoryDAO) ExistsSent(ctx context.Context, subscriptionID int64, notificationType string, start, end int64) (bool, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&NotificationHistory{}).
		Where("subscription_id = ? AND notification_type = ? AND status = ?", subscriptionID, notificationType, "sent").
		Where("sent_at >= ? AND sent_at < ?", start, end).
		Count(&cnt).Error
	return cnt > 0, err
}

func (d *notificationHistoryDAO) filter(db *gorm.DB, status, notificationType string) *gorm.DB {
	if status != "" {
		db = db.Where("nh.status = ?", status)
	}
	if notificationType != "" {
		db = db.Where("nh.notification_type = ?", notificationType)
	}
	return db
}

func (d *notificationHistoryDAO) Find(ctx context.Context, status, notificationType string, offset, limit int) ([]HistoryWithSubscription, error) {
	var res []HistoryWithSubscription
	db := d.db.WithContext(ctx).
		Table("notification_history AS nh").
		Select("nh.*, s.name AS subscription_name").
		Joins("LEFT JOIN subscriptions s ON nh.subscription_id = s.id")
	err := d.filter(db, status, notificationType).
		Order("nh.ctime DESC, nh.id DESC").
		Offset(offset).
		Limit(limit).
		Scan(&res).Error
	return res, err
}

func (d *notificationHistoryDAO) Count(ctx context.Context, status, notificationType string) (int64, error) {
	var cnt int64
	db := d.db.WithContext(ctx).Table("notification_history AS nh")
	err := d.filter(db, status, notificationType).Count(&cnt).Error
	return cnt, err
}

func (d *notificationHistoryDAO) CountByStatus(ctx context.Context) ([]GroupCount, error) {
	var res []GroupCount
	err := d.db.WithContext(ctx).Model(&NotificationHistory{}).
		Select("'' AS group_key, status, COUNT(*) AS cnt").
		Group("status").
		Scan(&res).Error
	return res, err
}

func (d *notificationHistoryDAO) CountByTypeAndStatus(ctx context.Context) ([]GroupCount, error) {
	return d.countBy(ctx, "notification_type")
}

func (d *notificationHistoryDAO) CountByChannelAndStatus(ctx context.Context) ([]GroupCount, error) {
	return d.countBy(ctx, "channel_type")
}

// countBy column 只能是内部常量
func (d *notificationHistoryDAO) countBy(ctx context.Context, column string) ([]GroupCount, error) {
	var res []GroupCount
	err := d.db.WithContext(ctx).Model(&NotificationHistory{}).
		Select(column + " AS group_key, status, COUNT(*) AS cnt").
		Group(column + ", status").
		Scan(&res).Error
	return res, err
}
