package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/subscription-notification/internal/errs"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// 以下三张表属于订阅管理模块，这里只读

// Subscription 订阅表
type Subscription struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	Name            string    `gorm:"type:VARCHAR(255);NOT NULL"`
	Plan            string    `gorm:"type:VARCHAR(255)"`
	BillingCycle    string    `gorm:"type:VARCHAR(32)"`
	NextBillingDate time.Time `gorm:"type:DATE;index:idx_status_next_billing,priority:2"`
	Amount          float64   `gorm:"type:DECIMAL(10,2)"`
	Currency        string    `gorm:"type:VARCHAR(8)"`
	PaymentMethodID int64
	Status          string `gorm:"type:VARCHAR(16);index:idx_status_next_billing,priority:1"`
}

// TableName 重命名表
func (Subscription) TableName() string {
	return "subscriptions"
}

// PaymentMethod 支付方式表
type PaymentMethod struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Label string `gorm:"type:VARCHAR(255)"`
}

func (PaymentMethod) TableName() string {
	return "payment_methods"
}

// UserSettings 用户设置表，单用户系统只有 id = 1
type UserSettings struct {
	ID       int64  `gorm:"primaryKey"`
	Language string `gorm:"type:VARCHAR(8);NOT NULL"`
}

func (UserSettings) TableName() string {
	return "settings"
}

// SubscriptionWithLabel 带上支付方式名称
type SubscriptionWithLabel struct {
	Subscription
	PaymentMethodLabel string
}

const dateLayout = "2006-01-02"

type SubscriptionDAO interface {
	GetByID(ctx context.Context, id int64) (SubscriptionWithLabel, error)
	// FindActiveByBillingDateRange 查询 next_billing_date 在 [start, end] 之间的活跃订阅
	FindActiveByBillingDateRange(ctx context.Context, start, end time.Time) ([]SubscriptionWithLabel, error)
	// FindActiveByBillingDate 查询 next_billing_date 等于 date 的活跃订阅
	FindActiveByBillingDate(ctx context.Context, date time.Time) ([]SubscriptionWithLabel, error)
	GetLanguage(ctx context.Context) (string, error)
}

type subscriptionDAO struct {
	db *egorm.Component
}

// NewSubscriptionDAO 创建订阅只读DAO
func NewSubscriptionDAO(db *egorm.Component) SubscriptionDAO {
	return &subscriptionDAO{
		db: db,
	}
}

func (d *subscriptionDAO) query(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx).
		Table("subscriptions AS s").
		Select("s.*, pm.label AS payment_method_label").
		Joins("LEFT JOIN payment_methods pm ON s.payment_method_id = pm.id")
}

func (d *subscriptionDAO) GetByID(ctx context.Context, id int64) (SubscriptionWithLabel, error) {
	var res []SubscriptionWithLabel
	err := d.query(ctx).Where("s.id = ?", id).Limit(1).Scan(&res).Error
	if err != nil {
		return SubscriptionWithLabel{}, err
	}
	if len(res) == 0 {
		return SubscriptionWithLabel{}, fmt.Errorf("%w: id=%d", errs.ErrSubscriptionNotFound, id)
	}
	return res[0], nil
}

func (d *subscriptionDAO) FindActiveByBillingDateRange(ctx context.Context, start, end time.Time) ([]SubscriptionWithLabel, error) {
	var res []SubscriptionWithLabel
	err := d.query(ctx).
		Where("s.status = ? AND s.next_billing_date BETWEEN ? AND ?",
			"active", start.Format(dateLayout), end.Format(dateLayout)).
		Order("s.next_billing_date ASC, s.id ASC").
		Scan(&res).Error
	return res, err
}

func (d *subscriptionDAO) FindActiveByBillingDate(ctx context.Context, date time.Time) ([]SubscriptionWithLabel, error) {
	var res []SubscriptionWithLabel
	err := d.query(ctx).
		Where("s.status = ? AND s.next_billing_date = ?", "active", date.Format(dateLayout)).
		Order("s.id ASC").
		Scan(&res).Error
	return res, err
}

func (d *subscriptionDAO) GetLanguage(ctx context.Context) (string, error) {
	var settings UserSettings
	err := d.db.WithContext(ctx).Where("id = ?", 1).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return settings.Language, nil
}
