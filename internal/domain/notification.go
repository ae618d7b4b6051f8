package domain

import (
	"fmt"
	"time"

	"gitee.com/flycash/subscription-notification/internal/errs"
)

// NotificationType 通知类型
type NotificationType string

const (
	NotificationTypeRenewalReminder    NotificationType = "renewal_reminder"    // 续订提醒
	NotificationTypeExpirationWarning  NotificationType = "expiration_warning"  // 过期警告
	NotificationTypeRenewalSuccess     NotificationType = "renewal_success"     // 续订成功
	NotificationTypeRenewalFailure     NotificationType = "renewal_failure"     // 续订失败
	NotificationTypeSubscriptionChange NotificationType = "subscription_change" // 订阅变更
)

// NotificationTypes 全部通知类型，顺序即初始化顺序
var NotificationTypes = []NotificationType{
	NotificationTypeRenewalReminder,
	NotificationTypeExpirationWarning,
	NotificationTypeRenewalSuccess,
	NotificationTypeRenewalFailure,
	NotificationTypeSubscriptionChange,
}

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	for _, nt := range NotificationTypes {
		if nt == t {
			return true
		}
	}
	return false
}

const (
	// DefaultAdvanceDays 续订提醒默认提前天数
	DefaultAdvanceDays = 7
	MinAdvanceDays     = 0
	MaxAdvanceDays     = 30
)

// NotificationSetting 每种通知类型一条
type NotificationSetting struct {
	ID                 int64
	Type               NotificationType
	Enabled            bool
	AdvanceDays        int // 仅对续订提醒有意义
	RepeatNotification bool
	Channels           []string
	Ctime              int64
	Utime              int64
}

// EffectiveChannels 没有配置渠道时默认走 telegram
func (s NotificationSetting) EffectiveChannels() []string {
	if len(s.Channels) == 0 {
		return []string{ChannelTelegram}
	}
	return s.Channels
}

// SettingUpdate 用户可修改的通知设置
type SettingUpdate struct {
	Enabled            bool     `validate:"-"`
	AdvanceDays        int      `validate:"min=0,max=30"`
	RepeatNotification bool     `validate:"-"`
	Channels           []string `validate:"dive,oneof=telegram email"`
}

// Subscription 订阅的只读视图，由订阅管理模块维护
type Subscription struct {
	ID                 int64
	Name               string
	Plan               string
	BillingCycle       string
	NextBillingDate    time.Time
	Amount             float64
	Currency           string
	PaymentMethodID    int64
	PaymentMethodLabel string
	Status             string
}

const SubscriptionStatusActive = "active"

func (s Subscription) IsActive() bool {
	return s.Status == SubscriptionStatusActive
}

// PaymentMethod 没有名称的时候退化成 ID
func (s Subscription) PaymentMethod() string {
	if s.PaymentMethodLabel != "" {
		return s.PaymentMethodLabel
	}
	if s.PaymentMethodID > 0 {
		return fmt.Sprintf("%d", s.PaymentMethodID)
	}
	return ""
}

// DueNotification 一次检查中需要处理的 (订阅, 通知类型)
type DueNotification struct {
	Subscription Subscription
	Type         NotificationType
	Channels     []string
	Repeat       bool
}

// SendRequest 手动发送通知
type SendRequest struct {
	SubscriptionID int64
	Type           NotificationType
	// Channels 为空时使用通知设置里的渠道
	Channels []string
}

func (r SendRequest) Validate() error {
	if r.SubscriptionID <= 0 {
		return fmt.Errorf("%w: SubscriptionID = %d", errs.ErrInvalidParameter, r.SubscriptionID)
	}
	if !r.Type.IsValid() {
		return fmt.Errorf("%w: Type = %q", errs.ErrInvalidParameter, r.Type)
	}
	return nil
}

// ChannelResult 单个渠道的处理结果
type ChannelResult struct {
	Channel   string `json:"channel"`
	Success   bool   `json:"success"`
	Skipped   bool   `json:"skipped,omitempty"`
	Error     string `json:"error,omitempty"`
	HistoryID uint64 `json:"historyId,omitempty"`
}

// SendReport 一个 (订阅, 通知类型) 的处理结果
type SendReport struct {
	SubscriptionID int64            `json:"subscriptionId"`
	Type           NotificationType `json:"notificationType"`
	Success        bool             `json:"success"`
	Message        string           `json:"message,omitempty"`
	Results        []ChannelResult  `json:"results"`
}

// Failures 失败的渠道，跳过的不算
func (r SendReport) Failures() []ChannelResult {
	res := make([]ChannelResult, 0, len(r.Results))
	for _, cr := range r.Results {
		if !cr.Success && !cr.Skipped {
			res = append(res, cr)
		}
	}
	return res
}
