package repository

import (
	"context"
	"time"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

//go:generate mockgen -source=./subscription.go -destination=./mocks/subscription.mock.go -package=repomocks SubscriptionRepository,PreferenceRepository
type SubscriptionRepository interface {
	GetByID(ctx context.Context, id int64) (domain.Subscription, error)
	// FindActiveByBillingDateRange next_billing_date 落在 [start, end] 的活跃订阅，只比较日期
	FindActiveByBillingDateRange(ctx context.Context, start, end time.Time) ([]domain.Subscription, error)
	FindActiveByBillingDate(ctx context.Context, date time.Time) ([]domain.Subscription, error)
}

// PreferenceRepository 用户偏好，单用户系统只有一份
type PreferenceRepository interface {
	GetLanguage(ctx context.Context) (string, error)
}

type subscriptionRepository struct {
	dao dao.SubscriptionDAO
}

// NewSubscriptionRepository 创建订阅只读仓库
func NewSubscriptionRepository(subDAO dao.SubscriptionDAO) SubscriptionRepository {
	return &subscriptionRepository{
		dao: subDAO,
	}
}

func (r *subscriptionRepository) GetByID(ctx context.Context, id int64) (domain.Subscription, error) {
	entity, err := r.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Subscription{}, err
	}
	return toSubscription(entity), nil
}

func (r *subscriptionRepository) FindActiveByBillingDateRange(ctx context.Context, start, end time.Time) ([]domain.Subscription, error) {
	entities, err := r.dao.FindActiveByBillingDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.SubscriptionWithLabel) domain.Subscription {
		return toSubscription(src)
	}), nil
}

func (r *subscriptionRepository) FindActiveByBillingDate(ctx context.Context, date time.Time) ([]domain.Subscription, error) {
	entities, err := r.dao.FindActiveByBillingDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.SubscriptionWithLabel) domain.Subscription {
		return toSubscription(src)
	}), nil
}

func toSubscription(e dao.SubscriptionWithLabel) domain.Subscription {
	return domain.Subscription{
		ID:                 e.ID,
		Name:               e.Name,
		Plan:               e.Plan,
		BillingCycle:       e.BillingCycle,
		NextBillingDate:    e.NextBillingDate,
		Amount:             e.Amount,
		Currency:           e.Currency,
		PaymentMethodID:    e.PaymentMethodID,
		PaymentMethodLabel: e.PaymentMethodLabel,
		Status:             e.Status,
	}
}

type preferenceRepository struct {
	dao dao.SubscriptionDAO
}

// NewPreferenceRepository 语言偏好存在订阅模块的 settings 表里
func NewPreferenceRepository(subDAO dao.SubscriptionDAO) PreferenceRepository {
	return &preferenceRepository{
		dao: subDAO,
	}
}

// GetLanguage 没有设置时返回默认语言
func (r *preferenceRepository) GetLanguage(ctx context.Context) (string, error) {
	lang, err := r.dao.GetLanguage(ctx)
	if err != nil {
		return domain.DefaultLanguage, err
	}
	if lang == "" {
		return domain.DefaultLanguage, nil
	}
	return lang, nil
}
