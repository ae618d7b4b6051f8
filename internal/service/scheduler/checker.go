package scheduler

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/errs"
	"gitee.com/flycash/subscription-notification/internal/repository"
	"gitee.com/flycash/subscription-notification/internal/service/notification"
	"gitee.com/flycash/subscription-notification/internal/service/selector"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
)

// CheckSummary 一次检查的汇总
type CheckSummary struct {
	Due     int `json:"due"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// Checker 检查并发送到期通知，定时器和手动触发共用
//
//go:generate mockgen -source=./checker.go -destination=./mocks/checker.mock.go -package=schedulermocks Checker,PairLocker
type Checker interface {
	// Check 错误只记录日志，不返回
	Check(ctx context.Context) CheckSummary
}

// PairLocker 同一个 (订阅, 通知类型) 的互斥，拿不到锁返回错误
type PairLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

type checker struct {
	settings     repository.SchedulerSettingsRepository
	selector     selector.Selector
	orchestrator notification.Service
	// locker 为 nil 时不加锁，接受手动和定时同时运行导致的重复发送
	locker PairLocker
	now    func() time.Time
	logger *elog.Component
}

func NewChecker(
	settings repository.SchedulerSettingsRepository,
	sel selector.Selector,
	orchestrator notification.Service,
	locker PairLocker,
) Checker {
	return &checker{
		settings:     settings,
		selector:     sel,
		orchestrator: orchestrator,
		locker:       locker,
		now:          time.Now,
		logger:       elog.DefaultLogger,
	}
}

func (c *checker) Check(ctx context.Context) CheckSummary {
	now := c.now().In(c.location(ctx))
	dues := c.selector.SelectDue(ctx, now)
	summary := CheckSummary{Due: len(dues)}

	var err error
	for _, due := range dues {
		report, ok := c.process(ctx, now, due)
		if !ok || !report.Success {
			summary.Skipped++
			continue
		}
		for _, r := range report.Results {
			switch {
			case r.Success:
				summary.Sent++
			case r.Skipped:
				summary.Skipped++
			default:
				summary.Failed++
				err = multierror.Append(err, fmt.Errorf("%w: subscription=%d, type=%s, channel=%s: %s",
					errs.ErrDispatchFailed, due.Subscription.ID, due.Type, r.Channel, r.Error))
			}
		}
	}
	if err != nil {
		c.logger.Warn("通知检查存在发送失败",
			elog.Int("due", summary.Due),
			elog.Int("failed", summary.Failed),
			elog.FieldErr(err))
	}
	c.logger.Info("通知检查完成",
		elog.Int("due", summary.Due),
		elog.Int("sent", summary.Sent),
		elog.Int("failed", summary.Failed),
		elog.Int("skipped", summary.Skipped))
	return summary
}

func (c *checker) location(ctx context.Context) *time.Location {
	settings, err := c.settings.Get(ctx)
	if err != nil {
		c.logger.Warn("读取调度器设置失败，使用默认时区", elog.FieldErr(err))
		settings = domain.DefaultSchedulerSettings()
	}
	loc, err := settings.Location()
	if err != nil {
		c.logger.Warn("加载时区失败，使用默认时区",
			elog.String("timezone", settings.Timezone),
			elog.FieldErr(err))
		loc, err = domain.DefaultSchedulerSettings().Location()
		if err != nil {
			return time.UTC
		}
	}
	return loc
}

// process 返回 false 表示这一次跳过
func (c *checker) process(ctx context.Context, now time.Time, due domain.DueNotification) (domain.SendReport, bool) {
	if c.locker == nil {
		return c.orchestrator.Process(ctx, due), true
	}
	key := fmt.Sprintf("notification:%d:%s", due.Subscription.ID, due.Type)
	unlock, err := c.locker.Lock(ctx, key)
	if err != nil {
		c.logger.Info("没有拿到通知锁，本次跳过",
			elog.String("key", key),
			elog.FieldErr(err))
		return domain.SendReport{}, false
	}
	defer unlock()

	// 拿到锁之后别人可能已经发过了
	ok, err := c.selector.StillDue(ctx, now, due)
	if err != nil {
		c.logger.Error("复查发送记录失败，本次跳过",
			elog.String("key", key),
			elog.FieldErr(err))
		return domain.SendReport{}, false
	}
	if !ok {
		return domain.SendReport{}, false
	}
	return c.orchestrator.Process(ctx, due), true
}
