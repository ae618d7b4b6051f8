package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/errs"
	"gitee.com/flycash/subscription-notification/internal/pkg/validate"
	"gitee.com/flycash/subscription-notification/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/robfig/cron/v3"
)

// Manager 维护每天一次的检查定时器
// 只有 UpdateSettings 和 Reconcile 会改变定时器，任何设置变化都是先停旧的再建新的
//
//go:generate mockgen -source=./manager.go -destination=./mocks/manager.mock.go -package=schedulermocks Manager
type Manager interface {
	Start(ctx context.Context) error
	// Stop 不等待正在执行的检查
	Stop()
	// Reconcile 按持久化的设置同步定时器，设置没有变化时什么都不做
	// 失败时保留原来的定时器
	Reconcile(ctx context.Context) error
	UpdateSettings(ctx context.Context, settings domain.SchedulerSettings) error
	Settings(ctx context.Context) (domain.SchedulerSettings, error)
	// TriggerManually 同步执行一次检查，不管定时器是否启用
	TriggerManually(ctx context.Context) CheckSummary
	Status() domain.SchedulerStatus
}

type manager struct {
	repo    repository.SchedulerSettingsRepository
	checker Checker

	mu sync.Mutex
	// cron 为 nil 表示没有定时器
	cron     *cron.Cron
	schedule cron.Schedule
	current  *domain.Schedule
	// snapshot 上一次成功同步的设置
	snapshot *domain.SchedulerSettings

	logger *elog.Component
}

func NewManager(repo repository.SchedulerSettingsRepository, checker Checker) Manager {
	return &manager{
		repo:    repo,
		checker: checker,
		logger:  elog.DefaultLogger,
	}
}

func (m *manager) Start(ctx context.Context) error {
	return m.Reconcile(ctx)
}

func (m *manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
	m.snapshot = nil
}

func (m *manager) stopLocked() {
	if m.cron != nil {
		m.cron.Stop()
	}
	m.cron = nil
	m.schedule = nil
	m.current = nil
}

func (m *manager) Reconcile(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	settings, err := m.repo.Get(ctx)
	if err != nil {
		return m.reconcileFailed(fmt.Errorf("%w: 读取调度器设置: %w", errs.ErrScheduleReconcileFailed, err))
	}
	if m.snapshot != nil && *m.snapshot == settings {
		return nil
	}

	if !settings.Enabled {
		m.stopLocked()
		m.snapshot = &settings
		m.logger.Info("通知调度已停用")
		return nil
	}

	hour, minute, err := settings.HourMinute()
	if err != nil {
		return m.reconcileFailed(fmt.Errorf("%w: %w", errs.ErrScheduleReconcileFailed, err))
	}
	loc, err := settings.Location()
	if err != nil {
		return m.reconcileFailed(fmt.Errorf("%w: 加载时区 %s: %w", errs.ErrScheduleReconcileFailed, settings.Timezone, err))
	}
	spec := fmt.Sprintf("%d %d * * *", minute, hour)
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return m.reconcileFailed(fmt.Errorf("%w: %w", errs.ErrScheduleReconcileFailed, err))
	}

	c := cron.New(cron.WithLocation(loc))
	c.Schedule(schedule, cron.FuncJob(m.runScheduled))

	// 新的准备好之后再替换旧的
	m.stopLocked()
	c.Start()
	m.cron = c
	m.schedule = schedule
	m.current = &domain.Schedule{
		CheckTime: settings.CheckTime,
		Timezone:  settings.Timezone,
		CronSpec:  spec,
	}
	m.snapshot = &settings
	m.logger.Info("通知调度已更新",
		elog.String("checkTime", settings.CheckTime),
		elog.String("timezone", settings.Timezone),
		elog.String("cron", spec))
	return nil
}

func (m *manager) reconcileFailed(err error) error {
	m.logger.Error("同步通知调度失败，保留原来的调度", elog.FieldErr(err))
	return err
}

func (m *manager) runScheduled() {
	m.logger.Info("开始定时通知检查")
	m.checker.Check(context.Background())
}

func (m *manager) UpdateSettings(ctx context.Context, settings domain.SchedulerSettings) error {
	if err := validate.Struct(settings); err != nil {
		return err
	}
	if err := m.repo.Save(ctx, settings); err != nil {
		return err
	}
	return m.Reconcile(ctx)
}

func (m *manager) Settings(ctx context.Context) (domain.SchedulerSettings, error) {
	return m.repo.Get(ctx)
}

func (m *manager) TriggerManually(ctx context.Context) CheckSummary {
	m.logger.Info("手动触发通知检查")
	return m.checker.Check(ctx)
}

func (m *manager) Status() domain.SchedulerStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cron == nil || m.current == nil {
		return domain.SchedulerStatus{}
	}
	current := *m.current
	loc, err := time.LoadLocation(current.Timezone)
	if err == nil {
		current.NextRun = m.schedule.Next(time.Now().In(loc))
	}
	return domain.SchedulerStatus{
		Running:         true,
		CurrentSchedule: &current,
	}
}
