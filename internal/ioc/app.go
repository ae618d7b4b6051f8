package ioc

import (
	"context"

	"gitee.com/flycash/subscription-notification/internal/repository"
	"gitee.com/flycash/subscription-notification/internal/service/scheduler"
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/server/egovernor"
	"github.com/gotomicro/ego/task/ecron"
	"go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	Web      *egin.Component
	Governor *egovernor.Component
	Crons    []ecron.Ecron
	Tracer   *trace.TracerProvider

	Manager       scheduler.Manager
	Settings      repository.NotificationSettingRepository
	SchedulerRepo repository.SchedulerSettingsRepository
}

// StartScheduler 补齐默认设置之后按设置启动定时器
func (a *App) StartScheduler() error {
	if err := InitDefaultSettings(a.Settings, a.SchedulerRepo); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), initDefaultsTimeout)
	defer cancel()
	return a.Manager.Start(ctx)
}

// Stop 进程退出时调用
func (a *App) Stop() error {
	a.Manager.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), initDefaultsTimeout)
	defer cancel()
	return a.Tracer.Shutdown(ctx)
}
