package ioc

import (
	"context"

	"gitee.com/flycash/subscription-notification/internal/service/scheduler"
	"github.com/gotomicro/ego/task/ecron"
)

// Crons 定期按数据库里的设置同步一次定时器，直接改库的设置也能生效
func Crons(manager scheduler.Manager) []ecron.Ecron {
	reconcile := ecron.Load("cron.reconcile").Build(ecron.WithJob(func(ctx context.Context) error {
		return manager.Reconcile(ctx)
	}))
	return []ecron.Ecron{reconcile}
}
