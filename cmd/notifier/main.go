package main

import (
	"gitee.com/flycash/subscription-notification/cmd/notifier/ioc"
	prodioc "gitee.com/flycash/subscription-notification/internal/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
)

func main() {
	var app *prodioc.App
	// 先 New 才能读到配置
	server := ego.New(ego.WithBeforeStopClean(func() error {
		return app.Stop()
	}))
	app = ioc.InitApp()
	if err := server.
		Invoker(app.StartScheduler).
		Serve(app.Web, app.Governor).
		Cron(app.Crons...).
		Run(); err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
}
