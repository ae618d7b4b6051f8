package ioc

import (
	"gitee.com/flycash/subscription-notification/internal/web"
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/server/egovernor"
)

func InitHTTPServer(handlers []web.Handler) *egin.Component {
	server := egin.Load("server.http").Build()
	for _, h := range handlers {
		h.PublicRoutes(server.Engine)
	}
	return server
}

// InitHandlers 注册顺序就是路由顺序
func InitHandlers(scheduler *web.SchedulerHandler,
	notification *web.NotificationHandler,
	template *web.TemplateHandler,
) []web.Handler {
	return []web.Handler{scheduler, notification, template}
}

// InitGovernor 暴露 /metrics 等治理接口
func InitGovernor() *egovernor.Component {
	return egovernor.Load("server.governor").Build()
}
