package web

import (
	"gitee.com/flycash/subscription-notification/internal/service/scheduler"
	"github.com/gin-gonic/gin"
)

var _ Handler = (*SchedulerHandler)(nil)

type SchedulerHandler struct {
	manager scheduler.Manager
}

func NewSchedulerHandler(manager scheduler.Manager) *SchedulerHandler {
	return &SchedulerHandler{manager: manager}
}

func (h *SchedulerHandler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api/scheduler")
	g.GET("/settings", h.GetSettings)
	g.PUT("/settings", h.UpdateSettings)
	g.GET("/status", h.GetStatus)
	g.POST("/trigger", h.TriggerCheck)
}

func (h *SchedulerHandler) GetSettings(ctx *gin.Context) {
	settings, err := h.manager.Settings(ctx.Request.Context())
	if err != nil {
		Fail(ctx, err)
		return
	}
	OK(ctx, newSchedulerSettings(settings))
}

func (h *SchedulerHandler) UpdateSettings(ctx *gin.Context) {
	var req UpdateSchedulerSettingsReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		BadRequest(ctx, err)
		return
	}
	settings := req.toDomain()
	if err := h.manager.UpdateSettings(ctx.Request.Context(), settings); err != nil {
		Fail(ctx, err)
		return
	}
	OK(ctx, UpdateSchedulerSettingsResp{
		Message:  "调度器设置已更新",
		Settings: newSchedulerSettings(settings),
	})
}

func (h *SchedulerHandler) GetStatus(ctx *gin.Context) {
	settings, err := h.manager.Settings(ctx.Request.Context())
	if err != nil {
		Fail(ctx, err)
		return
	}
	status := h.manager.Status()
	OK(ctx, SchedulerStatusResp{
		Running:         status.Running,
		CurrentSchedule: status.CurrentSchedule,
		Settings:        newSchedulerSettings(settings),
	})
}

// TriggerCheck 同步执行，返回这次检查的汇总
func (h *SchedulerHandler) TriggerCheck(ctx *gin.Context) {
	summary := h.manager.TriggerManually(ctx.Request.Context())
	OK(ctx, TriggerCheckResp{
		Message: "通知检查已执行",
		Summary: summary,
	})
}
