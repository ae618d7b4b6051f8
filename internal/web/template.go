package web

import (
	"fmt"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/errs"
	"gitee.com/flycash/subscription-notification/internal/service/template"
	"github.com/gin-gonic/gin"
)

var _ Handler = (*TemplateHandler)(nil)

// TemplateHandler 模板目录是只读的
type TemplateHandler struct {
	resolver template.Resolver
}

func NewTemplateHandler(resolver template.Resolver) *TemplateHandler {
	return &TemplateHandler{resolver: resolver}
}

func (h *TemplateHandler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api/templates")
	g.GET("/languages", h.Languages)
	g.GET("/types", h.Types)
	g.GET("/channels", h.Channels)
	g.GET("/template", h.GetTemplate)
	g.GET("/overview", h.Overview)
	g.POST("/preview", h.Preview)
}

func (h *TemplateHandler) Languages(ctx *gin.Context) {
	OK(ctx, h.resolver.Languages())
}

func (h *TemplateHandler) Types(ctx *gin.Context) {
	OK(ctx, h.resolver.Types())
}

func (h *TemplateHandler) Channels(ctx *gin.Context) {
	typ, ok := h.notificationType(ctx, ctx.Query("notificationType"))
	if !ok {
		return
	}
	OK(ctx, h.resolver.Channels(typ, ctx.DefaultQuery("language", domain.DefaultLanguage)))
}

func (h *TemplateHandler) GetTemplate(ctx *gin.Context) {
	typ, ok := h.notificationType(ctx, ctx.Query("notificationType"))
	if !ok {
		return
	}
	tmpl, err := h.resolver.Resolve(typ,
		ctx.DefaultQuery("language", domain.DefaultLanguage),
		ctx.DefaultQuery("channel", domain.ChannelTelegram))
	if err != nil {
		Fail(ctx, err)
		return
	}
	OK(ctx, newTemplate(tmpl))
}

func (h *TemplateHandler) Overview(ctx *gin.Context) {
	OK(ctx, TemplateOverviewResp{
		Overview:       h.resolver.Overview(),
		TotalTypes:     len(h.resolver.Types()),
		TotalLanguages: len(h.resolver.Languages()),
		Version:        h.resolver.Version(),
	})
}

func (h *TemplateHandler) Preview(ctx *gin.Context) {
	var req PreviewTemplateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		BadRequest(ctx, err)
		return
	}
	typ, ok := h.notificationType(ctx, req.NotificationType)
	if !ok {
		return
	}
	if req.Language == "" {
		req.Language = domain.DefaultLanguage
	}
	if req.Channel == "" {
		req.Channel = domain.ChannelTelegram
	}
	tmpl, err := h.resolver.Resolve(typ, req.Language, req.Channel)
	if err != nil {
		Fail(ctx, err)
		return
	}
	msg, err := h.resolver.Preview(typ, req.Language, req.Channel, req.SampleData)
	if err != nil {
		Fail(ctx, err)
		return
	}
	OK(ctx, PreviewTemplateResp{
		Template: newTemplate(tmpl),
		Rendered: Message{
			Subject:  msg.Subject,
			Content:  msg.Content,
			Language: msg.Language,
		},
	})
}

// notificationType 参数不合法时直接写 400 响应
func (h *TemplateHandler) notificationType(ctx *gin.Context, raw string) (domain.NotificationType, bool) {
	typ := domain.NotificationType(raw)
	if !typ.IsValid() {
		Fail(ctx, fmt.Errorf("%w: notificationType = %q", errs.ErrInvalidParameter, raw))
		return "", false
	}
	return typ, true
}

func newTemplate(t domain.Template) Template {
	return Template{
		NotificationType: t.Type.String(),
		Language:         t.Language,
		Channel:          t.Channel,
		Subject:          t.Subject,
		Content:          t.Content,
	}
}
