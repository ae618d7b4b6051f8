package template

import (
	_ "embed"
	"fmt"
	"sort"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/errs"
	"github.com/gotomicro/ego/core/elog"
	"gopkg.in/yaml.v2"
)

//go:embed templates.yaml
var builtinTemplates []byte

// fallbackLanguages 找不到模板时依次尝试的语言
var fallbackLanguages = []string{domain.LanguageEn, domain.LanguageZhCN}

//go:generate mockgen -source=./resolver.go -destination=./mocks/resolver.mock.go -package=templatemocks Resolver
type Resolver interface {
	// Resolve 精确匹配，找不到时按 en、zh-CN 回退，跳过请求的语言
	Resolve(notificationType domain.NotificationType, language, channel string) (domain.Template, error)
	// Render 渲染消息，模板不存在时使用内置的单行默认消息
	Render(notificationType domain.NotificationType, language, channel string, sub domain.Subscription) domain.Message
	// Preview 使用示例数据渲染，sample 覆盖默认示例数据
	Preview(notificationType domain.NotificationType, language, channel string, sample map[string]string) (domain.Message, error)

	Version() int
	Languages() []string
	Types() []domain.NotificationType
	Channels(notificationType domain.NotificationType, language string) []string
	Overview() []domain.TemplateOverview
}

type entry struct {
	Subject string `yaml:"subject"`
	Content string `yaml:"content"`
}

type catalog struct {
	Version int `yaml:"version"`
	// 通知类型 -> 语言 -> 渠道
	Templates map[string]map[string]map[string]entry `yaml:"templates"`
}

type resolver struct {
	catalog catalog
	logger  *elog.Component
}

// NewResolver 使用内置模板
func NewResolver() (Resolver, error) {
	return NewResolverFromYAML(builtinTemplates)
}

func NewResolverFromYAML(data []byte) (Resolver, error) {
	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("解析通知模板失败: %w", err)
	}
	if len(c.Templates) == 0 {
		return nil, fmt.Errorf("%w: 模板为空", errs.ErrTemplateNotFound)
	}
	return &resolver{
		catalog: c,
		logger:  elog.DefaultLogger,
	}, nil
}

func (r *resolver) Resolve(notificationType domain.NotificationType, language, channel string) (domain.Template, error) {
	byLang, ok := r.catalog.Templates[notificationType.String()]
	if !ok {
		return domain.Template{}, fmt.Errorf("%w: type=%s", errs.ErrTemplateNotFound, notificationType)
	}
	requested := NormalizeLanguage(language)
	if tpl, ok := r.lookup(byLang, notificationType, requested, channel); ok {
		return tpl, nil
	}
	for _, fallback := range fallbackLanguages {
		if fallback == requested {
			continue
		}
		if tpl, ok := r.lookup(byLang, notificationType, fallback, channel); ok {
			r.logger.Debug("通知模板语言回退",
				elog.String("type", notificationType.String()),
				elog.String("from", requested),
				elog.String("to", fallback),
				elog.String("channel", channel))
			return tpl, nil
		}
	}
	return domain.Template{}, fmt.Errorf("%w: type=%s, language=%s, channel=%s",
		errs.ErrTemplateNotFound, notificationType, language, channel)
}

func (r *resolver) lookup(byLang map[string]map[string]entry, notificationType domain.NotificationType,
	language, channel string,
) (domain.Template, bool) {
	byChannel, ok := byLang[language]
	if !ok {
		return domain.Template{}, false
	}
	e, ok := byChannel[channel]
	if !ok || e.Content == "" {
		return domain.Template{}, false
	}
	return domain.Template{
		Type:     notificationType,
		Language: language,
		Channel:  channel,
		Subject:  e.Subject,
		Content:  e.Content,
	}, true
}

func (r *resolver) Render(notificationType domain.NotificationType, language, channel string, sub domain.Subscription) domain.Message {
	tpl, err := r.Resolve(notificationType, language, channel)
	if err != nil {
		r.logger.Warn("通知模板不存在，使用默认消息",
			elog.String("type", notificationType.String()),
			elog.String("language", language),
			elog.String("channel", channel))
		return domain.Message{
			Subject:  defaultSubject(notificationType, sub),
			Content:  DefaultMessage(notificationType, sub),
			Language: domain.DefaultLanguage,
		}
	}
	replacer := newReplacer(subscriptionValues(sub, tpl.Language))
	return domain.Message{
		Subject:  replacer.Replace(tpl.Subject),
		Content:  replacer.Replace(tpl.Content),
		Language: tpl.Language,
	}
}

func (r *resolver) Preview(notificationType domain.NotificationType, language, channel string, sample map[string]string) (domain.Message, error) {
	tpl, err := r.Resolve(notificationType, language, channel)
	if err != nil {
		return domain.Message{}, err
	}
	values := SampleData()
	for k, v := range sample {
		values[k] = v
	}
	replacer := newReplacer(values)
	return domain.Message{
		Subject:  replacer.Replace(tpl.Subject),
		Content:  replacer.Replace(tpl.Content),
		Language: tpl.Language,
	}, nil
}

func (r *resolver) Version() int {
	return r.catalog.Version
}

func (r *resolver) Languages() []string {
	set := make(map[string]struct{})
	for _, byLang := range r.catalog.Templates {
		for lang := range byLang {
			set[lang] = struct{}{}
		}
	}
	return sortedKeys(set)
}

func (r *resolver) Types() []domain.NotificationType {
	res := make([]domain.NotificationType, 0, len(r.catalog.Templates))
	// 按固定顺序返回
	for _, t := range domain.NotificationTypes {
		if _, ok := r.catalog.Templates[t.String()]; ok {
			res = append(res, t)
		}
	}
	return res
}

func (r *resolver) Channels(notificationType domain.NotificationType, language string) []string {
	byChannel, ok := r.catalog.Templates[notificationType.String()][NormalizeLanguage(language)]
	if !ok {
		return []string{}
	}
	set := make(map[string]struct{}, len(byChannel))
	for ch := range byChannel {
		set[ch] = struct{}{}
	}
	return sortedKeys(set)
}

func (r *resolver) Overview() []domain.TemplateOverview {
	languages := r.Languages()
	types := r.Types()
	res := make([]domain.TemplateOverview, 0, len(types))
	for _, t := range types {
		o := domain.TemplateOverview{
			Type:             t,
			Languages:        make([]string, 0, len(languages)),
			LanguageChannels: make(map[string][]string, len(languages)),
		}
		for _, lang := range languages {
			channels := r.Channels(t, lang)
			if len(channels) == 0 {
				continue
			}
			o.Languages = append(o.Languages, lang)
			o.LanguageChannels[lang] = channels
		}
		res = append(res, o)
	}
	return res
}

func sortedKeys(set map[string]struct{}) []string {
	res := make([]string, 0, len(set))
	for k := range set {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
