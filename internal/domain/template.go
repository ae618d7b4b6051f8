package domain

const (
	LanguageZhCN = "zh-CN"
	LanguageEn   = "en"
	LanguageJa   = "ja"
	LanguageKo   = "ko"
	LanguageFr   = "fr"
	LanguageDe   = "de"
	LanguageEs   = "es"

	DefaultLanguage = LanguageZhCN
)

// SupportedLanguages 用户可以选择的界面语言，模板不一定都有
var SupportedLanguages = []string{
	LanguageZhCN,
	LanguageEn,
	LanguageJa,
	LanguageKo,
	LanguageFr,
	LanguageDe,
	LanguageEs,
}

// Template 模板
type Template struct {
	Type     NotificationType
	Language string
	Channel  string
	Subject  string
	Content  string
}

// TemplateOverview 某个通知类型下有哪些语言和渠道
type TemplateOverview struct {
	Type             NotificationType    `json:"notificationType"`
	Languages        []string            `json:"supportedLanguages"`
	LanguageChannels map[string][]string `json:"languageChannels"`
}
