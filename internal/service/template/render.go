package template

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"golang.org/x/text/language"
)

const unknownDate = "未知日期"

var (
	matcherLanguages = []string{
		domain.LanguageZhCN,
		domain.LanguageEn,
		domain.LanguageJa,
		domain.LanguageKo,
		domain.LanguageFr,
		domain.LanguageDe,
		domain.LanguageEs,
	}
	languageMatcher = language.NewMatcher([]language.Tag{
		language.MustParse(domain.LanguageZhCN),
		language.English,
		language.Japanese,
		language.Korean,
		language.French,
		language.German,
		language.Spanish,
	})

	dateLayouts = map[string]string{
		domain.LanguageZhCN: "2006/1/2",
		domain.LanguageEn:   "1/2/2006",
		domain.LanguageJa:   "2006/1/2",
		domain.LanguageKo:   "2006. 1. 2.",
		domain.LanguageFr:   "2/1/2006",
		domain.LanguageDe:   "2.1.2006",
		domain.LanguageEs:   "2/1/2006",
	}
)

// NormalizeLanguage en-US -> en，zh / zh-Hans-CN -> zh-CN
// 空值返回默认语言，无法识别的原样返回
func NormalizeLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return domain.DefaultLanguage
	}
	for _, l := range matcherLanguages {
		if strings.EqualFold(l, lang) {
			return l
		}
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return lang
	}
	// 返回的 tag 可能带扩展，用下标取
	_, idx, conf := languageMatcher.Match(tag)
	if conf == language.No {
		return lang
	}
	return matcherLanguages[idx]
}

// FormatDate 按语言习惯格式化日期
func FormatDate(t time.Time, lang string) string {
	if t.IsZero() {
		return unknownDate
	}
	layout, ok := dateLayouts[NormalizeLanguage(lang)]
	if !ok {
		layout = dateLayouts[domain.DefaultLanguage]
	}
	return t.Format(layout)
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func subscriptionValues(sub domain.Subscription, lang string) map[string]string {
	return map[string]string{
		"name":              sub.Name,
		"plan":              sub.Plan,
		"amount":            formatAmount(sub.Amount),
		"currency":          sub.Currency,
		"next_billing_date": FormatDate(sub.NextBillingDate, lang),
		"payment_method":    sub.PaymentMethod(),
		"status":            sub.Status,
		"billing_cycle":     sub.BillingCycle,
	}
}

// SampleData 预览使用的示例数据
func SampleData() map[string]string {
	return map[string]string{
		"name":              "Netflix",
		"plan":              "Premium",
		"amount":            "15.99",
		"currency":          "USD",
		"next_billing_date": "2024-01-15",
		"payment_method":    "Credit Card",
		"status":            "active",
		"billing_cycle":     "monthly",
	}
}

// newReplacer 只替换已知的占位符，其余保持原样
func newReplacer(values map[string]string) *strings.Replacer {
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	return strings.NewReplacer(pairs...)
}

// DefaultMessage 没有模板时的单行消息
func DefaultMessage(notificationType domain.NotificationType, sub domain.Subscription) string {
	date := FormatDate(sub.NextBillingDate, domain.DefaultLanguage)
	amount := formatAmount(sub.Amount)
	switch notificationType {
	case domain.NotificationTypeRenewalReminder:
		return fmt.Sprintf("续订提醒: %s 将在 %s 到期，金额: %s %s", sub.Name, date, amount, sub.Currency)
	case domain.NotificationTypeExpirationWarning:
		return fmt.Sprintf("过期警告: %s 已在 %s 过期", sub.Name, date)
	case domain.NotificationTypeRenewalSuccess:
		return fmt.Sprintf("续订成功: %s 续订成功，金额: %s %s", sub.Name, amount, sub.Currency)
	case domain.NotificationTypeRenewalFailure:
		return fmt.Sprintf("续订失败: %s 续订失败，金额: %s %s", sub.Name, amount, sub.Currency)
	case domain.NotificationTypeSubscriptionChange:
		return fmt.Sprintf("订阅变更: %s 信息已更新", sub.Name)
	default:
		return fmt.Sprintf("订阅通知: %s", sub.Name)
	}
}

func defaultSubject(_ domain.NotificationType, sub domain.Subscription) string {
	return fmt.Sprintf("订阅通知 - %s", sub.Name)
}
