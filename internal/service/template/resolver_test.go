//go:build unit

package template

import (
	"testing"
	"time"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `
version: 3
templates:
  renewal_reminder:
    zh-CN:
      telegram:
        content: "续订 {{name}} {{next_billing_date}} {{amount}} {{currency}} {{unknown}}"
      email:
        subject: "提醒 - {{name}}"
        content: "邮件 {{name}}"
    en:
      telegram:
        content: "Renew {{name}} on {{next_billing_date}} via {{payment_method}}"
  expiration_warning:
    zh-CN:
      telegram:
        content: "过期 {{name}}"
`

func newTestResolver(t *testing.T) Resolver {
	t.Helper()
	r, err := NewResolverFromYAML([]byte(testCatalog))
	require.NoError(t, err)
	return r
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		typ      domain.NotificationType
		lang     string
		channel  string
		wantLang string
		wantErr  error
	}{
		{
			name:     "精确匹配",
			typ:      domain.NotificationTypeRenewalReminder,
			lang:     domain.LanguageZhCN,
			channel:  domain.ChannelTelegram,
			wantLang: domain.LanguageZhCN,
		},
		{
			name:     "日语回退到英文",
			typ:      domain.NotificationTypeRenewalReminder,
			lang:     domain.LanguageJa,
			channel:  domain.ChannelTelegram,
			wantLang: domain.LanguageEn,
		},
		{
			name:     "带地区的语言先归一化",
			typ:      domain.NotificationTypeRenewalReminder,
			lang:     "en-US",
			channel:  domain.ChannelTelegram,
			wantLang: domain.LanguageEn,
		},
		{
			name:     "英文没有该渠道回退到中文",
			typ:      domain.NotificationTypeRenewalReminder,
			lang:     domain.LanguageEn,
			channel:  domain.ChannelEmail,
			wantLang: domain.LanguageZhCN,
		},
		{
			name:    "所有语言都没有该渠道",
			typ:     domain.NotificationTypeExpirationWarning,
			lang:    domain.LanguageEn,
			channel: domain.ChannelEmail,
			wantErr: errs.ErrTemplateNotFound,
		},
		{
			name:    "未知类型",
			typ:     domain.NotificationTypeRenewalFailure,
			lang:    domain.LanguageZhCN,
			channel: domain.ChannelTelegram,
			wantErr: errs.ErrTemplateNotFound,
		},
	}

	r := newTestResolver(t)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tpl, err := r.Resolve(tc.typ, tc.lang, tc.channel)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantLang, tpl.Language)
			assert.Equal(t, tc.channel, tpl.Channel)
			assert.Equal(t, tc.typ, tpl.Type)
		})
	}
}

func TestResolver_Render(t *testing.T) {
	t.Parallel()

	sub := domain.Subscription{
		ID:              1,
		Name:            "Netflix",
		NextBillingDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:          15.5,
		Currency:        "USD",
		PaymentMethodID: 9,
		Status:          domain.SubscriptionStatusActive,
	}
	r := newTestResolver(t)

	t.Run("中文模板，未知占位符保持原样", func(t *testing.T) {
		t.Parallel()
		msg := r.Render(domain.NotificationTypeRenewalReminder, domain.LanguageZhCN, domain.ChannelTelegram, sub)
		assert.Equal(t, "续订 Netflix 2024/3/5 15.5 USD {{unknown}}", msg.Content)
		assert.Equal(t, domain.LanguageZhCN, msg.Language)
	})

	t.Run("回退后按实际语言格式化日期", func(t *testing.T) {
		t.Parallel()
		msg := r.Render(domain.NotificationTypeRenewalReminder, domain.LanguageDe, domain.ChannelTelegram, sub)
		// 支付方式名称为空时使用 ID
		assert.Equal(t, "Renew Netflix on 3/5/2024 via 9", msg.Content)
		assert.Equal(t, domain.LanguageEn, msg.Language)
	})

	t.Run("邮件主题也会替换", func(t *testing.T) {
		t.Parallel()
		msg := r.Render(domain.NotificationTypeRenewalReminder, domain.LanguageZhCN, domain.ChannelEmail, sub)
		assert.Equal(t, "提醒 - Netflix", msg.Subject)
		assert.Equal(t, "邮件 Netflix", msg.Content)
	})

	t.Run("没有模板使用默认消息", func(t *testing.T) {
		t.Parallel()
		msg := r.Render(domain.NotificationTypeRenewalFailure, domain.LanguageEn, domain.ChannelTelegram, sub)
		assert.Equal(t, "续订失败: Netflix 续订失败，金额: 15.5 USD", msg.Content)
		assert.Equal(t, domain.DefaultLanguage, msg.Language)
	})
}

func TestResolver_Preview(t *testing.T) {
	t.Parallel()
	r := newTestResolver(t)

	msg, err := r.Preview(domain.NotificationTypeRenewalReminder, domain.LanguageEn, domain.ChannelTelegram,
		map[string]string{"name": "Spotify"})
	require.NoError(t, err)
	assert.Equal(t, "Renew Spotify on 2024-01-15 via Credit Card", msg.Content)

	_, err = r.Preview(domain.NotificationTypeSubscriptionChange, domain.LanguageEn, domain.ChannelTelegram, nil)
	assert.ErrorIs(t, err, errs.ErrTemplateNotFound)
}

func TestResolver_Catalog(t *testing.T) {
	t.Parallel()
	r := newTestResolver(t)

	assert.Equal(t, 3, r.Version())
	assert.Equal(t, []string{domain.LanguageEn, domain.LanguageZhCN}, r.Languages())
	assert.Equal(t, []domain.NotificationType{
		domain.NotificationTypeRenewalReminder,
		domain.NotificationTypeExpirationWarning,
	}, r.Types())
	assert.Equal(t, []string{domain.ChannelEmail, domain.ChannelTelegram},
		r.Channels(domain.NotificationTypeRenewalReminder, domain.LanguageZhCN))
	assert.Empty(t, r.Channels(domain.NotificationTypeExpirationWarning, domain.LanguageEn))

	overview := r.Overview()
	require.Len(t, overview, 2)
	assert.Equal(t, []string{domain.LanguageEn, domain.LanguageZhCN}, overview[0].Languages)
	assert.Equal(t, []string{domain.LanguageZhCN}, overview[1].Languages)
	assert.Equal(t, []string{domain.ChannelTelegram}, overview[1].LanguageChannels[domain.LanguageZhCN])
}

func TestBuiltinCatalog(t *testing.T) {
	t.Parallel()
	r, err := NewResolver()
	require.NoError(t, err)

	// 内置模板覆盖全部类型、中英文和两个渠道
	for _, typ := range domain.NotificationTypes {
		for _, lang := range []string{domain.LanguageZhCN, domain.LanguageEn} {
			for _, ch := range domain.SupportedChannels {
				tpl, err := r.Resolve(typ, lang, ch)
				require.NoError(t, err, "type=%s lang=%s channel=%s", typ, lang, ch)
				assert.Equal(t, lang, tpl.Language)
				assert.NotEmpty(t, tpl.Content)
				if ch == domain.ChannelEmail {
					assert.NotEmpty(t, tpl.Subject)
				}
			}
		}
	}
}

func TestNormalizeLanguage(t *testing.T) {
	t.Parallel()
	testCases := map[string]string{
		"":           domain.DefaultLanguage,
		"zh-CN":      domain.LanguageZhCN,
		"zh-cn":      domain.LanguageZhCN,
		"zh-Hans-CN": domain.LanguageZhCN,
		"en-US":      domain.LanguageEn,
		"ja":         domain.LanguageJa,
		"##":         "##",
	}
	for in, want := range testCases {
		assert.Equal(t, want, NormalizeLanguage(in), in)
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()
	d := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	testCases := map[string]string{
		domain.LanguageZhCN: "2024/1/15",
		domain.LanguageEn:   "1/15/2024",
		domain.LanguageJa:   "2024/1/15",
		domain.LanguageKo:   "2024. 1. 15.",
		domain.LanguageFr:   "15/1/2024",
		domain.LanguageDe:   "15.1.2024",
		domain.LanguageEs:   "15/1/2024",
	}
	for lang, want := range testCases {
		assert.Equal(t, want, FormatDate(d, lang), lang)
	}
	assert.Equal(t, "未知日期", FormatDate(time.Time{}, domain.LanguageEn))
}
