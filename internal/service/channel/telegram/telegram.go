package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/errs"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const (
	DefaultAPIBaseURL = "https://api.telegram.org"
	DefaultTimeout    = 10 * time.Second
	// MaxMessageLength 单条消息最大字符数
	MaxMessageLength = 4096

	placeholderToken = "your_telegram_bot_token_here"
)

type Config struct {
	BotToken   string        `yaml:"botToken"`
	APIBaseURL string        `yaml:"apiBaseURL"`
	Timeout    time.Duration `yaml:"timeout"`
}

// BotInfo getMe 的返回
type BotInfo struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
}

type ConfigStatus struct {
	Configured    bool `json:"configured"`
	HasToken      bool `json:"hasToken"`
	IsPlaceholder bool `json:"isPlaceholder"`
}

type apiResponse[T any] struct {
	OK          bool   `json:"ok"`
	Result      T      `json:"result"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

type sendMessageResult struct {
	MessageID int64 `json:"message_id"`
}

type chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// Channel Telegram Bot 渠道，recipient 是 chat_id
type Channel struct {
	token  string
	client *resty.Client
}

func NewChannel(cfg Config) *Channel {
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIBaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	return &Channel{
		token:  cfg.BotToken,
		client: client,
	}
}

// IsConfigured token 为空或者还是占位值都算没有配置
func (c *Channel) IsConfigured() bool {
	return c.token != "" && c.token != placeholderToken
}

func (c *Channel) ConfigStatus() ConfigStatus {
	return ConfigStatus{
		Configured:    c.IsConfigured(),
		HasToken:      c.token != "",
		IsPlaceholder: c.token == "" || c.token == placeholderToken,
	}
}

func (c *Channel) Send(ctx context.Context, recipient string, msg domain.Message) error {
	if recipient == "" {
		return fmt.Errorf("%w: chat_id 不能为空", errs.ErrInvalidParameter)
	}
	if n := utf8.RuneCountInString(msg.Content); n > MaxMessageLength {
		return fmt.Errorf("%w: 消息长度 %d 超过 %d", errs.ErrInvalidParameter, n, MaxMessageLength)
	}
	var res apiResponse[sendMessageResult]
	return c.call(ctx, "sendMessage", func(req *resty.Request) (*resty.Response, error) {
		return req.SetBody(map[string]any{
			"chat_id":                  recipient,
			"text":                     msg.Content,
			"parse_mode":               "HTML",
			"disable_web_page_preview": true,
		}).SetResult(&res).SetError(&res).Post(c.path("sendMessage"))
	}, &res.OK, &res.Description)
}

// ValidateRecipient 通过 getChat 检查 chat_id
func (c *Channel) ValidateRecipient(ctx context.Context, recipient string) error {
	if recipient == "" {
		return fmt.Errorf("%w: chat_id 不能为空", errs.ErrInvalidParameter)
	}
	var res apiResponse[chat]
	return c.call(ctx, "getChat", func(req *resty.Request) (*resty.Response, error) {
		return req.SetQueryParam("chat_id", recipient).
			SetResult(&res).SetError(&res).Get(c.path("getChat"))
	}, &res.OK, &res.Description)
}

func (c *Channel) BotInfo(ctx context.Context) (BotInfo, error) {
	var res apiResponse[BotInfo]
	err := c.call(ctx, "getMe", func(req *resty.Request) (*resty.Response, error) {
		return req.SetResult(&res).SetError(&res).Get(c.path("getMe"))
	}, &res.OK, &res.Description)
	if err != nil {
		return BotInfo{}, err
	}
	return res.Result, nil
}

func (c *Channel) TestMessage() domain.Message {
	content := fmt.Sprintf(`🔔 <b>订阅管理系统测试消息</b>

这是一条来自订阅管理系统的测试消息。

如果您收到此消息，说明您的Telegram通知配置正确！

⏰ 发送时间: %s

如有问题，请联系管理员。`, time.Now().Format("2006/1/2 15:04:05"))
	return domain.Message{
		Subject:  "测试消息",
		Content:  content,
		Language: domain.LanguageZhCN,
	}
}

func (c *Channel) path(method string) string {
	return "/bot" + c.token + "/" + method
}

// call 统一处理凭证检查和错误，远端的 description 直接作为错误信息
func (c *Channel) call(ctx context.Context, method string,
	do func(req *resty.Request) (*resty.Response, error), ok *bool, description *string,
) error {
	if !c.IsConfigured() {
		return fmt.Errorf("%w: telegram bot token", errs.ErrChannelCredentialMissing)
	}
	resp, err := do(c.client.R().SetContext(ctx))
	if err != nil {
		return errors.Wrapf(err, "调用 Telegram %s 失败", method)
	}
	if resp.IsError() || !*ok {
		if *description != "" {
			return fmt.Errorf("%w: %s", errs.ErrDispatchFailed, *description)
		}
		return fmt.Errorf("%w: Telegram %s 返回 %d", errs.ErrDispatchFailed, method, resp.StatusCode())
	}
	return nil
}
