package email

import (
	"context"
	"fmt"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/errs"
	"gitee.com/flycash/subscription-notification/internal/pkg/validate"
	"github.com/mrz1836/postmark"
	"github.com/pkg/errors"
)

type Config struct {
	ServerToken  string `yaml:"serverToken"`
	AccountToken string `yaml:"accountToken"`
	From         string `yaml:"from"`
}

// Sender postmark.Client 满足这个接口
type Sender interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

// Channel 邮件渠道，recipient 是邮箱地址
type Channel struct {
	sender Sender
	from   string
}

func NewChannel(cfg Config) *Channel {
	return NewChannelWithSender(postmark.NewClient(cfg.ServerToken, cfg.AccountToken), cfg.From)
}

func NewChannelWithSender(sender Sender, from string) *Channel {
	return &Channel{
		sender: sender,
		from:   from,
	}
}

func (c *Channel) Send(ctx context.Context, recipient string, msg domain.Message) error {
	if c.from == "" {
		return fmt.Errorf("%w: 邮件发件人", errs.ErrChannelCredentialMissing)
	}
	if err := c.ValidateRecipient(ctx, recipient); err != nil {
		return err
	}
	subject := msg.Subject
	if subject == "" {
		subject = "订阅通知"
	}
	resp, err := c.sender.SendEmail(ctx, postmark.Email{
		From:     c.from,
		To:       recipient,
		Subject:  subject,
		TextBody: msg.Content,
	})
	if err != nil {
		return errors.Wrap(err, "调用 Postmark 发送邮件失败")
	}
	if resp.ErrorCode > 0 {
		return fmt.Errorf("%w: postmark %d - %s", errs.ErrDispatchFailed, resp.ErrorCode, resp.Message)
	}
	return nil
}

// ValidateRecipient 只校验邮箱格式
func (c *Channel) ValidateRecipient(_ context.Context, recipient string) error {
	if err := validate.Var(recipient, "required,email"); err != nil {
		return fmt.Errorf("%w: 邮箱格式不正确 %q", errs.ErrInvalidParameter, recipient)
	}
	return nil
}

func (c *Channel) TestMessage() domain.Message {
	return domain.Message{
		Subject:  "订阅管理系统测试邮件",
		Content:  "这是一封来自订阅管理系统的测试邮件。\n\n如果您收到此邮件，说明您的邮件通知配置正确！",
		Language: domain.LanguageZhCN,
	}
}
