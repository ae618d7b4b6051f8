package channel

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/errs"
	"gitee.com/flycash/subscription-notification/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// Dispatcher 渠道分发器，按渠道类型找到实现和接收者
//
//go:generate mockgen -source=./dispatcher.go -destination=./mocks/dispatcher.mock.go -package=channelmocks Dispatcher
type Dispatcher interface {
	// Target 渠道配置，未配置返回 errs.ErrChannelNotConfigured，没有实现返回 errs.ErrChannelNotSupported
	Target(ctx context.Context, channelType string) (domain.ChannelConfig, error)
	// Send 不返回错误，失败（包括 panic）都放在结果里
	Send(ctx context.Context, channelType, recipient string, msg domain.Message) domain.SendResult
	TestNotification(ctx context.Context, channelType string) domain.SendResult
	ValidateRecipient(ctx context.Context, channelType, recipient string) domain.SendResult
	Channels() []string
}

type dispatcher struct {
	channels map[string]Channel
	repo     repository.ChannelConfigRepository
	logger   *elog.Component
}

// NewDispatcher 创建渠道分发器
func NewDispatcher(channels map[string]Channel, repo repository.ChannelConfigRepository) Dispatcher {
	return &dispatcher{
		channels: channels,
		repo:     repo,
		logger:   elog.DefaultLogger,
	}
}

func (d *dispatcher) Target(ctx context.Context, channelType string) (domain.ChannelConfig, error) {
	if _, ok := d.channels[channelType]; !ok {
		return domain.ChannelConfig{}, fmt.Errorf("%w: %s", errs.ErrChannelNotSupported, channelType)
	}
	cfg, err := d.repo.GetByType(ctx, channelType)
	if err != nil {
		return domain.ChannelConfig{}, err
	}
	if !cfg.Usable() {
		return domain.ChannelConfig{}, fmt.Errorf("%w: %s", errs.ErrChannelNotConfigured, channelType)
	}
	return cfg, nil
}

func (d *dispatcher) Send(ctx context.Context, channelType, recipient string, msg domain.Message) (res domain.SendResult) {
	ch, ok := d.channels[channelType]
	if !ok {
		return domain.SendFailed(fmt.Errorf("%w: %s", errs.ErrChannelNotSupported, channelType))
	}
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("渠道发送出现 panic",
				elog.String("channel", channelType),
				elog.Any("panic", r))
			res = domain.SendFailed(fmt.Errorf("%w: %v", errs.ErrDispatchFailed, r))
		}
	}()
	if err := ch.Send(ctx, recipient, msg); err != nil {
		d.logger.Warn("渠道发送失败",
			elog.String("channel", channelType),
			elog.FieldErr(err))
		return domain.SendFailed(err)
	}
	return domain.SendSucceeded()
}

func (d *dispatcher) TestNotification(ctx context.Context, channelType string) domain.SendResult {
	cfg, err := d.Target(ctx, channelType)
	if err != nil {
		if errors.Is(err, errs.ErrChannelNotSupported) {
			return domain.SendFailed(err)
		}
		return domain.SendFailed(errs.ErrChannelNotConfigured)
	}
	msg := d.testMessage(channelType)
	res := d.Send(ctx, channelType, cfg.Recipient(), msg)
	if res.Success {
		if err := d.repo.TouchLastUsed(ctx, channelType, time.Now().UnixMilli()); err != nil {
			d.logger.Warn("更新渠道最后使用时间失败",
				elog.String("channel", channelType),
				elog.FieldErr(err))
		}
	}
	return res
}

func (d *dispatcher) testMessage(channelType string) domain.Message {
	if tester, ok := As[Tester](d.channels[channelType]); ok {
		return tester.TestMessage()
	}
	return domain.Message{
		Subject:  "测试通知",
		Content:  fmt.Sprintf("这是一条测试通知，渠道: %s，发送时间: %s", channelType, time.Now().Format(time.DateTime)),
		Language: domain.DefaultLanguage,
	}
}

func (d *dispatcher) ValidateRecipient(ctx context.Context, channelType, recipient string) domain.SendResult {
	ch, ok := d.channels[channelType]
	if !ok {
		return domain.SendFailed(fmt.Errorf("%w: %s", errs.ErrChannelNotSupported, channelType))
	}
	validator, ok := As[RecipientValidator](ch)
	if !ok {
		return domain.SendSucceeded()
	}
	if err := validator.ValidateRecipient(ctx, recipient); err != nil {
		return domain.SendFailed(err)
	}
	return domain.SendSucceeded()
}

func (d *dispatcher) Channels() []string {
	res := make([]string, 0, len(d.channels))
	for k := range d.channels {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
