package tracing

import (
	"context"
	"unicode/utf8"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/service/channel"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Channel 为渠道实现添加链路追踪的装饰器
type Channel struct {
	channel channel.Channel
	name    string
	tracer  trace.Tracer
}

// NewChannel 创建一个新的带有链路追踪的渠道
func NewChannel(name string, c channel.Channel) *Channel {
	return &Channel{
		channel: c,
		name:    name,
		tracer:  otel.Tracer("subscription-notification/channel"),
	}
}

func (c *Channel) Send(ctx context.Context, recipient string, msg domain.Message) error {
	// 接收者属于隐私数据，不放进 span
	ctx, span := c.tracer.Start(ctx, "Channel.Send",
		trace.WithAttributes(
			attribute.String("channel.name", c.name),
			attribute.String("message.language", msg.Language),
			attribute.Int("message.length", utf8.RuneCountInString(msg.Content)),
		))
	defer span.End()

	err := c.channel.Send(ctx, recipient, msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (c *Channel) Unwrap() channel.Channel {
	return c.channel
}
