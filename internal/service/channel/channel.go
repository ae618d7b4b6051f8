package channel

import (
	"context"

	"gitee.com/flycash/subscription-notification/internal/domain"
)

// Channel 渠道接口，一个渠道一个实现
//
//go:generate mockgen -source=./channel.go -destination=./mocks/channel.mock.go -package=channelmocks Channel,RecipientValidator,Tester
type Channel interface {
	// Send 发送消息给 recipient，recipient 的含义由渠道决定
	Send(ctx context.Context, recipient string, msg domain.Message) error
}

// RecipientValidator 可选能力，保存配置前检查接收者是否可达
type RecipientValidator interface {
	ValidateRecipient(ctx context.Context, recipient string) error
}

// Tester 可选能力，测试通知使用渠道自己的诊断消息
type Tester interface {
	TestMessage() domain.Message
}

// Wrapper 装饰器通过它暴露被装饰的渠道
type Wrapper interface {
	Unwrap() Channel
}

// As 沿着装饰器链查找实现了 T 的渠道
func As[T any](c Channel) (T, bool) {
	for c != nil {
		if t, ok := c.(T); ok {
			return t, true
		}
		w, ok := c.(Wrapper)
		if !ok {
			break
		}
		c = w.Unwrap()
	}
	var zero T
	return zero, false
}
