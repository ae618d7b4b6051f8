// Package metrics 为渠道实现添加指标收集的装饰器
package metrics

import (
	"context"
	"sync"
	"time"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/service/channel"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	statusSucceeded = "succeeded"
	statusFailed    = "failed"
)

var (
	registerOnce sync.Once

	sendDurationSummary = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "channel_send_duration_seconds",
			Help:       "渠道发送通知耗时统计（秒）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
			MaxAge:     time.Minute * 5,
		},
		[]string{"channel", "status"},
	)
	sendStatusCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "channel_send_status_total",
			Help: "渠道发送通知状态统计",
		},
		[]string{"channel", "status"},
	)
)

// Channel 为渠道实现添加指标收集的装饰器
type Channel struct {
	channel channel.Channel
	name    string
}

// NewChannel 多个渠道共用一组指标，用 channel 标签区分
func NewChannel(name string, c channel.Channel) *Channel {
	registerOnce.Do(func() {
		prometheus.MustRegister(sendDurationSummary, sendStatusCounter)
	})
	return &Channel{
		channel: c,
		name:    name,
	}
}

func (c *Channel) Send(ctx context.Context, recipient string, msg domain.Message) error {
	startTime := time.Now()
	err := c.channel.Send(ctx, recipient, msg)
	status := statusSucceeded
	if err != nil {
		status = statusFailed
	}
	sendStatusCounter.WithLabelValues(c.name, status).Inc()
	sendDurationSummary.WithLabelValues(c.name, status).Observe(time.Since(startTime).Seconds())
	return err
}

func (c *Channel) Unwrap() channel.Channel {
	return c.channel
}
