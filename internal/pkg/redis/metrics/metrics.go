// Package metrics 统计 redis 命令，目前只有分布式锁会访问 redis
package metrics

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

var (
	registerOnce sync.Once

	commandCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redis_commands_total",
			Help: "redis 命令执行次数",
		},
		[]string{"command", "status"},
	)

	commandDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "redis_command_duration_seconds",
			Help:       "redis 命令执行耗时（秒）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"command"},
	)

	dialCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redis_dials_total",
			Help: "redis 建立连接次数",
		},
		[]string{"status"},
	)
)

// Hook 实现 redis.Hook
type Hook struct{}

func NewHook() *Hook {
	registerOnce.Do(func() {
		prometheus.MustRegister(commandCounter, commandDuration, dialCounter)
	})
	return &Hook{}
}

func (h *Hook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		commandDuration.WithLabelValues(cmd.Name()).Observe(time.Since(start).Seconds())
		// 锁被别人持有时脚本会返回 redis.Nil，不算失败
		commandCounter.WithLabelValues(cmd.Name(), status(err)).Inc()
		return err
	}
}

func (h *Hook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		for _, cmd := range cmds {
			commandCounter.WithLabelValues(cmd.Name(), status(cmd.Err())).Inc()
		}
		return err
	}
}

func (h *Hook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		dialCounter.WithLabelValues(status(err)).Inc()
		return conn, err
	}
}

func status(err error) string {
	if err != nil && !errors.Is(err, redis.Nil) {
		return statusError
	}
	return statusSuccess
}

// WithMetrics 给客户端加上指标统计
func WithMetrics(client *redis.Client) *redis.Client {
	client.AddHook(NewHook())
	return client
}
