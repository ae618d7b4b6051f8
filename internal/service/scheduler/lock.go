package scheduler

import (
	"context"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/meoying/dlock-go"
)

const defaultLockTimeout = time.Second * 3

type dLocker struct {
	client     dlock.Client
	expiration time.Duration
	logger     *elog.Component
}

// NewDLocker 基于 redis 分布式锁，expiration 要大于单个通知的处理时间
func NewDLocker(client dlock.Client, expiration time.Duration) PairLocker {
	return &dLocker{
		client:     client,
		expiration: expiration,
		logger:     elog.DefaultLogger,
	}
}

func (l *dLocker) Lock(ctx context.Context, key string) (func(), error) {
	lock, err := l.client.NewLock(ctx, key, l.expiration)
	if err != nil {
		return nil, err
	}
	lockCtx, cancel := context.WithTimeout(ctx, defaultLockTimeout)
	err = lock.Lock(lockCtx)
	cancel()
	if err != nil {
		return nil, err
	}
	return func() {
		// ctx 可能已经被取消了，仍然要释放锁
		unCtx, cancel := context.WithTimeout(context.Background(), defaultLockTimeout)
		defer cancel()
		//nolint:contextcheck // 释放锁不受调用方 ctx 控制
		if unErr := lock.Unlock(unCtx); unErr != nil {
			l.logger.Error("释放分布式锁失败",
				elog.String("key", key),
				elog.FieldErr(unErr))
		}
	}, nil
}
