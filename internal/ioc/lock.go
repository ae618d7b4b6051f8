package ioc

import (
	"time"

	"gitee.com/flycash/subscription-notification/internal/service/scheduler"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/meoying/dlock-go"
	dlockRedis "github.com/meoying/dlock-go/redis"
)

type LockConfig struct {
	Enabled    bool          `yaml:"enabled"`
	Expiration time.Duration `yaml:"expiration"`
}

func InitLockConfig() LockConfig {
	cfg := LockConfig{Expiration: time.Minute}
	if err := econf.UnmarshalKey("lock", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

// InitDistributedLock 没有启用锁的时候不连接 redis
func InitDistributedLock(cfg LockConfig) dlock.Client {
	if !cfg.Enabled {
		return nil
	}
	return dlockRedis.NewClient(InitRedisClient())
}

// InitPairLocker 返回 nil 表示不加锁
func InitPairLocker(cfg LockConfig, client dlock.Client) scheduler.PairLocker {
	if client == nil {
		elog.DefaultLogger.Warn("未启用分布式锁，手动触发和定时检查同时运行时可能重复发送")
		return nil
	}
	return scheduler.NewDLocker(client, cfg.Expiration)
}
