package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/sony/sonyflake"
)

func InitIDGenerator() *sonyflake.Sonyflake {
	type Config struct {
		// MachineID 多实例部署时每个实例要配置不同的值
		MachineID uint16 `yaml:"machineID"`
		StartTime string `yaml:"startTime"`
	}
	cfg := Config{StartTime: "2024-01-01"}
	if err := econf.UnmarshalKey("id", &cfg); err != nil {
		panic(err)
	}
	startTime, err := time.Parse(time.DateOnly, cfg.StartTime)
	if err != nil {
		panic(err)
	}
	st := sonyflake.Settings{StartTime: startTime}
	if cfg.MachineID != 0 {
		st.MachineID = func() (uint16, error) {
			return cfg.MachineID, nil
		}
	}
	// 没有配置 MachineID 时 sonyflake 用私有 IP 的低 16 位
	generator, err := sonyflake.New(st)
	if err != nil {
		panic(err)
	}
	return generator
}
