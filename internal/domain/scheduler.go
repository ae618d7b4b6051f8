package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultCheckTime = "09:00"
	DefaultTimezone  = "Asia/Shanghai"
)

// SupportedTimezones 调度器允许配置的时区
var SupportedTimezones = []string{
	"Asia/Shanghai",
	"Asia/Tokyo",
	"Asia/Seoul",
	"Asia/Hong_Kong",
	"America/New_York",
	"America/Los_Angeles",
	"Europe/London",
	"Europe/Paris",
	"UTC",
}

// SchedulerSettings 调度器设置，全局只有一条
type SchedulerSettings struct {
	CheckTime string `json:"check_time" validate:"required,checktime"`
	Timezone  string `json:"timezone" validate:"required,timezone_supported"`
	Enabled   bool   `json:"enabled"`
}

func DefaultSchedulerSettings() SchedulerSettings {
	return SchedulerSettings{
		CheckTime: DefaultCheckTime,
		Timezone:  DefaultTimezone,
		Enabled:   true,
	}
}

// HourMinute 解析 HH:MM，调用前应该已经校验过
func (s SchedulerSettings) HourMinute() (int, int, error) {
	parts := strings.Split(s.CheckTime, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("检查时间格式错误 %q", s.CheckTime)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("检查时间小时错误 %q", s.CheckTime)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("检查时间分钟错误 %q", s.CheckTime)
	}
	return hour, minute, nil
}

// Location 加载时区
func (s SchedulerSettings) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

// Schedule 当前生效的调度
type Schedule struct {
	CheckTime string    `json:"checkTime"`
	Timezone  string    `json:"timezone"`
	CronSpec  string    `json:"cronSpec"`
	NextRun   time.Time `json:"nextRun"`
}

type SchedulerStatus struct {
	Running         bool      `json:"running"`
	CurrentSchedule *Schedule `json:"currentSchedule"`
}
