package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

const (
	ChannelTelegram = "telegram"
	ChannelEmail    = "email"
)

// SupportedChannels 目前支持的渠道
var SupportedChannels = []string{ChannelTelegram, ChannelEmail}

func IsSupportedChannel(channel string) bool {
	for _, c := range SupportedChannels {
		if c == channel {
			return true
		}
	}
	return false
}

// ChannelConfig 渠道配置，一个渠道一条
type ChannelConfig struct {
	ID          int64
	ChannelType string
	// Config 原始配置，一般是 JSON，例如 {"chat_id":"123"}
	Config     string
	IsActive   bool
	LastUsedAt int64
	Ctime      int64
	Utime      int64
}

// recipientKeys 不同渠道的接收者字段
var recipientKeys = map[string]string{
	ChannelTelegram: "chat_id",
	ChannelEmail:    "email",
}

// Recipient 从配置中解析接收者，老格式直接存的就是接收者
func (c ChannelConfig) Recipient() string {
	raw := strings.TrimSpace(c.Config)
	if raw == "" {
		return ""
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return raw
	}
	key, ok := recipientKeys[c.ChannelType]
	if !ok {
		return ""
	}
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		// chat_id 可能被存成数字
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// Usable 配置存在、启用并且有接收者
func (c ChannelConfig) Usable() bool {
	return c.IsActive && c.Recipient() != ""
}

// Message 渲染之后的消息
type Message struct {
	Subject string
	Content string
	// Language 实际使用的模板语言
	Language string
}

// SendResult 渠道发送结果，错误作为数据返回
type SendResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func SendSucceeded() SendResult {
	return SendResult{Success: true}
}

func SendFailed(err error) SendResult {
	return SendResult{Success: false, Error: err.Error()}
}
