package ioc

import (
	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/service/channel"
	"gitee.com/flycash/subscription-notification/internal/service/channel/email"
	"gitee.com/flycash/subscription-notification/internal/service/channel/metrics"
	"gitee.com/flycash/subscription-notification/internal/service/channel/telegram"
	"gitee.com/flycash/subscription-notification/internal/service/channel/tracing"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

func InitTelegram() *telegram.Channel {
	var cfg telegram.Config
	if err := econf.UnmarshalKey("channel.telegram", &cfg); err != nil {
		panic(err)
	}
	bot := telegram.NewChannel(cfg)
	if !bot.IsConfigured() {
		elog.DefaultLogger.Warn("Telegram Bot Token 未配置，Telegram 渠道发送都会失败")
	}
	return bot
}

func InitEmail() *email.Channel {
	var cfg email.Config
	if err := econf.UnmarshalKey("channel.email", &cfg); err != nil {
		panic(err)
	}
	return email.NewChannel(cfg)
}

// InitChannels 每个渠道外面先包指标再包链路追踪
func InitChannels(bot *telegram.Channel, mail *email.Channel) map[string]channel.Channel {
	raw := map[string]channel.Channel{
		domain.ChannelTelegram: bot,
		domain.ChannelEmail:    mail,
	}
	res := make(map[string]channel.Channel, len(raw))
	for name, c := range raw {
		res[name] = tracing.NewChannel(name, metrics.NewChannel(name, c))
	}
	return res
}
