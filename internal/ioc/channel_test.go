//go:build unit

package ioc

import (
	"testing"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/service/channel"
	"gitee.com/flycash/subscription-notification/internal/service/channel/email"
	"gitee.com/flycash/subscription-notification/internal/service/channel/telegram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 装饰之后可选能力仍然能找到
func TestInitChannels(t *testing.T) {
	bot := telegram.NewChannel(telegram.Config{BotToken: "123:abc"})
	mail := email.NewChannel(email.Config{ServerToken: "token", From: "noreply@example.com"})

	channels := InitChannels(bot, mail)
	require.Len(t, channels, 2)

	for _, name := range []string{domain.ChannelTelegram, domain.ChannelEmail} {
		c, ok := channels[name]
		require.True(t, ok, name)
		_, ok = channel.As[channel.RecipientValidator](c)
		assert.True(t, ok, name)
		_, ok = channel.As[channel.Tester](c)
		assert.True(t, ok, name)
	}

	got, ok := channel.As[*telegram.Channel](channels[domain.ChannelTelegram])
	require.True(t, ok)
	assert.Same(t, bot, got)
}
