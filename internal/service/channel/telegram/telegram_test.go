//go:build unit

package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "123:abc"

func newTestServer(t *testing.T, handler func(method string, w http.ResponseWriter, r *http.Request)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		prefix := "/bot" + testToken + "/"
		if !strings.HasPrefix(r.URL.Path, prefix) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		handler(strings.TrimPrefix(r.URL.Path, prefix), w, r)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestChannel_Send(t *testing.T) {
	t.Parallel()

	var body map[string]any
	server := newTestServer(t, func(method string, w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sendMessage", method)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":42}}`))
	})
	ch := NewChannel(Config{BotToken: testToken, APIBaseURL: server.URL})

	err := ch.Send(context.Background(), "10086", domain.Message{Content: "<b>hi</b>"})
	require.NoError(t, err)
	assert.Equal(t, "10086", body["chat_id"])
	assert.Equal(t, "<b>hi</b>", body["text"])
	assert.Equal(t, "HTML", body["parse_mode"])
	assert.Equal(t, true, body["disable_web_page_preview"])
}

func TestChannel_SendRemoteError(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(_ string, w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	})
	ch := NewChannel(Config{BotToken: testToken, APIBaseURL: server.URL})

	err := ch.Send(context.Background(), "1", domain.Message{Content: "hi"})
	assert.ErrorIs(t, err, errs.ErrDispatchFailed)
	assert.Contains(t, err.Error(), "Bad Request: chat not found")
}

func TestChannel_SendRejected(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		token     string
		recipient string
		content   string
		wantErr   error
	}{
		{
			name:      "token 未配置",
			token:     "",
			recipient: "1",
			content:   "hi",
			wantErr:   errs.ErrChannelCredentialMissing,
		},
		{
			name:      "token 是占位值",
			token:     placeholderToken,
			recipient: "1",
			content:   "hi",
			wantErr:   errs.ErrChannelCredentialMissing,
		},
		{
			name:      "chat_id 为空",
			token:     testToken,
			recipient: "",
			content:   "hi",
			wantErr:   errs.ErrInvalidParameter,
		},
		{
			name:      "消息过长",
			token:     testToken,
			recipient: "1",
			content:   strings.Repeat("订", MaxMessageLength+1),
			wantErr:   errs.ErrInvalidParameter,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			// 不会真的发出请求
			ch := NewChannel(Config{BotToken: tc.token, APIBaseURL: "http://127.0.0.1:1"})
			err := ch.Send(context.Background(), tc.recipient, domain.Message{Content: tc.content})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestChannel_ValidateRecipientAndBotInfo(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(method string, w http.ResponseWriter, r *http.Request) {
		switch method {
		case "getChat":
			if r.URL.Query().Get("chat_id") == "1" {
				_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"type":"private"}}`))
				return
			}
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
		case "getMe":
			_, _ = w.Write([]byte(`{"ok":true,"result":{"id":7,"is_bot":true,"first_name":"Sub","username":"sub_bot"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ch := NewChannel(Config{BotToken: testToken, APIBaseURL: server.URL})

	require.NoError(t, ch.ValidateRecipient(context.Background(), "1"))
	err := ch.ValidateRecipient(context.Background(), "2")
	assert.ErrorIs(t, err, errs.ErrDispatchFailed)

	info, err := ch.BotInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, BotInfo{ID: 7, IsBot: true, FirstName: "Sub", Username: "sub_bot"}, info)
}

func TestChannel_ConfigStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ConfigStatus{Configured: true, HasToken: true}, NewChannel(Config{BotToken: testToken}).ConfigStatus())
	assert.Equal(t, ConfigStatus{HasToken: true, IsPlaceholder: true}, NewChannel(Config{BotToken: placeholderToken}).ConfigStatus())
	assert.Equal(t, ConfigStatus{IsPlaceholder: true}, NewChannel(Config{}).ConfigStatus())

	msg := NewChannel(Config{}).TestMessage()
	assert.Contains(t, msg.Content, "订阅管理系统测试消息")
}
