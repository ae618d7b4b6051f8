//go:build unit

package notification

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/errs"
	repomocks "gitee.com/flycash/subscription-notification/internal/repository/mocks"
	channelmocks "gitee.com/flycash/subscription-notification/internal/service/channel/mocks"
	historymocks "gitee.com/flycash/subscription-notification/internal/service/history/mocks"
	templatemocks "gitee.com/flycash/subscription-notification/internal/service/template/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	settings    *repomocks.MockNotificationSettingRepository
	subs        *repomocks.MockSubscriptionRepository
	preferences *repomocks.MockPreferenceRepository
	channels    *repomocks.MockChannelConfigRepository
	dispatcher  *channelmocks.MockDispatcher
	resolver    *templatemocks.MockResolver
	history     *historymocks.MockService
	svc         *service

	now time.Time
	sub domain.Subscription
}

func TestOrchestratorTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.settings = repomocks.NewMockNotificationSettingRepository(s.ctrl)
	s.subs = repomocks.NewMockSubscriptionRepository(s.ctrl)
	s.preferences = repomocks.NewMockPreferenceRepository(s.ctrl)
	s.channels = repomocks.NewMockChannelConfigRepository(s.ctrl)
	s.dispatcher = channelmocks.NewMockDispatcher(s.ctrl)
	s.resolver = templatemocks.NewMockResolver(s.ctrl)
	s.history = historymocks.NewMockService(s.ctrl)

	s.svc = NewService(s.settings, s.subs, s.preferences, s.channels, s.dispatcher, s.resolver, s.history).(*service)
	s.now = time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	s.svc.now = func() time.Time { return s.now }
	s.sub = domain.Subscription{
		ID:              11,
		Name:            "Netflix",
		NextBillingDate: time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC),
		Amount:          15.99,
		Currency:        "USD",
		Status:          domain.SubscriptionStatusActive,
	}
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) enabledSetting(channels ...string) domain.NotificationSetting {
	return domain.NotificationSetting{
		Type:        domain.NotificationTypeRenewalReminder,
		Enabled:     true,
		AdvanceDays: 7,
		Channels:    channels,
	}
}

func (s *OrchestratorTestSuite) telegramConfig() domain.ChannelConfig {
	return domain.ChannelConfig{
		ChannelType: domain.ChannelTelegram,
		Config:      `{"chat_id":"10086"}`,
		IsActive:    true,
	}
}

func (s *OrchestratorTestSuite) due() domain.DueNotification {
	return domain.DueNotification{
		Subscription: s.sub,
		Type:         domain.NotificationTypeRenewalReminder,
		Channels:     []string{domain.ChannelTelegram},
	}
}

func (s *OrchestratorTestSuite) TestProcessSent() {
	msg := domain.Message{Content: "续订提醒 Netflix", Language: domain.LanguageEn}
	s.settings.EXPECT().GetByType(gomock.Any(), domain.NotificationTypeRenewalReminder).Return(s.enabledSetting(), nil)
	s.subs.EXPECT().GetByID(gomock.Any(), int64(11)).Return(s.sub, nil)
	s.dispatcher.EXPECT().Target(gomock.Any(), domain.ChannelTelegram).Return(s.telegramConfig(), nil)
	s.preferences.EXPECT().GetLanguage(gomock.Any()).Return(domain.LanguageEn, nil)
	s.resolver.EXPECT().Render(domain.NotificationTypeRenewalReminder, domain.LanguageEn, domain.ChannelTelegram, s.sub).Return(msg)
	s.dispatcher.EXPECT().Send(gomock.Any(), domain.ChannelTelegram, "10086", msg).Return(domain.SendSucceeded())
	s.history.EXPECT().Record(gomock.Any(), domain.History{
		SubscriptionID: 11,
		Type:           domain.NotificationTypeRenewalReminder,
		Channel:        domain.ChannelTelegram,
		Status:         domain.HistoryStatusSent,
		Recipient:      "10086",
		Content:        msg.Content,
		ScheduledAt:    s.now.UnixMilli(),
		SentAt:         s.now.UnixMilli(),
	}).DoAndReturn(func(_ context.Context, h domain.History) (domain.History, error) {
		h.ID = 99
		return h, nil
	})
	s.channels.EXPECT().TouchLastUsed(gomock.Any(), domain.ChannelTelegram, s.now.UnixMilli()).Return(nil)

	report := s.svc.Process(context.Background(), s.due())
	s.True(report.Success)
	s.Equal([]domain.ChannelResult{{Channel: domain.ChannelTelegram, Success: true, HistoryID: 99}}, report.Results)
	s.Empty(report.Failures())
}

// 发送超时，记录 failed，sent_at 为空
func (s *OrchestratorTestSuite) TestProcessDispatchTimeout() {
	msg := domain.Message{Content: "续订提醒 Netflix", Language: domain.LanguageZhCN}
	s.settings.EXPECT().GetByType(gomock.Any(), domain.NotificationTypeRenewalReminder).Return(s.enabledSetting(), nil)
	s.subs.EXPECT().GetByID(gomock.Any(), int64(11)).Return(s.sub, nil)
	s.dispatcher.EXPECT().Target(gomock.Any(), domain.ChannelTelegram).Return(s.telegramConfig(), nil)
	s.preferences.EXPECT().GetLanguage(gomock.Any()).Return(domain.LanguageZhCN, nil)
	s.resolver.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(msg)
	s.dispatcher.EXPECT().Send(gomock.Any(), domain.ChannelTelegram, "10086", msg).
		Return(domain.SendResult{Success: false, Error: "timeout"})
	s.history.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h domain.History) (domain.History, error) {
			s.Equal(domain.HistoryStatusFailed, h.Status)
			s.Equal("timeout", h.ErrorMessage)
			s.Zero(h.SentAt)
			s.Equal(s.now.UnixMilli(), h.ScheduledAt)
			h.ID = 100
			return h, nil
		})
	// 失败不更新最后使用时间

	report := s.svc.Process(context.Background(), s.due())
	s.True(report.Success)
	s.Require().Len(report.Failures(), 1)
	s.Equal("timeout", report.Failures()[0].Error)
	s.Equal(uint64(100), report.Failures()[0].HistoryID)
}

func (s *OrchestratorTestSuite) TestSkipWithoutHistory() {
	testCases := []struct {
		name    string
		before  func()
		wantMsg string
	}{
		{
			name: "通知类型未启用",
			before: func() {
				st := s.enabledSetting()
				st.Enabled = false
				s.settings.EXPECT().GetByType(gomock.Any(), domain.NotificationTypeRenewalReminder).Return(st, nil)
			},
			wantMsg: msgTypeDisabled,
		},
		{
			name: "通知设置不存在",
			before: func() {
				s.settings.EXPECT().GetByType(gomock.Any(), domain.NotificationTypeRenewalReminder).
					Return(domain.NotificationSetting{}, fmt.Errorf("%w: type=renewal_reminder", errs.ErrSettingNotFound))
			},
			wantMsg: msgTypeDisabled,
		},
		{
			name: "订阅已被删除",
			before: func() {
				s.settings.EXPECT().GetByType(gomock.Any(), domain.NotificationTypeRenewalReminder).Return(s.enabledSetting(), nil)
				s.subs.EXPECT().GetByID(gomock.Any(), int64(11)).
					Return(domain.Subscription{}, fmt.Errorf("%w: id=11", errs.ErrSubscriptionNotFound))
			},
			wantMsg: msgSubscriptionNotFound,
		},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.before()
			report := s.svc.Process(context.Background(), s.due())
			s.False(report.Success)
			s.Equal(tc.wantMsg, report.Message)
			s.Empty(report.Results)
		})
	}
}

func (s *OrchestratorTestSuite) TestChannelNotConfiguredIsSkipped() {
	msg := domain.Message{Content: "hi"}
	s.settings.EXPECT().GetByType(gomock.Any(), domain.NotificationTypeRenewalReminder).
		Return(s.enabledSetting(domain.ChannelEmail, domain.ChannelTelegram), nil)
	s.subs.EXPECT().GetByID(gomock.Any(), int64(11)).Return(s.sub, nil)
	s.dispatcher.EXPECT().Target(gomock.Any(), domain.ChannelEmail).
		Return(domain.ChannelConfig{}, fmt.Errorf("%w: email", errs.ErrChannelNotConfigured))
	s.dispatcher.EXPECT().Target(gomock.Any(), domain.ChannelTelegram).Return(s.telegramConfig(), nil)
	// 偏好读取失败使用默认语言
	s.preferences.EXPECT().GetLanguage(gomock.Any()).Return(domain.DefaultLanguage, errors.New("db down"))
	s.resolver.EXPECT().Render(domain.NotificationTypeRenewalReminder, domain.DefaultLanguage, domain.ChannelTelegram, s.sub).Return(msg)
	s.dispatcher.EXPECT().Send(gomock.Any(), domain.ChannelTelegram, "10086", msg).Return(domain.SendSucceeded())
	// 写记录失败不影响发送结果
	s.history.EXPECT().Record(gomock.Any(), gomock.Any()).Return(domain.History{}, errors.New("db down"))
	s.channels.EXPECT().TouchLastUsed(gomock.Any(), domain.ChannelTelegram, gomock.Any()).Return(errors.New("db down"))

	report := s.svc.Process(context.Background(), s.due())
	s.True(report.Success)
	s.Require().Len(report.Results, 2)
	s.True(report.Results[0].Skipped)
	s.False(report.Results[0].Success)
	s.True(report.Results[1].Success)
	// 跳过的渠道不算失败
	s.Empty(report.Failures())
}

func (s *OrchestratorTestSuite) TestSendNotificationOverrideChannels() {
	msg := domain.Message{Subject: "s", Content: "c"}
	emailCfg := domain.ChannelConfig{ChannelType: domain.ChannelEmail, Config: `{"email":"me@example.com"}`, IsActive: true}
	s.settings.EXPECT().GetByType(gomock.Any(), domain.NotificationTypeSubscriptionChange).
		Return(domain.NotificationSetting{Type: domain.NotificationTypeSubscriptionChange, Enabled: true}, nil)
	s.subs.EXPECT().GetByID(gomock.Any(), int64(11)).Return(s.sub, nil)
	s.dispatcher.EXPECT().Target(gomock.Any(), domain.ChannelEmail).Return(emailCfg, nil)
	s.preferences.EXPECT().GetLanguage(gomock.Any()).Return(domain.LanguageZhCN, nil)
	s.resolver.EXPECT().Render(domain.NotificationTypeSubscriptionChange, domain.LanguageZhCN, domain.ChannelEmail, s.sub).Return(msg)
	s.dispatcher.EXPECT().Send(gomock.Any(), domain.ChannelEmail, "me@example.com", msg).Return(domain.SendSucceeded())
	s.history.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h domain.History) (domain.History, error) {
			return h, nil
		})
	s.channels.EXPECT().TouchLastUsed(gomock.Any(), domain.ChannelEmail, gomock.Any()).Return(nil)

	report := s.svc.SendNotification(context.Background(), domain.SendRequest{
		SubscriptionID: 11,
		Type:           domain.NotificationTypeSubscriptionChange,
		Channels:       []string{domain.ChannelEmail},
	})
	s.True(report.Success)
	s.Require().Len(report.Results, 1)
	s.Equal(domain.ChannelEmail, report.Results[0].Channel)
}

func (s *OrchestratorTestSuite) TestSendNotificationInvalidRequest() {
	report := s.svc.SendNotification(context.Background(), domain.SendRequest{
		SubscriptionID: 0,
		Type:           domain.NotificationTypeRenewalReminder,
	})
	s.False(report.Success)
	s.Contains(report.Message, errs.ErrInvalidParameter.Error())
}
