//go:build unit

package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gitee.com/flycash/subscription-notification/internal/domain"
	repomocks "gitee.com/flycash/subscription-notification/internal/repository/mocks"
	notificationmocks "gitee.com/flycash/subscription-notification/internal/service/notification/mocks"
	selectormocks "gitee.com/flycash/subscription-notification/internal/service/selector/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeLocker 记录加锁和解锁的 key，busy 里的 key 拿不到锁
type fakeLocker struct {
	mu       sync.Mutex
	busy     map[string]bool
	locked   []string
	unlocked []string
}

func (l *fakeLocker) Lock(_ context.Context, key string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.busy[key] {
		return nil, errors.New("lock held")
	}
	l.locked = append(l.locked, key)
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.unlocked = append(l.unlocked, key)
	}, nil
}

func dueOf(id int64, typ domain.NotificationType) domain.DueNotification {
	return domain.DueNotification{
		Subscription: domain.Subscription{ID: id, Name: "Netflix", Status: domain.SubscriptionStatusActive},
		Type:         typ,
	}
}

func TestChecker_Check(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	settings := repomocks.NewMockSchedulerSettingsRepository(ctrl)
	sel := selectormocks.NewMockSelector(ctrl)
	orchestrator := notificationmocks.NewMockService(ctrl)

	settings.EXPECT().Get(gomock.Any()).Return(domain.SchedulerSettings{
		CheckTime: "09:00", Timezone: "UTC", Enabled: true,
	}, nil)

	fixed := time.Date(2024, 6, 10, 9, 0, 0, 0, time.FixedZone("CST", 8*3600))
	renewal := dueOf(1, domain.NotificationTypeRenewalReminder)
	expired := dueOf(2, domain.NotificationTypeExpirationWarning)
	disabled := dueOf(3, domain.NotificationTypeRenewalReminder)

	sel.EXPECT().SelectDue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, now time.Time) []domain.DueNotification {
			// 按调度器时区计算
			assert.Equal(t, time.UTC, now.Location())
			assert.True(t, now.Equal(fixed))
			return []domain.DueNotification{renewal, expired, disabled}
		})
	orchestrator.EXPECT().Process(gomock.Any(), renewal).Return(domain.SendReport{
		SubscriptionID: 1,
		Success:        true,
		Results: []domain.ChannelResult{
			{Channel: domain.ChannelTelegram, Success: true, HistoryID: 10},
			{Channel: domain.ChannelEmail, Skipped: true, Error: "渠道未配置"},
		},
	})
	orchestrator.EXPECT().Process(gomock.Any(), expired).Return(domain.SendReport{
		SubscriptionID: 2,
		Success:        true,
		Results: []domain.ChannelResult{
			{Channel: domain.ChannelTelegram, Error: "timeout", HistoryID: 11},
		},
	})
	orchestrator.EXPECT().Process(gomock.Any(), disabled).Return(domain.SendReport{
		SubscriptionID: 3,
		Message:        "通知类型未启用",
		Results:        []domain.ChannelResult{},
	})

	c := NewChecker(settings, sel, orchestrator, nil).(*checker)
	c.now = func() time.Time { return fixed }

	summary := c.Check(context.Background())
	assert.Equal(t, CheckSummary{Due: 3, Sent: 1, Failed: 1, Skipped: 2}, summary)
}

func TestChecker_SettingsUnavailableUsesDefaultTimezone(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	settings := repomocks.NewMockSchedulerSettingsRepository(ctrl)
	sel := selectormocks.NewMockSelector(ctrl)
	orchestrator := notificationmocks.NewMockService(ctrl)

	settings.EXPECT().Get(gomock.Any()).Return(domain.SchedulerSettings{}, errors.New("db down"))
	sel.EXPECT().SelectDue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, now time.Time) []domain.DueNotification {
			assert.Equal(t, domain.DefaultTimezone, now.Location().String())
			return nil
		})

	summary := NewChecker(settings, sel, orchestrator, nil).Check(context.Background())
	assert.Equal(t, CheckSummary{}, summary)
}

func TestChecker_Locking(t *testing.T) {
	t.Parallel()

	first := dueOf(1, domain.NotificationTypeRenewalReminder)
	second := dueOf(2, domain.NotificationTypeExpirationWarning)
	sentReport := domain.SendReport{
		Success: true,
		Results: []domain.ChannelResult{{Channel: domain.ChannelTelegram, Success: true}},
	}

	testCases := []struct {
		name         string
		busy         map[string]bool
		mock         func(sel *selectormocks.MockSelector, orchestrator *notificationmocks.MockService)
		wantSummary  CheckSummary
		wantLocked   []string
		wantUnlocked []string
	}{
		{
			name: "拿到锁并复查通过",
			mock: func(sel *selectormocks.MockSelector, orchestrator *notificationmocks.MockService) {
				sel.EXPECT().StillDue(gomock.Any(), gomock.Any(), first).Return(true, nil)
				sel.EXPECT().StillDue(gomock.Any(), gomock.Any(), second).Return(true, nil)
				orchestrator.EXPECT().Process(gomock.Any(), first).Return(sentReport)
				orchestrator.EXPECT().Process(gomock.Any(), second).Return(sentReport)
			},
			wantSummary:  CheckSummary{Due: 2, Sent: 2},
			wantLocked:   []string{"notification:1:renewal_reminder", "notification:2:expiration_warning"},
			wantUnlocked: []string{"notification:1:renewal_reminder", "notification:2:expiration_warning"},
		},
		{
			name: "锁被占用跳过",
			busy: map[string]bool{"notification:1:renewal_reminder": true},
			mock: func(sel *selectormocks.MockSelector, orchestrator *notificationmocks.MockService) {
				sel.EXPECT().StillDue(gomock.Any(), gomock.Any(), second).Return(true, nil)
				orchestrator.EXPECT().Process(gomock.Any(), second).Return(sentReport)
			},
			wantSummary:  CheckSummary{Due: 2, Sent: 1, Skipped: 1},
			wantLocked:   []string{"notification:2:expiration_warning"},
			wantUnlocked: []string{"notification:2:expiration_warning"},
		},
		{
			name: "复查发现已经发过",
			mock: func(sel *selectormocks.MockSelector, orchestrator *notificationmocks.MockService) {
				sel.EXPECT().StillDue(gomock.Any(), gomock.Any(), first).Return(false, nil)
				sel.EXPECT().StillDue(gomock.Any(), gomock.Any(), second).Return(false, errors.New("db down"))
			},
			wantSummary:  CheckSummary{Due: 2, Skipped: 2},
			wantLocked:   []string{"notification:1:renewal_reminder", "notification:2:expiration_warning"},
			wantUnlocked: []string{"notification:1:renewal_reminder", "notification:2:expiration_warning"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			settings := repomocks.NewMockSchedulerSettingsRepository(ctrl)
			sel := selectormocks.NewMockSelector(ctrl)
			orchestrator := notificationmocks.NewMockService(ctrl)

			settings.EXPECT().Get(gomock.Any()).Return(domain.DefaultSchedulerSettings(), nil)
			sel.EXPECT().SelectDue(gomock.Any(), gomock.Any()).Return([]domain.DueNotification{first, second})
			tc.mock(sel, orchestrator)

			locker := &fakeLocker{busy: tc.busy}
			summary := NewChecker(settings, sel, orchestrator, locker).Check(context.Background())
			require.Equal(t, tc.wantSummary, summary)
			assert.Equal(t, tc.wantLocked, locker.locked)
			assert.Equal(t, tc.wantUnlocked, locker.unlocked)
		})
	}
}
