//go:build e2e

package dao

import (
	"context"
	"database/sql"
	"testing"
	"time"

	testioc "gitee.com/flycash/subscription-notification/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestNotificationHistoryDAOSuite(t *testing.T) {
	suite.Run(t, new(NotificationHistoryDAOTestSuite))
}

type NotificationHistoryDAOTestSuite struct {
	suite.Suite
	db  *egorm.Component
	dao NotificationHistoryDAO
	// 以 2024-06-10 为"今天"
	today time.Time
}

func (s *NotificationHistoryDAOTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.NoError(InitSubscriptionTables(s.db))
	s.NoError(InitTables(s.db))
	s.dao = NewNotificationHistoryDAO(s.db)
	s.today = time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
}

func (s *NotificationHistoryDAOTestSuite) SetupTest() {
	s.NoError(s.db.Create(&Subscription{ID: 1, Name: "Netflix", Status: "active", NextBillingDate: s.today}).Error)
	s.NoError(s.db.Create(&Subscription{ID: 2, Name: "Spotify", Status: "active", NextBillingDate: s.today}).Error)
}

func (s *NotificationHistoryDAOTestSuite) TearDownTest() {
	s.db.Exec("DELETE FROM `notification_history`")
	s.db.Exec("DELETE FROM `subscriptions`")
}

func (s *NotificationHistoryDAOTestSuite) sent(id uint64, subscriptionID int64, typ string, sentAt time.Time) NotificationHistory {
	return NotificationHistory{
		ID:               id,
		SubscriptionID:   subscriptionID,
		NotificationType: typ,
		ChannelType:      "telegram",
		Status:           "sent",
		Recipient:        "123",
		MessageContent:   "content",
		ScheduledAt:      sentAt.UnixMilli(),
		SentAt:           sql.NullInt64{Int64: sentAt.UnixMilli(), Valid: true},
		MaxRetry:         3,
		Ctime:            sentAt.UnixMilli(),
	}
}

func (s *NotificationHistoryDAOTestSuite) TestCreate() {
	t := s.T()
	ctx := context.Background()

	created, err := s.dao.Create(ctx, NotificationHistory{
		ID:               100,
		SubscriptionID:   1,
		NotificationType: "renewal_reminder",
		ChannelType:      "telegram",
		Status:           "failed",
		Recipient:        "123",
		MessageContent:   "续订提醒",
		ErrorMessage:     sql.NullString{String: "timeout", Valid: true},
		ScheduledAt:      s.today.UnixMilli(),
		MaxRetry:         3,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.Ctime)

	var got NotificationHistory
	require.NoError(t, s.db.Where("id = ?", 100).First(&got).Error)
	assert.Equal(t, "failed", got.Status)
	assert.Equal(t, "timeout", got.ErrorMessage.String)
	assert.False(t, got.SentAt.Valid)
	assert.Equal(t, 0, got.RetryCount)
	assert.Equal(t, 3, got.MaxRetry)
}

// 昨天发过，不允许重复时窗口 [today-7, today+1) 能查到
func (s *NotificationHistoryDAOTestSuite) TestExistsSent_RenewalWindow() {
	t := s.T()
	ctx := context.Background()
	yesterday := s.today.AddDate(0, 0, -1).Add(9 * time.Hour)
	_, err := s.dao.Create(ctx, s.sent(1, 1, "renewal_reminder", yesterday))
	require.NoError(t, err)

	start := s.today.AddDate(0, 0, -7).UnixMilli()
	end := s.today.AddDate(0, 0, 1).UnixMilli()

	ok, err := s.dao.ExistsSent(ctx, 1, "renewal_reminder", start, end)
	require.NoError(t, err)
	assert.True(t, ok)

	// 其他订阅和其他类型不受影响
	ok, err = s.dao.ExistsSent(ctx, 2, "renewal_reminder", start, end)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = s.dao.ExistsSent(ctx, 1, "expiration_warning", start, end)
	require.NoError(t, err)
	assert.False(t, ok)

	// 窗口之外
	ok, err = s.dao.ExistsSent(ctx, 1, "renewal_reminder", s.today.UnixMilli(), end)
	require.NoError(t, err)
	assert.False(t, ok)
}

// 过期警告按自然日去重，失败的记录不算
func (s *NotificationHistoryDAOTestSuite) TestExistsSent_ExpirationDay() {
	t := s.T()
	ctx := context.Background()
	start := s.today.UnixMilli()
	end := s.today.AddDate(0, 0, 1).UnixMilli()

	failed := s.sent(1, 1, "expiration_warning", s.today.Add(9*time.Hour))
	failed.Status = "failed"
	failed.SentAt = sql.NullInt64{}
	_, err := s.dao.Create(ctx, failed)
	require.NoError(t, err)

	ok, err := s.dao.ExistsSent(ctx, 1, "expiration_warning", start, end)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.dao.Create(ctx, s.sent(2, 1, "expiration_warning", s.today.Add(9*time.Hour)))
	require.NoError(t, err)
	ok, err = s.dao.ExistsSent(ctx, 1, "expiration_warning", start, end)
	require.NoError(t, err)
	assert.True(t, ok)

	// 右边界不包含
	_, err = s.dao.Create(ctx, s.sent(3, 2, "expiration_warning", s.today.AddDate(0, 0, 1)))
	require.NoError(t, err)
	ok, err = s.dao.ExistsSent(ctx, 2, "expiration_warning", start, end)
	require.NoError(t, err)
	assert.False(t, ok)
}

func (s *NotificationHistoryDAOTestSuite) TestFindAndCount() {
	t := s.T()
	ctx := context.Background()

	base := s.today.Add(9 * time.Hour)
	for i := 0; i < 5; i++ {
		h := s.sent(uint64(i+1), 1, "renewal_reminder", base.Add(time.Duration(i)*time.Minute))
		if i%2 == 1 {
			h.Status = "failed"
			h.SentAt = sql.NullInt64{}
		}
		_, err := s.dao.Create(ctx, h)
		require.NoError(t, err)
	}
	orphan := s.sent(6, 2, "expiration_warning", base.Add(time.Hour))
	_, err := s.dao.Create(ctx, orphan)
	require.NoError(t, err)

	total, err := s.dao.Count(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)

	total, err = s.dao.Count(ctx, "failed", "renewal_reminder")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	rows, err := s.dao.Find(ctx, "", "", 0, 3)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	// 按创建时间倒序
	assert.Equal(t, uint64(6), rows[0].ID)
	assert.Equal(t, "Spotify", rows[0].SubscriptionName.String)
	assert.Equal(t, uint64(5), rows[1].ID)
	assert.Equal(t, "Netflix", rows[1].SubscriptionName.String)

	rows, err = s.dao.Find(ctx, "sent", "renewal_reminder", 1, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, uint64(3), rows[0].ID)
	assert.Equal(t, uint64(1), rows[1].ID)
}

func (s *NotificationHistoryDAOTestSuite) TestCountBy() {
	t := s.T()
	ctx := context.Background()
	base := s.today.Add(9 * time.Hour)

	records := []NotificationHistory{
		s.sent(1, 1, "renewal_reminder", base),
		s.sent(2, 1, "expiration_warning", base),
	}
	failed := s.sent(3, 2, "renewal_reminder", base)
	failed.Status = "failed"
	failed.ChannelType = "email"
	failed.SentAt = sql.NullInt64{}
	records = append(records, failed)
	for _, r := range records {
		_, err := s.dao.Create(ctx, r)
		require.NoError(t, err)
	}

	overall, err := s.dao.CountByStatus(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []GroupCount{
		{Status: "sent", Cnt: 2},
		{Status: "failed", Cnt: 1},
	}, overall)

	byType, err := s.dao.CountByTypeAndStatus(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []GroupCount{
		{GroupKey: "renewal_reminder", Status: "sent", Cnt: 1},
		{GroupKey: "renewal_reminder", Status: "failed", Cnt: 1},
		{GroupKey: "expiration_warning", Status: "sent", Cnt: 1},
	}, byType)

	byChannel, err := s.dao.CountByChannelAndStatus(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []GroupCount{
		{GroupKey: "telegram", Status: "sent", Cnt: 2},
		{GroupKey: "email", Status: "failed", Cnt: 1},
	}, byChannel)
}

// 删除订阅时记录一起删除
func (s *NotificationHistoryDAOTestSuite) TestCascadeDelete() {
	t := s.T()
	ctx := context.Background()
	_, err := s.dao.Create(ctx, s.sent(1, 1, "renewal_reminder", s.today))
	require.NoError(t, err)

	require.NoError(t, s.db.Exec("DELETE FROM `subscriptions` WHERE id = ?", 1).Error)
	total, err := s.dao.Count(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}
