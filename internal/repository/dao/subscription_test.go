//go:build e2e

package dao

import (
	"context"
	"testing"
	"time"

	"gitee.com/flycash/subscription-notification/internal/errs"
	testioc "gitee.com/flycash/subscription-notification/internal/test/ioc"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestSubscriptionDAOSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionDAOTestSuite))
}

type SubscriptionDAOTestSuite struct {
	suite.Suite
	db    *egorm.Component
	dao   SubscriptionDAO
	today time.Time
}

func (s *SubscriptionDAOTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.NoError(InitSubscriptionTables(s.db))
	s.NoError(InitTables(s.db))
	s.dao = NewSubscriptionDAO(s.db)
	s.today = time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
}

func (s *SubscriptionDAOTestSuite) SetupTest() {
	s.NoError(s.db.Create(&PaymentMethod{ID: 1, Label: "Credit Card"}).Error)
	subs := []Subscription{
		{ID: 1, Name: "Netflix", Plan: "Premium", Amount: 15.99, Currency: "USD", PaymentMethodID: 1, Status: "active", NextBillingDate: s.today.AddDate(0, 0, 1)},
		{ID: 2, Name: "Spotify", Status: "active", NextBillingDate: s.today.AddDate(0, 0, 7)},
		{ID: 3, Name: "iCloud", Status: "active", NextBillingDate: s.today.AddDate(0, 0, 8)},
		{ID: 4, Name: "Disney+", Status: "cancelled", NextBillingDate: s.today.AddDate(0, 0, 3)},
		{ID: 5, Name: "YouTube", Status: "active", NextBillingDate: s.today.AddDate(0, 0, -1), PaymentMethodID: 9},
		{ID: 6, Name: "HBO", Status: "inactive", NextBillingDate: s.today.AddDate(0, 0, -1)},
	}
	for i := range subs {
		s.NoError(s.db.Create(&subs[i]).Error)
	}
}

func (s *SubscriptionDAOTestSuite) TearDownTest() {
	s.db.Exec("DELETE FROM `notification_history`")
	s.db.Exec("DELETE FROM `subscriptions`")
	s.db.Exec("TRUNCATE TABLE `payment_methods`")
	s.db.Exec("TRUNCATE TABLE `settings`")
}

func ids(subs []SubscriptionWithLabel) []int64 {
	return slice.Map(subs, func(_ int, src SubscriptionWithLabel) int64 {
		return src.ID
	})
}

func (s *SubscriptionDAOTestSuite) TestFindActiveByBillingDateRange() {
	t := s.T()
	// 两端都包含，非活跃的不要
	res, err := s.dao.FindActiveByBillingDateRange(context.Background(), s.today.AddDate(0, 0, 1), s.today.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids(res))
	assert.Equal(t, "Credit Card", res[0].PaymentMethodLabel)
	assert.Equal(t, "", res[1].PaymentMethodLabel)
}

func (s *SubscriptionDAOTestSuite) TestFindActiveByBillingDate() {
	t := s.T()
	res, err := s.dao.FindActiveByBillingDate(context.Background(), s.today.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, ids(res))

	res, err = s.dao.FindActiveByBillingDate(context.Background(), s.today)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func (s *SubscriptionDAOTestSuite) TestGetByID() {
	t := s.T()
	ctx := context.Background()

	sub, err := s.dao.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Netflix", sub.Name)
	assert.Equal(t, "Premium", sub.Plan)
	assert.Equal(t, 15.99, sub.Amount)
	assert.Equal(t, "Credit Card", sub.PaymentMethodLabel)
	assert.Equal(t, s.today.AddDate(0, 0, 1).Format(dateLayout), sub.NextBillingDate.Format(dateLayout))

	// 非活跃的也能按ID查到
	sub, err = s.dao.GetByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", sub.Status)

	_, err = s.dao.GetByID(ctx, 404)
	assert.ErrorIs(t, err, errs.ErrSubscriptionNotFound)
}

func (s *SubscriptionDAOTestSuite) TestGetLanguage() {
	t := s.T()
	ctx := context.Background()

	lang, err := s.dao.GetLanguage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", lang)

	require.NoError(t, s.db.Create(&UserSettings{ID: 1, Language: "en"}).Error)
	lang, err = s.dao.GetLanguage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "en", lang)
}
