package repository

import (
	"context"
	"database/sql"
	"time"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

//go:generate mockgen -source=./history.go -destination=./mocks/history.mock.go -package=repomocks HistoryRepository
type HistoryRepository interface {
	Create(ctx context.Context, history domain.History) (domain.History, error)
	// ExistsSent 订阅在 [start, end) 内是否已经成功发送过该类型的通知
	ExistsSent(ctx context.Context, subscriptionID int64, notificationType domain.NotificationType, start, end time.Time) (bool, error)
	Find(ctx context.Context, query domain.HistoryQuery) ([]domain.History, int64, error)
	Stats(ctx context.Context) (domain.Stats, error)
}

type historyRepository struct {
	dao dao.NotificationHistoryDAO
}

// NewHistoryRepository 创建发送记录仓库实例
func NewHistoryRepository(historyDAO dao.NotificationHistoryDAO) HistoryRepository {
	return &historyRepository{
		dao: historyDAO,
	}
}

func (r *historyRepository) Create(ctx context.Context, history domain.History) (domain.History, error) {
	entity, err := r.dao.Create(ctx, r.toEntity(history))
	if err != nil {
		return domain.History{}, err
	}
	return r.toDomain(entity), nil
}

func (r *historyRepository) ExistsSent(ctx context.Context, subscriptionID int64, notificationType domain.NotificationType, start, end time.Time) (bool, error) {
	return r.dao.ExistsSent(ctx, subscriptionID, notificationType.String(), start.UnixMilli(), end.UnixMilli())
}

func (r *historyRepository) Find(ctx context.Context, query domain.HistoryQuery) ([]domain.History, int64, error) {
	total, err := r.dao.Count(ctx, query.Status.String(), query.Type.String())
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.History{}, 0, nil
	}
	rows, err := r.dao.Find(ctx, query.Status.String(), query.Type.String(), query.Offset(), query.Limit)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(rows, func(_ int, src dao.HistoryWithSubscription) domain.History {
		h := r.toDomain(src.NotificationHistory)
		h.SubscriptionName = src.SubscriptionName.String
		return h
	}), total, nil
}

func (r *historyRepository) Stats(ctx context.Context) (domain.Stats, error) {
	stats := domain.Stats{
		ByType:    make(map[string]domain.StatusCount),
		ByChannel: make(map[string]domain.StatusCount),
	}
	overall, err := r.dao.CountByStatus(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	for _, row := range overall {
		stats.StatusCount.Add(domain.HistoryStatus(row.Status), row.Cnt)
	}

	byType, err := r.dao.CountByTypeAndStatus(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	merge(stats.ByType, byType)

	byChannel, err := r.dao.CountByChannelAndStatus(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	merge(stats.ByChannel, byChannel)
	return stats, nil
}

func merge(dst map[string]domain.StatusCount, rows []dao.GroupCount) {
	for _, row := range rows {
		c := dst[row.GroupKey]
		c.Add(domain.HistoryStatus(row.Status), row.Cnt)
		dst[row.GroupKey] = c
	}
}

func (r *historyRepository) toEntity(h domain.History) dao.NotificationHistory {
	return dao.NotificationHistory{
		ID:               h.ID,
		SubscriptionID:   h.SubscriptionID,
		NotificationType: h.Type.String(),
		ChannelType:      h.Channel,
		Status:           h.Status.String(),
		Recipient:        h.Recipient,
		MessageContent:   h.Content,
		ErrorMessage: sql.NullString{
			String: h.ErrorMessage,
			Valid:  h.ErrorMessage != "",
		},
		ScheduledAt: h.ScheduledAt,
		SentAt: sql.NullInt64{
			Int64: h.SentAt,
			Valid: h.SentAt > 0,
		},
		RetryCount: domain.DefaultRetryCount,
		MaxRetry:   domain.DefaultMaxRetry,
		Ctime:      h.Ctime,
	}
}

func (r *historyRepository) toDomain(e dao.NotificationHistory) domain.History {
	return domain.History{
		ID:             e.ID,
		SubscriptionID: e.SubscriptionID,
		Type:           domain.NotificationType(e.NotificationType),
		Channel:        e.ChannelType,
		Status:         domain.HistoryStatus(e.Status),
		Recipient:      e.Recipient,
		Content:        e.MessageContent,
		ErrorMessage:   e.ErrorMessage.String,
		ScheduledAt:    e.ScheduledAt,
		SentAt:         e.SentAt.Int64,
		Ctime:          e.Ctime,
	}
}
