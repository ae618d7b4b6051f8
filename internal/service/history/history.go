package history

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/subscription-notification/internal/domain"
	"gitee.com/flycash/subscription-notification/internal/errs"
	"gitee.com/flycash/subscription-notification/internal/repository"
	"github.com/sony/sonyflake"
)

// Service 发送记录，只追加不修改
//
//go:generate mockgen -source=./history.go -destination=./mocks/history.mock.go -package=historymocks Service
type Service interface {
	// Record 写入一条带最终状态的发送记录
	Record(ctx context.Context, history domain.History) (domain.History, error)
	GetHistory(ctx context.Context, query domain.HistoryQuery) (domain.HistoryPage, error)
	GetStats(ctx context.Context) (domain.Stats, error)
}

type service struct {
	repo        repository.HistoryRepository
	idGenerator *sonyflake.Sonyflake
}

// NewService 创建发送记录服务
func NewService(repo repository.HistoryRepository, idGenerator *sonyflake.Sonyflake) Service {
	return &service{
		repo:        repo,
		idGenerator: idGenerator,
	}
}

func (s *service) Record(ctx context.Context, history domain.History) (domain.History, error) {
	if !history.Status.IsValid() {
		return domain.History{}, fmt.Errorf("%w: Status = %q", errs.ErrInvalidParameter, history.Status)
	}
	id, err := s.idGenerator.NextID()
	if err != nil {
		return domain.History{}, fmt.Errorf("生成发送记录 ID 失败: %w", err)
	}
	history.ID = id
	if history.Ctime == 0 {
		history.Ctime = time.Now().UnixMilli()
	}
	return s.repo.Create(ctx, history)
}

func (s *service) GetHistory(ctx context.Context, query domain.HistoryQuery) (domain.HistoryPage, error) {
	query = query.Normalize()
	data, total, err := s.repo.Find(ctx, query)
	if err != nil {
		return domain.HistoryPage{}, err
	}
	return domain.NewHistoryPage(query, data, total), nil
}

func (s *service) GetStats(ctx context.Context) (domain.Stats, error) {
	return s.repo.Stats(ctx)
}
