package domain

// HistoryStatus 发送记录状态，写入时就是最终状态
type HistoryStatus string

const (
	HistoryStatusSent   HistoryStatus = "sent"
	HistoryStatusFailed HistoryStatus = "failed"
)

func (s HistoryStatus) String() string {
	return string(s)
}

func (s HistoryStatus) IsValid() bool {
	return s == HistoryStatusSent || s == HistoryStatusFailed
}

// 历史表里保留的重试字段默认值，目前没有任何逻辑使用
const (
	DefaultRetryCount = 0
	DefaultMaxRetry   = 3
)

// History 一次发送尝试
type History struct {
	ID               uint64
	SubscriptionID   int64
	SubscriptionName string // 仅查询时填充
	Type             NotificationType
	Channel          string
	Status           HistoryStatus
	Recipient        string
	Content          string
	ErrorMessage     string
	ScheduledAt      int64
	// SentAt 为 0 表示没有发送成功
	SentAt int64
	Ctime  int64
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// HistoryQuery 分页查询条件
type HistoryQuery struct {
	Page   int
	Limit  int
	Status HistoryStatus
	Type   NotificationType
}

// Normalize 修正分页参数
func (q HistoryQuery) Normalize() HistoryQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageSize
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
	return q
}

func (q HistoryQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

type HistoryPage struct {
	Data       []History
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

func NewHistoryPage(q HistoryQuery, data []History, total int64) HistoryPage {
	pages := 0
	if q.Limit > 0 {
		pages = int((total + int64(q.Limit) - 1) / int64(q.Limit))
	}
	return HistoryPage{
		Data:       data,
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: pages,
	}
}

// StatusCount 按状态统计
type StatusCount struct {
	Total  int64 `json:"total"`
	Sent   int64 `json:"sent"`
	Failed int64 `json:"failed"`
}

func (c *StatusCount) Add(status HistoryStatus, n int64) {
	c.Total += n
	switch status {
	case HistoryStatusSent:
		c.Sent += n
	case HistoryStatusFailed:
		c.Failed += n
	}
}

type Stats struct {
	StatusCount
	ByType    map[string]StatusCount
	ByChannel map[string]StatusCount
}
