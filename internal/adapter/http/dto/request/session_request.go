package request

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidUsageQuantity = errors.New("invalid usage quantity")

type StartSessionRequest struct {
	UserID     string `json:"user_id" binding:"required"`
	ServiceID  string `json:"service_id" binding:"required"`
	ClientInfo string `json:"client_info"`
}

// SessionActionRequest identifies the requesting principal for
// pause/resume. Ownership is enforced in the use case.
type SessionActionRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type RecordMetricsRequest struct {
	UserID      string     `json:"user_id" binding:"required"`
	Timestamp   *time.Time `json:"timestamp"`
	BitrateKbps int64      `json:"bitrate_kbps"`
	LatencyMs   int64      `json:"latency_ms"`
	FrameDrops  int64      `json:"frame_drops"`
}

// StopSessionRequest triggers settlement. UsageQuantity is a decimal
// string and only meaningful for per_gb services; it defaults to zero
// when absent.
type StopSessionRequest struct {
	UserID        string `json:"user_id" binding:"required"`
	UsageQuantity string `json:"usage_quantity"`
}

func (r StopSessionRequest) ResolveUsageQuantity() (decimal.Decimal, error) {
	raw := strings.TrimSpace(r.UsageQuantity)
	if raw == "" {
		return decimal.Zero, nil
	}
	q, err := decimal.NewFromString(raw)
	if err != nil || q.IsNegative() {
		return decimal.Zero, ErrInvalidUsageQuantity
	}
	return q, nil
}
