package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionStatus is the user-visible session lifecycle.
//
//	(none) --create--> active
//	active --pause--> paused
//	paused --resume--> active
//	active/paused --stop, settlement ok--> completed
//	active/paused --stop, billing failed permanently--> stopped

type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusPaused    SessionStatus = "paused"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusStopped   SessionStatus = "stopped"
)

func (s SessionStatus) Terminal() bool {
	return s == SessionStatusCompleted || s == SessionStatusStopped
}

// SettlementState is the internal billing lifecycle, distinct from
// SessionStatus. At most one settlement proceeds per session: the
// unsettled -> settling transition is a compare-and-set and settled/failed
// are terminal.

type SettlementState string

const (
	SettlementStateUnsettled SettlementState = "unsettled"
	SettlementStateSettling  SettlementState = "settling"
	SettlementStateSettled   SettlementState = "settled"
	SettlementStateFailed    SettlementState = "failed"
)

func (s SettlementState) Terminal() bool {
	return s == SettlementStateSettled || s == SettlementStateFailed
}

// QualityMetric is an informational stream-quality sample. Metrics never
// affect billing.

type QualityMetric struct {
	Timestamp   time.Time `json:"timestamp"`
	BitrateKbps int64     `json:"bitrate_kbps"`
	LatencyMs   int64     `json:"latency_ms"`
	FrameDrops  int64     `json:"frame_drops"`
}

// Session is a metered usage session.
//
// Storage model (DynamoDB):
//   - PK: id
//
// RateAtStart/UnitAtStart/Token are copied from the service when the
// session is created; settlement never re-reads the service, so rate
// changes cannot retroactively reprice a running session. TotalCost and
// EndTime are written exactly once, by settlement finalization.

type Session struct {
	ID              string          `json:"id"`
	VendorID        string          `json:"vendor_id"`
	UserID          string          `json:"user_id"`
	ServiceID       string          `json:"service_id"`
	Status          SessionStatus   `json:"status"`
	SettlementState SettlementState `json:"settlement_state"`
	RateAtStart     decimal.Decimal `json:"rate_at_start"`
	UnitAtStart     BillingUnit     `json:"unit_at_start"`
	Token           string          `json:"token"`
	ClientInfo      string          `json:"client_info,omitempty"`
	StartTime       time.Time       `json:"start_time"`
	EndTime         *time.Time      `json:"end_time,omitempty"`
	UsageSeconds    int64           `json:"usage_seconds"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	QualityMetrics  []QualityMetric `json:"quality_metrics,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
