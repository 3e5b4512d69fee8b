package interfaces

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"paygo_market/internal/domain/entities"
)

// SettlementOutcome is the finalization record written exactly once per
// session, conditioned on the session still being in the settling state.

type SettlementOutcome struct {
	Status          entities.SessionStatus
	SettlementState entities.SettlementState
	EndTime         time.Time
	UsageSeconds    int64
	TotalCost       decimal.Decimal
}

// ISessionRepository abstracts DynamoDB persistence for Session.
//
// The billing engine needs:
//   - conditional status updates for the pause/resume transitions
//   - an append-only quality-metrics list for non-terminal sessions
//   - a compare-and-set on settlement_state, which is what linearizes
//     settlement per session
//   - a finalization write guarded by settlement_state = settling

type ISessionRepository interface {
	Create(ctx context.Context, s entities.Session) (entities.Session, error)
	GetByID(ctx context.Context, id string) (entities.Session, error)

	// UpdateStatus transitions status only when the current status is one of
	// from. Returns a zero-value session when the condition did not hold.
	UpdateStatus(ctx context.Context, id string, from []entities.SessionStatus, to entities.SessionStatus) (entities.Session, error)

	// AppendMetrics appends one sample while the session is active or
	// paused. Returns a zero-value session when the condition did not hold.
	AppendMetrics(ctx context.Context, id string, m entities.QualityMetric) (entities.Session, error)

	// CompareAndSetSettlementState atomically moves settlement_state from
	// from to to. Returns false (no error) when another caller won the race.
	CompareAndSetSettlementState(ctx context.Context, id string, from, to entities.SettlementState) (bool, error)

	// FinalizeSettlement persists the outcome, conditioned on
	// settlement_state = settling. Returns a zero-value session when the
	// condition did not hold.
	FinalizeSettlement(ctx context.Context, id string, outcome SettlementOutcome) (entities.Session, error)
}
