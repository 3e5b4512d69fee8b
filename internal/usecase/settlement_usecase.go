package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"paygo_market/internal/domain/entities"
	"paygo_market/internal/domain/pricing"
	"paygo_market/internal/usecase/interfaces"
)

var (
	// ErrSettlementInProgress means another settlement holds the settling
	// state. Callers should retry after a delay, never proceed in parallel.
	ErrSettlementInProgress = errors.New("settlement already in progress")
)

// SettlementResult is what a stop request gets back. Charged is false when
// the session was finalized without collecting (insufficient balance or a
// zero-cost settlement); TotalCost still reports the computed cost
// truthfully in that case.

type SettlementResult struct {
	Session      entities.Session
	UsageSeconds int64
	TotalCost    decimal.Decimal
	Charged      bool
	Transaction  *entities.Transaction
}

// ISettlementUseCase performs exactly-once billing on session stop.

type ISettlementUseCase interface {
	Settle(ctx context.Context, sessionID, userID string, usageQuantity decimal.Decimal) (SettlementResult, error)
}

// SettlementUseCase linearizes settlement per session through the
// settlement_state compare-and-set, and relies on the ledger's atomic
// append for exactly-once charging. Once a call holds the settling state
// it runs to completion (success or rollback); it is not cancellable
// mid-flight.

type SettlementUseCase struct {
	sessions            interfaces.ISessionRepository
	ledger              interfaces.ILedgerStore
	notifier            interfaces.INotifier
	lowBalanceThreshold decimal.Decimal
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(
	sessions interfaces.ISessionRepository,
	ledger interfaces.ILedgerStore,
	notifier interfaces.INotifier,
	lowBalanceThreshold decimal.Decimal,
) *SettlementUseCase {
	return &SettlementUseCase{
		sessions:            sessions,
		ledger:              ledger,
		notifier:            notifier,
		lowBalanceThreshold: lowBalanceThreshold,
	}
}

func (u *SettlementUseCase) Settle(ctx context.Context, sessionID, userID string, usageQuantity decimal.Decimal) (SettlementResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	userID = strings.TrimSpace(userID)
	if sessionID == "" {
		return SettlementResult{}, ErrInvalidSessionID
	}
	if userID == "" {
		return SettlementResult{}, ErrInvalidUserID
	}

	log.Printf("[settlement][usecase] settle start session_id=%s user_id=%s", sessionID, userID)

	s, err := u.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return SettlementResult{}, err
	}
	if s.ID == "" {
		return SettlementResult{}, ErrSessionNotFound
	}
	if s.UserID != userID {
		return SettlementResult{}, ErrSessionForbidden
	}

	if s.SettlementState.Terminal() {
		log.Printf("[settlement][usecase] idempotent replay session_id=%s state=%s", sessionID, s.SettlementState)
		return u.storedResult(ctx, s), nil
	}
	if s.SettlementState == entities.SettlementStateSettling {
		return SettlementResult{}, ErrSettlementInProgress
	}

	won, err := u.sessions.CompareAndSetSettlementState(ctx, sessionID, entities.SettlementStateUnsettled, entities.SettlementStateSettling)
	if err != nil {
		return SettlementResult{}, err
	}
	if !won {
		// Another caller moved the state first; re-read and follow it.
		current, err := u.sessions.GetByID(ctx, sessionID)
		if err != nil {
			return SettlementResult{}, err
		}
		if current.SettlementState.Terminal() {
			log.Printf("[settlement][usecase] idempotent replay after lost cas session_id=%s state=%s", sessionID, current.SettlementState)
			return u.storedResult(ctx, current), nil
		}
		return SettlementResult{}, ErrSettlementInProgress
	}

	return u.runSettlement(ctx, s, usageQuantity)
}

// runSettlement executes with the settling state held. Every exit path
// either finalizes the session or rolls the state back to unsettled.
func (u *SettlementUseCase) runSettlement(ctx context.Context, s entities.Session, usageQuantity decimal.Decimal) (SettlementResult, error) {
	endTime := time.Now().UTC()
	usageSeconds := int64(endTime.Sub(s.StartTime).Seconds())
	if usageSeconds < 0 {
		usageSeconds = 0
	}

	totalCost, err := pricing.Cost(s.RateAtStart, s.UnitAtStart, usageSeconds, usageQuantity)
	if err != nil {
		log.Printf("[settlement][usecase] cost computation failed session_id=%s err=%v", s.ID, err)
		u.rollback(ctx, s.ID)
		return SettlementResult{}, err
	}
	log.Printf("[settlement][usecase] computed session_id=%s usage_seconds=%d total_cost=%s", s.ID, usageSeconds, totalCost)

	outcome := interfaces.SettlementOutcome{
		Status:          entities.SessionStatusCompleted,
		SettlementState: entities.SettlementStateSettled,
		EndTime:         endTime,
		UsageSeconds:    usageSeconds,
		TotalCost:       totalCost,
	}

	if totalCost.IsZero() {
		// Nothing to collect; the ledger rejects non-positive amounts.
		final, err := u.finalize(ctx, s.ID, outcome)
		if err != nil {
			return SettlementResult{}, err
		}
		u.emitSettled(ctx, final)
		return SettlementResult{Session: final, UsageSeconds: usageSeconds, TotalCost: totalCost}, nil
	}

	walletID := entities.WalletIDFor(s.UserID)
	charge, err := u.ledger.AppendTransaction(ctx, entities.Transaction{
		WalletID:  walletID,
		Type:      entities.TransactionTypeCharge,
		Amount:    totalCost,
		Token:     s.Token,
		SessionID: s.ID,
	})
	switch {
	case err == nil:
		// recorded below

	case errors.Is(err, interfaces.ErrInsufficientBalance):
		// Billing failure must not strand the session: finalize as stopped
		// with the uncollected cost recorded on the session.
		log.Printf("[settlement][usecase] insufficient balance session_id=%s wallet_id=%s cost=%s", s.ID, walletID, totalCost)
		outcome.Status = entities.SessionStatusStopped
		outcome.SettlementState = entities.SettlementStateFailed
		final, ferr := u.finalize(ctx, s.ID, outcome)
		if ferr != nil {
			return SettlementResult{}, ferr
		}
		u.notifyLowBalance(ctx, s.UserID, walletID, s.Token)
		u.emitSettled(ctx, final)
		return SettlementResult{Session: final, UsageSeconds: usageSeconds, TotalCost: totalCost}, nil

	case errors.Is(err, interfaces.ErrDuplicateSettlement):
		// A prior attempt charged the wallet but crashed before finalizing.
		// Adopt its transaction instead of failing.
		log.Printf("[settlement][usecase] adopting existing charge session_id=%s", s.ID)
		existing, ferr := u.ledger.FindChargeBySession(ctx, s.ID)
		if ferr != nil || existing.ID == "" {
			log.Printf("[settlement][usecase] charge lookup failed session_id=%s err=%v", s.ID, ferr)
			u.rollback(ctx, s.ID)
			return SettlementResult{}, err
		}
		outcome.TotalCost = existing.Amount
		final, ferr := u.finalize(ctx, s.ID, outcome)
		if ferr != nil {
			return SettlementResult{}, ferr
		}
		u.notifyLowBalance(ctx, s.UserID, walletID, s.Token)
		u.emitSettled(ctx, final)
		return SettlementResult{Session: final, UsageSeconds: usageSeconds, TotalCost: existing.Amount, Charged: true, Transaction: &existing}, nil

	default:
		// Storage fault: revert to unsettled so a later retry can succeed.
		log.Printf("[settlement][usecase] ledger append failed session_id=%s err=%v", s.ID, err)
		u.rollback(ctx, s.ID)
		return SettlementResult{}, err
	}

	final, err := u.finalize(ctx, s.ID, outcome)
	if err != nil {
		return SettlementResult{}, err
	}
	log.Printf("[settlement][usecase] settled session_id=%s total_cost=%s transaction_id=%s", s.ID, totalCost, charge.ID)

	u.notifyLowBalance(ctx, s.UserID, walletID, s.Token)
	u.emitSettled(ctx, final)
	return SettlementResult{Session: final, UsageSeconds: usageSeconds, TotalCost: totalCost, Charged: true, Transaction: &charge}, nil
}

// finalize persists the outcome. On a persistence fault it rolls the
// settlement state back so the next retry re-runs; when a charge was
// already appended that retry recovers through the duplicate-charge path.
func (u *SettlementUseCase) finalize(ctx context.Context, sessionID string, outcome interfaces.SettlementOutcome) (entities.Session, error) {
	final, err := u.sessions.FinalizeSettlement(ctx, sessionID, outcome)
	if err != nil {
		log.Printf("[settlement][usecase] finalize failed session_id=%s err=%v", sessionID, err)
		u.rollback(ctx, sessionID)
		return entities.Session{}, err
	}
	if final.ID == "" {
		// Finalize is conditioned on settling; since this call holds that
		// state, an empty result means the record vanished underneath us.
		log.Printf("[settlement][usecase] finalize condition failed session_id=%s", sessionID)
		return entities.Session{}, ErrSettlementInProgress
	}
	return final, nil
}

func (u *SettlementUseCase) rollback(ctx context.Context, sessionID string) {
	ok, err := u.sessions.CompareAndSetSettlementState(ctx, sessionID, entities.SettlementStateSettling, entities.SettlementStateUnsettled)
	if err != nil || !ok {
		log.Printf("[settlement][usecase] rollback to unsettled failed session_id=%s ok=%t err=%v", sessionID, ok, err)
	}
}

// storedResult rebuilds the settlement result from the durably recorded
// outcome, for idempotent replay of stop requests on terminal sessions.
func (u *SettlementUseCase) storedResult(ctx context.Context, s entities.Session) SettlementResult {
	res := SettlementResult{
		Session:      s,
		UsageSeconds: s.UsageSeconds,
		TotalCost:    s.TotalCost,
	}
	if s.SettlementState == entities.SettlementStateSettled && s.TotalCost.IsPositive() {
		charge, err := u.ledger.FindChargeBySession(ctx, s.ID)
		if err != nil {
			log.Printf("[settlement][usecase] replay charge lookup failed session_id=%s err=%v", s.ID, err)
		} else if charge.ID != "" {
			res.Charged = true
			res.Transaction = &charge
		}
	}
	return res
}

// notifyLowBalance emits the low-balance signal when the wallet projection
// is at or below the configured threshold. Best effort only.
func (u *SettlementUseCase) notifyLowBalance(ctx context.Context, userID, walletID, token string) {
	if u.notifier == nil {
		return
	}
	balance, err := u.ledger.CurrentBalance(ctx, walletID)
	if err != nil {
		log.Printf("[settlement][usecase] balance check failed wallet_id=%s err=%v", walletID, err)
		return
	}
	if balance.GreaterThan(u.lowBalanceThreshold) {
		return
	}
	if err := u.notifier.LowBalance(ctx, userID, balance, token); err != nil {
		log.Printf("[settlement][usecase] low balance notification failed user_id=%s err=%v", userID, err)
	}
}

func (u *SettlementUseCase) emitSettled(ctx context.Context, s entities.Session) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.SessionSettled(ctx, s); err != nil {
		log.Printf("[settlement][usecase] session settled notification failed session_id=%s err=%v", s.ID, err)
	}
}
