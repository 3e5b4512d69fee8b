package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"paygo_market/internal/domain/entities"
	"paygo_market/internal/usecase/interfaces"
)

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionForbidden    = errors.New("session does not belong to requesting user")
	ErrServiceNotFound     = errors.New("service not found")
	ErrServiceInactive     = errors.New("service is not active")
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrInvalidServiceID    = errors.New("invalid service id")
	ErrInvalidSessionID    = errors.New("invalid session id")
	ErrInvalidSessionState = errors.New("invalid session state for this operation")
	ErrStartNotAllowed     = errors.New("user is not allowed to start sessions for this service")
)

// ISessionUseCase governs the metered session lifecycle up to (but not
// including) settlement. Terminal transitions belong to the settlement
// use case.

type ISessionUseCase interface {
	Start(ctx context.Context, userID, serviceID, clientInfo string) (entities.Session, error)
	GetByID(ctx context.Context, sessionID, userID string) (entities.Session, error)
	Pause(ctx context.Context, sessionID, userID string) (entities.Session, error)
	Resume(ctx context.Context, sessionID, userID string) (entities.Session, error)
	RecordMetrics(ctx context.Context, sessionID, userID string, m entities.QualityMetric) (entities.Session, error)
}

type SessionUseCase struct {
	sessions   interfaces.ISessionRepository
	services   interfaces.IServiceRepository
	ledger     interfaces.ILedgerStore
	authorizer interfaces.IAuthorizer
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(
	sessions interfaces.ISessionRepository,
	services interfaces.IServiceRepository,
	ledger interfaces.ILedgerStore,
	authorizer interfaces.IAuthorizer,
) *SessionUseCase {
	return &SessionUseCase{sessions: sessions, services: services, ledger: ledger, authorizer: authorizer}
}

// Start creates an active session with the service's billing terms
// captured onto it, and makes sure the user's wallet projection exists so
// settlement later has something to charge.
func (u *SessionUseCase) Start(ctx context.Context, userID, serviceID, clientInfo string) (entities.Session, error) {
	userID = strings.TrimSpace(userID)
	serviceID = strings.TrimSpace(serviceID)
	if userID == "" {
		return entities.Session{}, ErrInvalidUserID
	}
	if serviceID == "" {
		return entities.Session{}, ErrInvalidServiceID
	}

	svc, err := u.services.GetByID(ctx, serviceID)
	if err != nil {
		log.Printf("[session][usecase] failed loading service service_id=%s err=%v", serviceID, err)
		return entities.Session{}, err
	}
	if svc.ID == "" {
		return entities.Session{}, ErrServiceNotFound
	}
	if !svc.Active {
		return entities.Session{}, ErrServiceInactive
	}

	if u.authorizer != nil {
		if err := u.authorizer.CanStartSession(ctx, userID, svc.Category); err != nil {
			log.Printf("[session][usecase] start denied user_id=%s service_id=%s err=%v", userID, serviceID, err)
			if errors.Is(err, interfaces.ErrPolicyDenied) {
				return entities.Session{}, ErrStartNotAllowed
			}
			return entities.Session{}, err
		}
	}

	if _, err := u.ledger.EnsureWallet(ctx, userID); err != nil {
		log.Printf("[session][usecase] failed ensuring wallet user_id=%s err=%v", userID, err)
		return entities.Session{}, err
	}

	now := time.Now().UTC()
	s := entities.Session{
		ID:              uuid.NewString(),
		VendorID:        svc.VendorID,
		UserID:          userID,
		ServiceID:       svc.ID,
		Status:          entities.SessionStatusActive,
		SettlementState: entities.SettlementStateUnsettled,
		RateAtStart:     svc.Rate,
		UnitAtStart:     svc.Unit,
		Token:           svc.Token,
		ClientInfo:      strings.TrimSpace(clientInfo),
		StartTime:       now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.sessions.Create(ctx, s)
	if err != nil {
		log.Printf("[session][usecase] create failed user_id=%s service_id=%s err=%v", userID, serviceID, err)
		return entities.Session{}, err
	}
	log.Printf("[session][usecase] started session_id=%s user_id=%s service_id=%s rate=%s unit=%s", created.ID, userID, serviceID, created.RateAtStart, created.UnitAtStart)
	return created, nil
}

func (u *SessionUseCase) GetByID(ctx context.Context, sessionID, userID string) (entities.Session, error) {
	s, err := u.loadOwned(ctx, sessionID, userID)
	if err != nil {
		return entities.Session{}, err
	}
	return s, nil
}

func (u *SessionUseCase) Pause(ctx context.Context, sessionID, userID string) (entities.Session, error) {
	return u.transition(ctx, sessionID, userID, []entities.SessionStatus{entities.SessionStatusActive}, entities.SessionStatusPaused)
}

func (u *SessionUseCase) Resume(ctx context.Context, sessionID, userID string) (entities.Session, error) {
	return u.transition(ctx, sessionID, userID, []entities.SessionStatus{entities.SessionStatusPaused}, entities.SessionStatusActive)
}

func (u *SessionUseCase) transition(ctx context.Context, sessionID, userID string, from []entities.SessionStatus, to entities.SessionStatus) (entities.Session, error) {
	s, err := u.loadOwned(ctx, sessionID, userID)
	if err != nil {
		return entities.Session{}, err
	}

	updated, err := u.sessions.UpdateStatus(ctx, s.ID, from, to)
	if err != nil {
		return entities.Session{}, err
	}
	if updated.ID == "" {
		// Lost a race or the session is not in a compatible state.
		return entities.Session{}, ErrInvalidSessionState
	}
	log.Printf("[session][usecase] transition session_id=%s to=%s", updated.ID, to)
	return updated, nil
}

// RecordMetrics appends a quality sample. Metrics are informational and
// have no billing effect; terminal sessions no longer accept them.
func (u *SessionUseCase) RecordMetrics(ctx context.Context, sessionID, userID string, m entities.QualityMetric) (entities.Session, error) {
	s, err := u.loadOwned(ctx, sessionID, userID)
	if err != nil {
		return entities.Session{}, err
	}
	if s.Status.Terminal() {
		return entities.Session{}, ErrInvalidSessionState
	}

	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}

	updated, err := u.sessions.AppendMetrics(ctx, s.ID, m)
	if err != nil {
		return entities.Session{}, err
	}
	if updated.ID == "" {
		return entities.Session{}, ErrInvalidSessionState
	}
	return updated, nil
}

func (u *SessionUseCase) loadOwned(ctx context.Context, sessionID, userID string) (entities.Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	userID = strings.TrimSpace(userID)
	if sessionID == "" {
		return entities.Session{}, ErrInvalidSessionID
	}
	if userID == "" {
		return entities.Session{}, ErrInvalidUserID
	}

	s, err := u.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return entities.Session{}, err
	}
	if s.ID == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	if s.UserID != userID {
		return entities.Session{}, ErrSessionForbidden
	}
	return s, nil
}
