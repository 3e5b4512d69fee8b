package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"paygo_market/internal/domain/entities"
	"paygo_market/internal/usecase/interfaces"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrInvalidMoveAmount = errors.New("amount must be positive")
	ErrEscrowNotWired    = errors.New("escrow client not configured")
)

// BalanceSource marks whether a balance response is authoritative
// (escrow) or the local projection used as fallback (local), so callers
// can display a staleness indicator.
const (
	BalanceSourceEscrow = "escrow"
	BalanceSourceLocal  = "local"
)

type BalanceView struct {
	UserID   string
	WalletID string
	Token    string
	Amount   decimal.Decimal
	Source   string
}

// IBalanceUseCase is the wallet read path plus deposits and withdrawals.

type IBalanceUseCase interface {
	BalanceFor(ctx context.Context, userID, token string) (BalanceView, error)
	Deposit(ctx context.Context, userID, token string, amount decimal.Decimal) (entities.Transaction, error)
	Withdraw(ctx context.Context, userID, token string, amount decimal.Decimal, destination string) (entities.Transaction, error)
	History(ctx context.Context, userID string) ([]entities.Transaction, error)
}

// BalanceUseCase keeps the local ledger and the escrow vault eventually
// consistent with a two-phase discipline: the vault moves first, and the
// local ledger records only confirmed vault actions. The local projection
// therefore never runs ahead of the chain.

type BalanceUseCase struct {
	ledger       interfaces.ILedgerStore
	escrow       interfaces.IEscrowClient
	defaultToken string
	queryTimeout time.Duration
}

var _ IBalanceUseCase = (*BalanceUseCase)(nil)

func NewBalanceUseCase(ledger interfaces.ILedgerStore, escrow interfaces.IEscrowClient, defaultToken string, queryTimeout time.Duration) *BalanceUseCase {
	if queryTimeout <= 0 {
		queryTimeout = 5 * time.Second
	}
	return &BalanceUseCase{ledger: ledger, escrow: escrow, defaultToken: defaultToken, queryTimeout: queryTimeout}
}

// BalanceFor prefers the authoritative escrow balance and falls back to
// the local projection on transient vault failure. A single bounded
// remote attempt; it never blocks indefinitely.
func (u *BalanceUseCase) BalanceFor(ctx context.Context, userID, token string) (BalanceView, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return BalanceView{}, ErrInvalidUserID
	}
	token = u.resolveToken(token)

	w, err := u.ledger.EnsureWallet(ctx, userID)
	if err != nil {
		return BalanceView{}, err
	}

	if u.escrow != nil {
		queryCtx, cancel := context.WithTimeout(ctx, u.queryTimeout)
		defer cancel()

		amount, err := u.escrow.GetBalance(queryCtx, w.EscrowAddress, token)
		if err == nil {
			return BalanceView{UserID: userID, WalletID: w.WalletID, Token: token, Amount: amount, Source: BalanceSourceEscrow}, nil
		}
		if !errors.Is(err, interfaces.ErrEscrowUnavailable) {
			return BalanceView{}, err
		}
		log.Printf("[balance][usecase] escrow unavailable, serving local projection user_id=%s err=%v", userID, err)
	}

	return BalanceView{UserID: userID, WalletID: w.WalletID, Token: token, Amount: w.Balance, Source: BalanceSourceLocal}, nil
}

func (u *BalanceUseCase) Deposit(ctx context.Context, userID, token string, amount decimal.Decimal) (entities.Transaction, error) {
	w, token, err := u.prepareMovement(ctx, userID, token, amount)
	if err != nil {
		return entities.Transaction{}, err
	}

	txRef, err := u.escrow.Deposit(ctx, w.EscrowAddress, token, amount)
	if err != nil {
		log.Printf("[balance][usecase] escrow deposit failed user_id=%s token=%s amount=%s err=%v", userID, token, amount, err)
		return entities.Transaction{}, err
	}

	tx, err := u.ledger.AppendTransaction(ctx, entities.Transaction{
		WalletID:    w.WalletID,
		Type:        entities.TransactionTypeDeposit,
		Amount:      amount,
		Token:       token,
		ExternalRef: txRef,
	})
	if err != nil {
		// The vault accepted but the local record failed: flag for
		// reconciliation instead of hiding the divergence.
		log.Printf("[balance][usecase] RECONCILE deposit confirmed on escrow but not recorded locally user_id=%s tx_ref=%s err=%v", userID, txRef, err)
		return entities.Transaction{}, err
	}
	log.Printf("[balance][usecase] deposit recorded user_id=%s amount=%s tx_ref=%s", userID, amount, txRef)
	return tx, nil
}

func (u *BalanceUseCase) Withdraw(ctx context.Context, userID, token string, amount decimal.Decimal, destination string) (entities.Transaction, error) {
	w, token, err := u.prepareMovement(ctx, userID, token, amount)
	if err != nil {
		return entities.Transaction{}, err
	}

	// Advisory pre-check against the local projection to avoid a doomed
	// remote call; the ledger append below re-checks atomically.
	if w.Balance.LessThan(amount) {
		return entities.Transaction{}, interfaces.ErrInsufficientBalance
	}

	txRef, err := u.escrow.Withdraw(ctx, w.EscrowAddress, token, amount)
	if err != nil {
		log.Printf("[balance][usecase] escrow withdraw failed user_id=%s token=%s amount=%s err=%v", userID, token, amount, err)
		return entities.Transaction{}, err
	}

	tx, err := u.ledger.AppendTransaction(ctx, entities.Transaction{
		WalletID:    w.WalletID,
		Type:        entities.TransactionTypeWithdraw,
		Amount:      amount,
		Token:       token,
		ExternalRef: txRef,
		Destination: strings.TrimSpace(destination),
	})
	if err != nil {
		log.Printf("[balance][usecase] RECONCILE withdraw confirmed on escrow but not recorded locally user_id=%s tx_ref=%s err=%v", userID, txRef, err)
		return entities.Transaction{}, err
	}
	log.Printf("[balance][usecase] withdraw recorded user_id=%s amount=%s tx_ref=%s", userID, amount, txRef)
	return tx, nil
}

func (u *BalanceUseCase) History(ctx context.Context, userID string) ([]entities.Transaction, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.ledger.History(ctx, entities.WalletIDFor(userID))
}

// prepareMovement validates a deposit/withdraw request and checks token
// support with the vault before any funds move.
func (u *BalanceUseCase) prepareMovement(ctx context.Context, userID, token string, amount decimal.Decimal) (entities.Wallet, string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Wallet{}, "", ErrInvalidUserID
	}
	if !amount.IsPositive() {
		return entities.Wallet{}, "", ErrInvalidMoveAmount
	}
	if u.escrow == nil {
		return entities.Wallet{}, "", ErrEscrowNotWired
	}
	token = u.resolveToken(token)

	supported, err := u.escrow.IsTokenSupported(ctx, token)
	if err != nil {
		return entities.Wallet{}, "", err
	}
	if !supported {
		return entities.Wallet{}, "", interfaces.ErrEscrowUnsupportedToken
	}

	w, err := u.ledger.EnsureWallet(ctx, userID)
	if err != nil {
		return entities.Wallet{}, "", err
	}
	return w, token, nil
}

func (u *BalanceUseCase) resolveToken(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return u.defaultToken
	}
	return token
}
