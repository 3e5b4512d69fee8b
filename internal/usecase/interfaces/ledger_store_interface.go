package interfaces

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"paygo_market/internal/domain/entities"
)

// Ledger failures are part of the store's contract, so the sentinels live
// with the interface rather than in a use case package.
var (
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrDuplicateSettlement  = errors.New("charge already recorded for session")
	ErrInvalidAmount        = errors.New("transaction amount must be positive")
	ErrWalletNotFound       = errors.New("wallet not found")
	ErrDuplicateTransaction = errors.New("transaction id already exists")
)

// ILedgerStore is the append-only transaction log plus the per-wallet
// balance projection.
//
// AppendTransaction inserts the transaction and adjusts the owning
// wallet's balance in one atomic unit: a debit whose amount exceeds the
// balance fails with ErrInsufficientBalance and writes nothing, and a
// charge whose session already has a recorded charge fails with
// ErrDuplicateSettlement. CurrentBalance and History read local state
// only; they never touch the escrow vault.

type ILedgerStore interface {
	// EnsureWallet creates the wallet projection row for the user if absent
	// and returns the current row either way.
	EnsureWallet(ctx context.Context, userID string) (entities.Wallet, error)

	// AppendTransaction fills ID, Status and CreatedAt on the way in. For
	// charges the ID is derived from SessionID.
	AppendTransaction(ctx context.Context, tx entities.Transaction) (entities.Transaction, error)

	CurrentBalance(ctx context.Context, walletID string) (decimal.Decimal, error)

	// History returns the wallet's transactions, newest first.
	History(ctx context.Context, walletID string) ([]entities.Transaction, error)

	// FindChargeBySession returns the charge recorded for the session, or a
	// zero-value transaction when none exists.
	FindChargeBySession(ctx context.Context, sessionID string) (entities.Transaction, error)
}
