package interfaces

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// Escrow failures reach callers only as this taxonomy; no transport error
// escapes the client.
var (
	// ErrEscrowUnavailable is transient: the specific remote call may be
	// retried.
	ErrEscrowUnavailable = errors.New("escrow vault unavailable")
	// ErrEscrowRejected is permanent: the vault refused the operation.
	ErrEscrowRejected = errors.New("escrow vault rejected operation")
	// ErrEscrowUnsupportedToken is permanent and configuration-level.
	ErrEscrowUnsupportedToken = errors.New("token not supported by escrow vault")
)

// IEscrowClient adapts the external escrow vault contract. Every call is a
// remote RPC that may take seconds; the client bounds each attempt but has
// no retry logic of its own — retries and fallback policy belong to the
// callers. Mutating calls return the vault transaction hash on success.

type IEscrowClient interface {
	Deposit(ctx context.Context, userAddr, token string, amount decimal.Decimal) (txRef string, err error)
	Withdraw(ctx context.Context, userAddr, token string, amount decimal.Decimal) (txRef string, err error)
	GetBalance(ctx context.Context, userAddr, token string) (decimal.Decimal, error)
	IsTokenSupported(ctx context.Context, token string) (bool, error)
}
