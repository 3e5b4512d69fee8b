package interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"paygo_market/internal/domain/entities"
)

// INotifier dispatches user-facing alerts. Delivery is fire-and-forget:
// callers log failures and never propagate them.

type INotifier interface {
	LowBalance(ctx context.Context, userID string, balance decimal.Decimal, token string) error
	SessionSettled(ctx context.Context, session entities.Session) error
}
