package request

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidMovementAmount = errors.New("invalid movement amount")

// Monetary amounts travel as decimal strings so no precision is lost to
// JSON number parsing.

type DepositRequest struct {
	Token  string `json:"token"`
	Amount string `json:"amount" binding:"required"`
}

type WithdrawRequest struct {
	Token       string `json:"token"`
	Amount      string `json:"amount" binding:"required"`
	Destination string `json:"destination"`
}

func (r DepositRequest) ResolveAmount() (decimal.Decimal, error) {
	return resolvePositiveAmount(r.Amount)
}

func (r WithdrawRequest) ResolveAmount() (decimal.Decimal, error) {
	return resolvePositiveAmount(r.Amount)
}

func resolvePositiveAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, ErrInvalidMovementAmount
	}
	return amount, nil
}
