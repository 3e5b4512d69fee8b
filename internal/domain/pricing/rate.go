// Package pricing maps a captured service rate plus observed usage to a
// monetary cost. Pure computation, no persistence and no side effects.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"

	"paygo_market/internal/domain/entities"
)

var (
	ErrNegativeRate     = errors.New("negative rate")
	ErrNegativeElapsed  = errors.New("negative elapsed seconds")
	ErrNegativeQuantity = errors.New("negative usage quantity")
	ErrUnknownUnit      = errors.New("unknown billing unit")
)

const (
	secondsPerMinute int64 = 60
	secondsPerHour   int64 = 3600
)

// Cost computes the settlement amount for a session.
//
// Duration units bill every started unit (ceiling rounding): 61 elapsed
// seconds at per_minute is two billed minutes. Fixed-price units ignore
// duration entirely. per_gb bills rate x usageQuantity; the quantity comes
// from the caller and defaults to zero when unknown.
func Cost(rate decimal.Decimal, unit entities.BillingUnit, elapsedSeconds int64, usageQuantity decimal.Decimal) (decimal.Decimal, error) {
	if rate.IsNegative() {
		return decimal.Zero, ErrNegativeRate
	}
	if elapsedSeconds < 0 {
		return decimal.Zero, ErrNegativeElapsed
	}

	switch unit {
	case entities.UnitPerSession, entities.UnitPerTransaction, entities.UnitPerRequest:
		return rate, nil
	case entities.UnitPerGB:
		if usageQuantity.IsNegative() {
			return decimal.Zero, ErrNegativeQuantity
		}
		return rate.Mul(usageQuantity), nil
	case entities.UnitPerSecond:
		return rate.Mul(decimal.NewFromInt(elapsedSeconds)), nil
	case entities.UnitPerMinute:
		return rate.Mul(decimal.NewFromInt(ceilUnits(elapsedSeconds, secondsPerMinute))), nil
	case entities.UnitPerHour:
		return rate.Mul(decimal.NewFromInt(ceilUnits(elapsedSeconds, secondsPerHour))), nil
	default:
		return decimal.Zero, ErrUnknownUnit
	}
}

func ceilUnits(elapsedSeconds, unitSeconds int64) int64 {
	return (elapsedSeconds + unitSeconds - 1) / unitSeconds
}
