package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingUnit determines how a service's rate is applied to a session.
//
// Duration units (per_second/per_minute/per_hour) are billed with ceiling
// rounding: a started unit is a billed unit. per_session, per_transaction
// and per_request are fixed-price regardless of duration. per_gb is billed
// against a usage quantity supplied at settlement time.

type BillingUnit string

const (
	UnitPerSecond      BillingUnit = "per_second"
	UnitPerMinute      BillingUnit = "per_minute"
	UnitPerHour        BillingUnit = "per_hour"
	UnitPerSession     BillingUnit = "per_session"
	UnitPerGB          BillingUnit = "per_gb"
	UnitPerTransaction BillingUnit = "per_transaction"
	UnitPerRequest     BillingUnit = "per_request"
)

func (u BillingUnit) Valid() bool {
	switch u {
	case UnitPerSecond, UnitPerMinute, UnitPerHour, UnitPerSession,
		UnitPerGB, UnitPerTransaction, UnitPerRequest:
		return true
	}
	return false
}

// Service is a metered offering registered by a vendor.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Billing fields (Rate/Unit/Token) are captured onto the session at start
// time; changing them never affects in-flight sessions.

type Service struct {
	ID        string          `json:"id"`
	VendorID  string          `json:"vendor_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Rate      decimal.Decimal `json:"rate"`
	Unit      BillingUnit     `json:"unit"`
	Token     string          `json:"token"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
