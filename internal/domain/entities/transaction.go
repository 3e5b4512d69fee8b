package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDeposit     TransactionType = "deposit"
	TransactionTypeWithdraw    TransactionType = "withdraw"
	TransactionTypeCharge      TransactionType = "charge"
	TransactionTypeTransferOut TransactionType = "transfer_out"
	TransactionTypeTransferIn  TransactionType = "transfer_in"
)

// Debit reports whether the type decreases the wallet balance.
func (t TransactionType) Debit() bool {
	switch t {
	case TransactionTypeWithdraw, TransactionTypeCharge, TransactionTypeTransferOut:
		return true
	}
	return false
}

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusConfirmed TransactionStatus = "confirmed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction is one entry in the append-only ledger. Entries are never
// deleted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI: wallet_id-index (PK: wallet_id, SK: created_at)
//
// SessionID is set only for charges and is unique per session: the charge
// transaction ID is derived from it, so the primary key is the
// settlement idempotency guard.

type Transaction struct {
	ID          string            `json:"id"`
	WalletID    string            `json:"wallet_id"`
	Type        TransactionType   `json:"type"`
	Amount      decimal.Decimal   `json:"amount"`
	Token       string            `json:"token"`
	SessionID   string            `json:"session_id,omitempty"`
	ExternalRef string            `json:"external_ref,omitempty"`
	Destination string            `json:"destination,omitempty"`
	Status      TransactionStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

// ChargeTransactionID derives the one transaction ID a session's charge may
// ever use.
func ChargeTransactionID(sessionID string) string {
	return "chg-" + sessionID
}
