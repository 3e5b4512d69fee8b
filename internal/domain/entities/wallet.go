package entities

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is the local balance projection for a user (1:1).
//
// Storage model (DynamoDB):
//   - PK: wallet_id
//
// Balance is advisory: it must always equal the sum of signed confirmed
// transaction amounts for the wallet. Only the ledger store writes it.

type Wallet struct {
	WalletID      string          `json:"wallet_id"`
	UserID        string          `json:"user_id"`
	Balance       decimal.Decimal `json:"balance"`
	EscrowAddress string          `json:"escrow_address,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// WalletIDFor derives the stable, non-secret wallet ID for a user.
func WalletIDFor(userID string) string {
	sum := sha256.Sum256([]byte("wallet:" + userID))
	return "wal_" + hex.EncodeToString(sum[:])[:24]
}

// EscrowAddressFor derives the default vault address for a user, used when
// no external address reference was registered.
func EscrowAddressFor(userID string) string {
	sum := sha256.Sum256([]byte("escrow:" + userID))
	return "0x" + hex.EncodeToString(sum[:])[:40]
}
