package response

import (
	"time"

	"paygo_market/internal/domain/entities"
	"paygo_market/internal/usecase"
)

type TransactionResponse struct {
	TransactionID string    `json:"transaction_id"`
	ID            string    `json:"id"`
	WalletID      string    `json:"wallet_id"`
	Type          string    `json:"type"`
	Amount        string    `json:"amount"`
	Token         string    `json:"token"`
	SessionID     string    `json:"session_id,omitempty"`
	ExternalRef   string    `json:"external_ref,omitempty"`
	Destination   string    `json:"destination,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromTransaction(tx entities.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: tx.ID,
		ID:            tx.ID,
		WalletID:      tx.WalletID,
		Type:          string(tx.Type),
		Amount:        tx.Amount.String(),
		Token:         tx.Token,
		SessionID:     tx.SessionID,
		ExternalRef:   tx.ExternalRef,
		Destination:   tx.Destination,
		Status:        string(tx.Status),
		CreatedAt:     tx.CreatedAt,
	}
}

func FromTransactions(txs []entities.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, FromTransaction(tx))
	}
	return out
}

type BalanceResponse struct {
	UserID   string `json:"user_id"`
	WalletID string `json:"wallet_id"`
	Token    string `json:"token"`
	Amount   string `json:"amount"`
	Source   string `json:"source"`
}

func FromBalanceView(v usecase.BalanceView) BalanceResponse {
	return BalanceResponse{
		UserID:   v.UserID,
		WalletID: v.WalletID,
		Token:    v.Token,
		Amount:   v.Amount.String(),
		Source:   v.Source,
	}
}
