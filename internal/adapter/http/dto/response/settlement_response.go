package response

import (
	"paygo_market/internal/usecase"
)

type SettlementResponse struct {
	SessionID       string               `json:"session_id"`
	Status          string               `json:"status"`
	SettlementState string               `json:"settlement_state"`
	UsageSeconds    int64                `json:"usage_seconds"`
	TotalCost       string               `json:"total_cost"`
	Token           string               `json:"token"`
	Charged         bool                 `json:"charged"`
	Transaction     *TransactionResponse `json:"transaction,omitempty"`
}

func FromSettlementResult(r usecase.SettlementResult) SettlementResponse {
	resp := SettlementResponse{
		SessionID:       r.Session.ID,
		Status:          string(r.Session.Status),
		SettlementState: string(r.Session.SettlementState),
		UsageSeconds:    r.UsageSeconds,
		TotalCost:       r.TotalCost.String(),
		Token:           r.Session.Token,
		Charged:         r.Charged,
	}
	if r.Transaction != nil {
		tx := FromTransaction(*r.Transaction)
		resp.Transaction = &tx
	}
	return resp
}
