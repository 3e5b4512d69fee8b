package notify

import (
	"context"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"paygo_market/internal/domain/entities"
	"paygo_market/internal/usecase/interfaces"
)

const dispatchTimeout = 3 * time.Second

// WebhookNotifier posts billing events to the notification dispatcher.
// When no webhook URL is configured the notifier degrades to a log line,
// so a missing collaborator never blocks billing.

type WebhookNotifier struct {
	http *resty.Client
	url  string
}

var _ interfaces.INotifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(webhookURL string) *WebhookNotifier {
	if webhookURL == "" {
		log.Printf("[notify][webhook] no NOTIFY_WEBHOOK_URL configured; notifications will be logged only")
		return &WebhookNotifier{}
	}
	return &WebhookNotifier{
		http: resty.New().SetTimeout(dispatchTimeout),
		url:  webhookURL,
	}
}

type lowBalanceEvent struct {
	Event   string `json:"event"`
	UserID  string `json:"user_id"`
	Balance string `json:"balance"`
	Token   string `json:"token"`
}

type sessionSettledEvent struct {
	Event           string `json:"event"`
	SessionID       string `json:"session_id"`
	UserID          string `json:"user_id"`
	Status          string `json:"status"`
	SettlementState string `json:"settlement_state"`
	UsageSeconds    int64  `json:"usage_seconds"`
	TotalCost       string `json:"total_cost"`
	Token           string `json:"token"`
}

func (n *WebhookNotifier) LowBalance(ctx context.Context, userID string, balance decimal.Decimal, token string) error {
	if n.url == "" {
		log.Printf("[notify][webhook] low balance user_id=%s balance=%s token=%s (dispatch disabled)", userID, balance, token)
		return nil
	}
	return n.post(ctx, lowBalanceEvent{
		Event:   "low_balance",
		UserID:  userID,
		Balance: balance.String(),
		Token:   token,
	})
}

func (n *WebhookNotifier) SessionSettled(ctx context.Context, session entities.Session) error {
	if n.url == "" {
		log.Printf("[notify][webhook] session settled session_id=%s status=%s total_cost=%s (dispatch disabled)", session.ID, session.Status, session.TotalCost)
		return nil
	}
	return n.post(ctx, sessionSettledEvent{
		Event:           "session_settled",
		SessionID:       session.ID,
		UserID:          session.UserID,
		Status:          string(session.Status),
		SettlementState: string(session.SettlementState),
		UsageSeconds:    session.UsageSeconds,
		TotalCost:       session.TotalCost.String(),
		Token:           session.Token,
	})
}

func (n *WebhookNotifier) post(ctx context.Context, event any) error {
	_, err := n.http.R().SetContext(ctx).SetBody(event).Post(n.url)
	return err
}
