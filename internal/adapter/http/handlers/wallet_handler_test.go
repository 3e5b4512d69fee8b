package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"paygo_market/internal/adapter/http/handlers/mocks"
	"paygo_market/internal/domain/entities"
	"paygo_market/internal/usecase"
	"paygo_market/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func walletRouter(h *WalletHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/wallets/:user_id/balance", h.GetBalance)
	r.GET("/v1/wallets/:user_id/transactions", h.ListTransactions)
	r.POST("/v1/wallets/:user_id/deposits", h.CreateDeposit)
	r.POST("/v1/wallets/:user_id/withdrawals", h.CreateWithdrawal)
	return r
}

func TestWalletHandler_GetBalance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("escrow balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBalanceUseCase(ctrl)
		h := NewWalletHandler(uc)
		r := walletRouter(h)

		uc.EXPECT().BalanceFor(gomock.Any(), "user-1", "NGNX").Return(usecase.BalanceView{
			UserID:   "user-1",
			WalletID: "wal_abc",
			Token:    "NGNX",
			Amount:   decimal.RequireFromString("42.5"),
			Source:   usecase.BalanceSourceEscrow,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/wallets/user-1/balance?token=NGNX", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["amount"] != "42.5" || body["source"] != "escrow" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("local fallback marks source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBalanceUseCase(ctrl)
		h := NewWalletHandler(uc)
		r := walletRouter(h)

		uc.EXPECT().BalanceFor(gomock.Any(), "user-1", "").Return(usecase.BalanceView{
			UserID: "user-1",
			Amount: decimal.NewFromInt(10),
			Source: usecase.BalanceSourceLocal,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/wallets/user-1/balance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["source"] != "local" {
			t.Fatalf("expected local source, got %v", body)
		}
	})
}

func TestWalletHandler_CreateDeposit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewWalletHandler(mocks.NewMockIBalanceUseCase(ctrl))
		r := walletRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/wallets/user-1/deposits", bytes.NewBufferString(`{"amount":"0"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("escrow unavailable maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBalanceUseCase(ctrl)
		h := NewWalletHandler(uc)
		r := walletRouter(h)

		uc.EXPECT().Deposit(gomock.Any(), "user-1", "", gomock.Any()).Return(entities.Transaction{}, interfaces.ErrEscrowUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/wallets/user-1/deposits", bytes.NewBufferString(`{"amount":"25"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("unsupported token maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBalanceUseCase(ctrl)
		h := NewWalletHandler(uc)
		r := walletRouter(h)

		uc.EXPECT().Deposit(gomock.Any(), "user-1", "DOGE", gomock.Any()).Return(entities.Transaction{}, interfaces.ErrEscrowUnsupportedToken)

		req := httptest.NewRequest(http.MethodPost, "/v1/wallets/user-1/deposits", bytes.NewBufferString(`{"token":"DOGE","amount":"25"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBalanceUseCase(ctrl)
		h := NewWalletHandler(uc)
		r := walletRouter(h)

		uc.EXPECT().Deposit(gomock.Any(), "user-1", "", gomock.Any()).Return(entities.Transaction{
			ID:          "tx-1",
			Type:        entities.TransactionTypeDeposit,
			Amount:      decimal.NewFromInt(25),
			Token:       "NGNX",
			ExternalRef: "0xabc",
			Status:      entities.TransactionStatusConfirmed,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/wallets/user-1/deposits", bytes.NewBufferString(`{"amount":"25"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["external_ref"] != "0xabc" || body["type"] != "deposit" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestWalletHandler_CreateWithdrawal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("insufficient balance maps to 402", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBalanceUseCase(ctrl)
		h := NewWalletHandler(uc)
		r := walletRouter(h)

		uc.EXPECT().Withdraw(gomock.Any(), "user-1", "", gomock.Any(), "0xdest").Return(entities.Transaction{}, interfaces.ErrInsufficientBalance)

		req := httptest.NewRequest(http.MethodPost, "/v1/wallets/user-1/withdrawals", bytes.NewBufferString(`{"amount":"100","destination":"0xdest"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})

	t.Run("escrow rejection maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBalanceUseCase(ctrl)
		h := NewWalletHandler(uc)
		r := walletRouter(h)

		uc.EXPECT().Withdraw(gomock.Any(), "user-1", "", gomock.Any(), "0xdest").Return(entities.Transaction{}, interfaces.ErrEscrowRejected)

		req := httptest.NewRequest(http.MethodPost, "/v1/wallets/user-1/withdrawals", bytes.NewBufferString(`{"amount":"10","destination":"0xdest"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestWalletHandler_ListTransactions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBalanceUseCase(ctrl)
	h := NewWalletHandler(uc)
	r := walletRouter(h)

	uc.EXPECT().History(gomock.Any(), "user-1").Return([]entities.Transaction{
		{ID: "tx-2", Type: entities.TransactionTypeCharge, Amount: decimal.NewFromInt(4)},
		{ID: "tx-1", Type: entities.TransactionTypeDeposit, Amount: decimal.NewFromInt(25)},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/wallets/user-1/transactions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body) != 2 || body[0]["transaction_id"] != "tx-2" {
		t.Fatalf("unexpected body: %v", body)
	}
}
