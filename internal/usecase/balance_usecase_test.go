package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"paygo_market/internal/domain/entities"
	"paygo_market/internal/usecase/interfaces"
	mock_interfaces "paygo_market/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func testWallet(userID string, balance string) entities.Wallet {
	return entities.Wallet{
		WalletID:      entities.WalletIDFor(userID),
		UserID:        userID,
		EscrowAddress: entities.EscrowAddressFor(userID),
		Balance:       decimal.RequireFromString(balance),
	}
}

func TestBalanceUseCase_BalanceFor(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewBalanceUseCase(nil, nil, "NGNX", time.Second)
		_, err := uc.BalanceFor(context.Background(), "  ", "")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("escrow balance wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockILedgerStore(ctrl)
		escrow := mock_interfaces.NewMockIEscrowClient(ctrl)
		uc := NewBalanceUseCase(ledger, escrow, "NGNX", time.Second)

		w := testWallet("user-1", "50")
		ledger.EXPECT().EnsureWallet(gomock.Any(), "user-1").Return(w, nil)
		escrow.EXPECT().GetBalance(gomock.Any(), w.EscrowAddress, "NGNX").Return(decimal.NewFromInt(75), nil)

		view, err := uc.BalanceFor(context.Background(), "user-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Source != BalanceSourceEscrow {
			t.Fatalf("expected escrow source, got %s", view.Source)
		}
		if !view.Amount.Equal(decimal.NewFromInt(75)) {
			t.Fatalf("expected escrow amount, got %s", view.Amount)
		}
	})

	t.Run("falls back to local projection when escrow unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockILedgerStore(ctrl)
		escrow := mock_interfaces.NewMockIEscrowClient(ctrl)
		uc := NewBalanceUseCase(ledger, escrow, "NGNX", time.Second)

		w := testWallet("user-1", "50")
		ledger.EXPECT().EnsureWallet(gomock.Any(), "user-1").Return(w, nil)
		escrow.EXPECT().GetBalance(gomock.Any(), w.EscrowAddress, "NGNX").Return(decimal.Decimal{}, interfaces.ErrEscrowUnavailable)

		view, err := uc.BalanceFor(context.Background(), "user-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Source != BalanceSourceLocal {
			t.Fatalf("expected local source, got %s", view.Source)
		}
		if !view.Amount.Equal(decimal.NewFromInt(50)) {
			t.Fatalf("expected local amount, got %s", view.Amount)
		}
	})

	t.Run("permanent escrow error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockILedgerStore(ctrl)
		escrow := mock_interfaces.NewMockIEscrowClient(ctrl)
		uc := NewBalanceUseCase(ledger, escrow, "NGNX", time.Second)

		w := testWallet("user-1", "50")
		ledger.EXPECT().EnsureWallet(gomock.Any(), "user-1").Return(w, nil)
		escrow.EXPECT().GetBalance(gomock.Any(), w.EscrowAddress, "NGNX").Return(decimal.Decimal{}, interfaces.ErrEscrowRejected)

		_, err := uc.BalanceFor(context.Background(), "user-1", "")
		if !errors.Is(err, interfaces.ErrEscrowRejected) {
			t.Fatalf("expected ErrEscrowRejected, got %v", err)
		}
	})

	t.Run("local projection when no escrow client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewBalanceUseCase(ledger, nil, "NGNX", time.Second)

		ledger.EXPECT().EnsureWallet(gomock.Any(), "user-1").Return(testWallet("user-1", "50"), nil)

		view, err := uc.BalanceFor(context.Background(), "user-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Source != BalanceSourceLocal {
			t.Fatalf("expected local source, got %s", view.Source)
		}
	})
}

func TestBalanceUseCase_Deposit(t *testing.T) {
	t.Run("non-positive amount", func(t *testing.T) {
		uc := NewBalanceUseCase(nil, nil, "NGNX", time.Second)
		_, err := uc.Deposit(context.Background(), "user-1", "", decimal.Zero)
		if !errors.Is(err, ErrInvalidMoveAmount) {
			t.Fatalf("expected ErrInvalidMoveAmount, got %v", err)
		}
	})

	t.Run("escrow not configured", func(t *testing.T) {
		uc := NewBalanceUseCase(nil, nil, "NGNX", time.Second)
		_, err := uc.Deposit(context.Background(), "user-1", "", decimal.NewFromInt(10))
		if !errors.Is(err, ErrEscrowNotWired) {
			t.Fatalf("expected ErrEscrowNotWired, got %v", err)
		}
	})

	t.Run("unsupported token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		escrow := mock_interfaces.NewMockIEscrowClient(ctrl)
		uc := NewBalanceUseCase(nil, escrow, "NGNX", time.Second)

		escrow.EXPECT().IsTokenSupported(gomock.Any(), "DOGE").Return(false, nil)

		_, err := uc.Deposit(context.Background(), "user-1", "DOGE", decimal.NewFromInt(10))
		if !errors.Is(err, interfaces.ErrEscrowUnsupportedToken) {
			t.Fatalf("expected ErrEscrowUnsupportedToken, got %v", err)
		}
	})

	t.Run("vault failure leaves no local record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockILedgerStore(ctrl)
		escrow := mock_interfaces.NewMockIEscrowClient(ctrl)
		uc := NewBalanceUseCase(ledger, escrow, "NGNX", time.Second)

		w := testWallet("user-1", "0")
		escrow.EXPECT().IsTokenSupported(gomock.Any(), "NGNX").Return(true, nil)
		ledger.EXPECT().EnsureWallet(gomock.Any(), "user-1").Return(w, nil)
		escrow.EXPECT().Deposit(gomock.Any(), w.EscrowAddress, "NGNX", gomock.Any()).Return("", interfaces.ErrEscrowUnavailable)
		// No AppendTransaction expectation: the ledger must stay untouched.

		_, err := uc.Deposit(context.Background(), "user-1", "", decimal.NewFromInt(10))
		if !errors.Is(err, interfaces.ErrEscrowUnavailable) {
			t.Fatalf("expected ErrEscrowUnavailable, got %v", err)
		}
	})

	t.Run("records confirmed vault deposit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockILedgerStore(ctrl)
		escrow := mock_interfaces.NewMockIEscrowClient(ctrl)
		uc := NewBalanceUseCase(ledger, escrow, "NGNX", time.Second)

		w := testWallet("user-1", "0")
		escrow.EXPECT().IsTokenSupported(gomock.Any(), "NGNX").Return(true, nil)
		ledger.EXPECT().EnsureWallet(gomock.Any(), "user-1").Return(w, nil)
		escrow.EXPECT().Deposit(gomock.Any(), w.EscrowAddress, "NGNX", gomock.Any()).Return("0xabc123", nil)
		ledger.EXPECT().AppendTransaction(gomock.Any(), gomock.AssignableToTypeOf(entities.Transaction{})).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
				if tx.Type != entities.TransactionTypeDeposit || tx.ExternalRef != "0xabc123" {
					t.Fatalf("unexpected transaction: %+v", tx)
				}
				if !tx.Amount.Equal(decimal.NewFromInt(10)) {
					t.Fatalf("unexpected amount: %s", tx.Amount)
				}
				tx.ID = "tx-1"
				tx.Status = entities.TransactionStatusConfirmed
				return tx, nil
			},
		)

		tx, err := uc.Deposit(context.Background(), "user-1", "", decimal.NewFromInt(10))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.ID == "" || tx.ExternalRef != "0xabc123" {
			t.Fatalf("unexpected result: %+v", tx)
		}
	})
}

func TestBalanceUseCase_Withdraw(t *testing.T) {
	t.Run("insufficient local balance pre-check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockILedgerStore(ctrl)
		escrow := mock_interfaces.NewMockIEscrowClient(ctrl)
		uc := NewBalanceUseCase(ledger, escrow, "NGNX", time.Second)

		escrow.EXPECT().IsTokenSupported(gomock.Any(), "NGNX").Return(true, nil)
		ledger.EXPECT().EnsureWallet(gomock.Any(), "user-1").Return(testWallet("user-1", "5"), nil)
		// No vault call: the doomed withdrawal never leaves the service.

		_, err := uc.Withdraw(context.Background(), "user-1", "", decimal.NewFromInt(10), "0xdest")
		if !errors.Is(err, interfaces.ErrInsufficientBalance) {
			t.Fatalf("expected ErrInsufficientBalance, got %v", err)
		}
	})

	t.Run("records confirmed vault withdrawal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockILedgerStore(ctrl)
		escrow := mock_interfaces.NewMockIEscrowClient(ctrl)
		uc := NewBalanceUseCase(ledger, escrow, "NGNX", time.Second)

		w := testWallet("user-1", "50")
		escrow.EXPECT().IsTokenSupported(gomock.Any(), "NGNX").Return(true, nil)
		ledger.EXPECT().EnsureWallet(gomock.Any(), "user-1").Return(w, nil)
		escrow.EXPECT().Withdraw(gomock.Any(), w.EscrowAddress, "NGNX", gomock.Any()).Return("0xdef456", nil)
		ledger.EXPECT().AppendTransaction(gomock.Any(), gomock.AssignableToTypeOf(entities.Transaction{})).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
				if tx.Type != entities.TransactionTypeWithdraw || tx.Destination != "0xdest" {
					t.Fatalf("unexpected transaction: %+v", tx)
				}
				tx.ID = "tx-2"
				return tx, nil
			},
		)

		tx, err := uc.Withdraw(context.Background(), "user-1", "", decimal.NewFromInt(10), " 0xdest ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.ID != "tx-2" {
			t.Fatalf("unexpected result: %+v", tx)
		}
	})
}

func TestBalanceUseCase_History(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewBalanceUseCase(nil, nil, "NGNX", time.Second)
		_, err := uc.History(context.Background(), "")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("reads local ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewBalanceUseCase(ledger, nil, "NGNX", time.Second)

		expected := []entities.Transaction{{ID: "tx-1"}, {ID: "tx-2"}}
		ledger.EXPECT().History(gomock.Any(), entities.WalletIDFor("user-1")).Return(expected, nil)

		txs, err := uc.History(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(txs) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(txs))
		}
	})
}
