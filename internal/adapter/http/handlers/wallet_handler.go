package handlers

import (
	"errors"
	"net/http"

	request "paygo_market/internal/adapter/http/dto/request"
	response "paygo_market/internal/adapter/http/dto/response"
	"paygo_market/internal/usecase"
	"paygo_market/internal/usecase/interfaces"
	"paygo_market/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWalletPayload = pkg.NewDomainErrorSimple("INVALID_WALLET_INPUT", "Invalid wallet payload", http.StatusBadRequest)
)

// WalletHandler handles HTTP requests for balances, transaction history,
// deposits and withdrawals.

type WalletHandler struct {
	usecase usecase.IBalanceUseCase
}

func NewWalletHandler(uc usecase.IBalanceUseCase) *WalletHandler {
	return &WalletHandler{usecase: uc}
}

func (h *WalletHandler) GetBalance(c *gin.Context) {
	view, err := h.usecase.BalanceFor(c.Request.Context(), c.Param("user_id"), c.Query("token"))
	if err != nil {
		appErr := mapWalletError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBalanceView(view))
}

func (h *WalletHandler) ListTransactions(c *gin.Context) {
	txs, err := h.usecase.History(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapWalletError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransactions(txs))
}

func (h *WalletHandler) CreateDeposit(c *gin.Context) {
	var payload request.DepositRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWalletPayload.HTTPStatus, errInvalidWalletPayload.ToHTTPError())
		return
	}

	amount, err := payload.ResolveAmount()
	if err != nil {
		c.JSON(errInvalidWalletPayload.HTTPStatus, errInvalidWalletPayload.ToHTTPError())
		return
	}

	tx, err := h.usecase.Deposit(c.Request.Context(), c.Param("user_id"), payload.Token, amount)
	if err != nil {
		appErr := mapWalletError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTransaction(tx))
}

func (h *WalletHandler) CreateWithdrawal(c *gin.Context) {
	var payload request.WithdrawRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWalletPayload.HTTPStatus, errInvalidWalletPayload.ToHTTPError())
		return
	}

	amount, err := payload.ResolveAmount()
	if err != nil {
		c.JSON(errInvalidWalletPayload.HTTPStatus, errInvalidWalletPayload.ToHTTPError())
		return
	}

	tx, err := h.usecase.Withdraw(c.Request.Context(), c.Param("user_id"), payload.Token, amount, payload.Destination)
	if err != nil {
		appErr := mapWalletError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTransaction(tx))
}

func mapWalletError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidToken),
		errors.Is(err, usecase.ErrInvalidMoveAmount),
		errors.Is(err, interfaces.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrInsufficientBalance):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_BALANCE", "Insufficient balance", http.StatusPaymentRequired)
	case errors.Is(err, interfaces.ErrWalletNotFound):
		return pkg.NewDomainErrorSimple("WALLET_NOT_FOUND", "Wallet not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrEscrowUnsupportedToken):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_TOKEN", "Token is not supported by the escrow vault", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrEscrowRejected):
		return pkg.NewDomainErrorSimple("ESCROW_REJECTED", "Escrow vault rejected the operation", http.StatusUnprocessableEntity)
	case errors.Is(err, interfaces.ErrEscrowUnavailable), errors.Is(err, usecase.ErrEscrowNotWired):
		return pkg.NewDomainErrorSimple("ESCROW_UNAVAILABLE", "Escrow vault is unavailable, try again later", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
