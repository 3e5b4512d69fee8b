package handlers

import (
	"context"
	"errors"
	"net/http"

	request "paygo_market/internal/adapter/http/dto/request"
	response "paygo_market/internal/adapter/http/dto/response"
	"paygo_market/internal/domain/entities"
	"paygo_market/internal/domain/pricing"
	"paygo_market/internal/usecase"
	"paygo_market/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Invalid session payload", http.StatusBadRequest)
)

// SessionHandler handles HTTP requests for the metered session lifecycle,
// including the stop request that triggers settlement.

type SessionHandler struct {
	sessions   usecase.ISessionUseCase
	settlement usecase.ISettlementUseCase
}

func NewSessionHandler(sessions usecase.ISessionUseCase, settlement usecase.ISettlementUseCase) *SessionHandler {
	return &SessionHandler{sessions: sessions, settlement: settlement}
}

func (h *SessionHandler) StartSession(c *gin.Context) {
	var payload request.StartSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	session, err := h.sessions.Start(c.Request.Context(), payload.UserID, payload.ServiceID, payload.ClientInfo)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSession(session))
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("session_id")
	userID := c.Query("user_id")

	session, err := h.sessions.GetByID(c.Request.Context(), sessionID, userID)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *SessionHandler) PauseSession(c *gin.Context) {
	h.patchSessionStatus(c, h.sessions.Pause)
}

func (h *SessionHandler) ResumeSession(c *gin.Context) {
	h.patchSessionStatus(c, h.sessions.Resume)
}

func (h *SessionHandler) patchSessionStatus(
	c *gin.Context,
	updater func(ctx context.Context, sessionID, userID string) (entities.Session, error),
) {
	var payload request.SessionActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	session, err := updater(c.Request.Context(), c.Param("session_id"), payload.UserID)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *SessionHandler) RecordMetrics(c *gin.Context) {
	var payload request.RecordMetricsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	metric := entities.QualityMetric{
		BitrateKbps: payload.BitrateKbps,
		LatencyMs:   payload.LatencyMs,
		FrameDrops:  payload.FrameDrops,
	}
	if payload.Timestamp != nil {
		metric.Timestamp = *payload.Timestamp
	}

	session, err := h.sessions.RecordMetrics(c.Request.Context(), c.Param("session_id"), payload.UserID, metric)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

// StopSession ends the session and settles it. Safe to retry: a stop on an
// already settled session replays the recorded outcome with 200.
func (h *SessionHandler) StopSession(c *gin.Context) {
	var payload request.StopSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	quantity, err := payload.ResolveUsageQuantity()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_USAGE_QUANTITY", "Invalid usage quantity", http.StatusBadRequest).ToHTTPError())
		return
	}

	result, err := h.settlement.Settle(c.Request.Context(), c.Param("session_id"), payload.UserID, quantity)
	if err != nil {
		appErr := mapSettlementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSettlementResult(result))
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceInactive):
		return pkg.NewDomainErrorSimple("SERVICE_INACTIVE", "Service is not accepting sessions", http.StatusConflict)
	case errors.Is(err, usecase.ErrSessionForbidden):
		return pkg.NewDomainErrorSimple("SESSION_FORBIDDEN", "Session belongs to another user", http.StatusForbidden)
	case errors.Is(err, usecase.ErrStartNotAllowed):
		return pkg.NewDomainErrorSimple("START_NOT_ALLOWED", "User is not allowed to start this session", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidSessionState):
		return pkg.NewDomainErrorSimple("INVALID_SESSION_STATE", "Session is not in a valid state for this operation", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapSettlementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSettlementInProgress):
		return pkg.NewDomainErrorSimple("SETTLEMENT_IN_PROGRESS", "Settlement is already in progress for this session", http.StatusConflict)
	case errors.Is(err, pricing.ErrNegativeQuantity),
		errors.Is(err, pricing.ErrNegativeRate),
		errors.Is(err, pricing.ErrNegativeElapsed),
		errors.Is(err, pricing.ErrUnknownUnit):
		return pkg.NewDomainErrorSimple("INVALID_USAGE", "Invalid usage data for settlement", http.StatusBadRequest)
	default:
		return mapSessionError(err)
	}
}
