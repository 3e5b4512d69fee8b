package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"paygo_market/internal/adapter/http/handlers/mocks"
	"paygo_market/internal/domain/entities"
	"paygo_market/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func sessionRouter(h *SessionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/sessions", h.StartSession)
	r.GET("/v1/sessions/:session_id", h.GetSession)
	r.PATCH("/v1/sessions/:session_id/pause", h.PauseSession)
	r.PATCH("/v1/sessions/:session_id/resume", h.ResumeSession)
	r.POST("/v1/sessions/:session_id/metrics", h.RecordMetrics)
	r.POST("/v1/sessions/:session_id/stop", h.StopSession)
	return r
}

func TestSessionHandler_StartSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewSessionHandler(mocks.NewMockISessionUseCase(ctrl), mocks.NewMockISettlementUseCase(ctrl))
		r := sessionRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("service not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc, mocks.NewMockISettlementUseCase(ctrl))
		r := sessionRouter(h)

		uc.EXPECT().Start(gomock.Any(), "user-1", "svc-1", "").Return(entities.Session{}, usecase.ErrServiceNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString(`{"user_id":"user-1","service_id":"svc-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("policy denial maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc, mocks.NewMockISettlementUseCase(ctrl))
		r := sessionRouter(h)

		uc.EXPECT().Start(gomock.Any(), "user-1", "svc-1", "").Return(entities.Session{}, usecase.ErrStartNotAllowed)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString(`{"user_id":"user-1","service_id":"svc-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc, mocks.NewMockISettlementUseCase(ctrl))
		r := sessionRouter(h)

		uc.EXPECT().Start(gomock.Any(), "user-1", "svc-1", "web").Return(entities.Session{
			ID:              "sess-1",
			UserID:          "user-1",
			ServiceID:       "svc-1",
			Status:          entities.SessionStatusActive,
			SettlementState: entities.SettlementStateUnsettled,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString(`{"user_id":"user-1","service_id":"svc-1","client_info":"web"}`))
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
		if body["session_id"] != "sess-1" || body["status"] != "active" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestSessionHandler_PauseResume(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid state maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc, mocks.NewMockISettlementUseCase(ctrl))
		r := sessionRouter(h)

		uc.EXPECT().Pause(gomock.Any(), "sess-1", "user-1").Return(entities.Session{}, usecase.ErrInvalidSessionState)

		req := httptest.NewRequest(http.MethodPatch, "/v1/sessions/sess-1/pause", bytes.NewBufferString(`{"user_id":"user-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("resume success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc, mocks.NewMockISettlementUseCase(ctrl))
		r := sessionRouter(h)

		uc.EXPECT().Resume(gomock.Any(), "sess-1", "user-1").Return(entities.Session{ID: "sess-1", Status: entities.SessionStatusActive}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/sessions/sess-1/resume", bytes.NewBufferString(`{"user_id":"user-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("forbidden maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc, mocks.NewMockISettlementUseCase(ctrl))
		r := sessionRouter(h)

		uc.EXPECT().Pause(gomock.Any(), "sess-1", "user-2").Return(entities.Session{}, usecase.ErrSessionForbidden)

		req := httptest.NewRequest(http.MethodPatch, "/v1/sessions/sess-1/pause", bytes.NewBufferString(`{"user_id":"user-2"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestSessionHandler_StopSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid usage quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewSessionHandler(mocks.NewMockISessionUseCase(ctrl), mocks.NewMockISettlementUseCase(ctrl))
		r := sessionRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/sess-1/stop", bytes.NewBufferString(`{"user_id":"user-1","usage_quantity":"-3"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("settlement in progress maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settle := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSessionHandler(mocks.NewMockISessionUseCase(ctrl), settle)
		r := sessionRouter(h)

		settle.EXPECT().Settle(gomock.Any(), "sess-1", "user-1", gomock.Any()).Return(usecase.SettlementResult{}, usecase.ErrSettlementInProgress)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/sess-1/stop", bytes.NewBufferString(`{"user_id":"user-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("settled with charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settle := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSessionHandler(mocks.NewMockISessionUseCase(ctrl), settle)
		r := sessionRouter(h)

		charge := entities.Transaction{ID: "chg-sess-1", Amount: decimal.NewFromInt(4), Type: entities.TransactionTypeCharge}
		settle.EXPECT().Settle(gomock.Any(), "sess-1", "user-1", gomock.Any()).DoAndReturn(
			func(_ any, _, _ string, q decimal.Decimal) (usecase.SettlementResult, error) {
				if !q.Equal(decimal.RequireFromString("1.5")) {
					t.Fatalf("expected usage quantity 1.5, got %s", q)
				}
				return usecase.SettlementResult{
					Session: entities.Session{
						ID:              "sess-1",
						Status:          entities.SessionStatusCompleted,
						SettlementState: entities.SettlementStateSettled,
						Token:           "NGNX",
					},
					UsageSeconds: 90,
					TotalCost:    decimal.NewFromInt(4),
					Charged:      true,
					Transaction:  &charge,
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/sess-1/stop", bytes.NewBufferString(`{"user_id":"user-1","usage_quantity":"1.5"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["total_cost"] != "4" || body["charged"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
		if body["transaction"] == nil {
			t.Fatalf("expected transaction in body: %v", body)
		}
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settle := mocks.NewMockISettlementUseCase(ctrl)
		h := NewSessionHandler(mocks.NewMockISessionUseCase(ctrl), settle)
		r := sessionRouter(h)

		settle.EXPECT().Settle(gomock.Any(), "sess-1", "user-1", gomock.Any()).Return(usecase.SettlementResult{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/sess-1/stop", bytes.NewBufferString(`{"user_id":"user-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestSessionHandler_GetSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc, mocks.NewMockISettlementUseCase(ctrl))
		r := sessionRouter(h)

		uc.EXPECT().GetByID(gomock.Any(), "sess-1", "user-1").Return(entities.Session{}, usecase.ErrSessionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions/sess-1?user_id=user-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
