package response

import (
	"time"

	"paygo_market/internal/domain/entities"
)

type QualityMetricResponse struct {
	Timestamp   time.Time `json:"timestamp"`
	BitrateKbps int64     `json:"bitrate_kbps"`
	LatencyMs   int64     `json:"latency_ms"`
	FrameDrops  int64     `json:"frame_drops"`
}

type SessionResponse struct {
	SessionID       string                  `json:"session_id"`
	ID              string                  `json:"id"`
	VendorID        string                  `json:"vendor_id"`
	UserID          string                  `json:"user_id"`
	ServiceID       string                  `json:"service_id"`
	Status          string                  `json:"status"`
	SettlementState string                  `json:"settlement_state"`
	RateAtStart     string                  `json:"rate_at_start"`
	UnitAtStart     string                  `json:"unit_at_start"`
	Token           string                  `json:"token"`
	StartTime       time.Time               `json:"start_time"`
	EndTime         *time.Time              `json:"end_time,omitempty"`
	UsageSeconds    int64                   `json:"usage_seconds"`
	TotalCost       string                  `json:"total_cost"`
	QualityMetrics  []QualityMetricResponse `json:"quality_metrics,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

func FromSession(s entities.Session) SessionResponse {
	resp := SessionResponse{
		SessionID:       s.ID,
		ID:              s.ID,
		VendorID:        s.VendorID,
		UserID:          s.UserID,
		ServiceID:       s.ServiceID,
		Status:          string(s.Status),
		SettlementState: string(s.SettlementState),
		RateAtStart:     s.RateAtStart.String(),
		UnitAtStart:     string(s.UnitAtStart),
		Token:           s.Token,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		UsageSeconds:    s.UsageSeconds,
		TotalCost:       s.TotalCost.String(),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
	for _, m := range s.QualityMetrics {
		resp.QualityMetrics = append(resp.QualityMetrics, QualityMetricResponse{
			Timestamp:   m.Timestamp,
			BitrateKbps: m.BitrateKbps,
			LatencyMs:   m.LatencyMs,
			FrameDrops:  m.FrameDrops,
		})
	}
	return resp
}
