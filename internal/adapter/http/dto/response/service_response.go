package response

import (
	"time"

	"paygo_market/internal/domain/entities"
)

type ServiceResponse struct {
	ServiceID string    `json:"service_id"`
	ID        string    `json:"id"`
	VendorID  string    `json:"vendor_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	Rate      string    `json:"rate"`
	Unit      string    `json:"unit"`
	Token     string    `json:"token"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromService(svc entities.Service) ServiceResponse {
	return ServiceResponse{
		ServiceID: svc.ID,
		ID:        svc.ID,
		VendorID:  svc.VendorID,
		Name:      svc.Name,
		Category:  svc.Category,
		Rate:      svc.Rate.String(),
		Unit:      string(svc.Unit),
		Token:     svc.Token,
		Active:    svc.Active,
		CreatedAt: svc.CreatedAt,
		UpdatedAt: svc.UpdatedAt,
	}
}
