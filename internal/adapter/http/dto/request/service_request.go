package request

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidServiceRate = errors.New("invalid service rate")

type CreateServiceRequest struct {
	VendorID string `json:"vendor_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	Rate     string `json:"rate" binding:"required"`
	Unit     string `json:"unit" binding:"required"`
	Token    string `json:"token" binding:"required"`
}

func (r CreateServiceRequest) ResolveRate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(r.Rate))
	if err != nil || rate.IsNegative() {
		return decimal.Zero, ErrInvalidServiceRate
	}
	return rate, nil
}
