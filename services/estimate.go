// services/estimate.go
package services

import (
	"math"
	"strconv"
	"strings"

	"mkepoxy-backend/config"
	"mkepoxy-backend/models"

	"gorm.io/gorm"
)

// Estimate is the price breakdown returned to a quotation submitter.
// Figures are whole rupees, rounded half-up from the unrounded values.
type Estimate struct {
	Service          string  `json:"service"`
	Area             float64 `json:"area"`
	BasePricePerSqft float64 `json:"basePricePerSqft"`
	Subtotal         float64 `json:"subtotal"`
	Overhead         float64 `json:"overhead"`
	GST              float64 `json:"gst"`
	Total            float64 `json:"total"`
	Currency         string  `json:"currency"`
}

// CalculateBreakdown computes the estimate for an area at a per-sqft
// rate. Malformed or negative area degrades to 0 rather than erroring;
// the quotation form is deliberately lenient.
func CalculateBreakdown(service, area string, rate float64) Estimate {
	areaNum, err := strconv.ParseFloat(strings.TrimSpace(area), 64)
	if err != nil || math.IsNaN(areaNum) || areaNum < 0 {
		areaNum = 0
	}

	subtotal := areaNum * rate
	overhead := subtotal * config.OverheadRate
	gst := (subtotal + overhead) * config.GSTRate
	total := subtotal + overhead + gst

	return Estimate{
		Service:          service,
		Area:             areaNum,
		BasePricePerSqft: rate,
		Subtotal:         math.Round(subtotal),
		Overhead:         math.Round(overhead),
		GST:              math.Round(gst),
		Total:            math.Round(total),
		Currency:         config.Currency,
	}
}

type EstimateService struct {
	db *gorm.DB
}

func NewEstimateService(db *gorm.DB) *EstimateService {
	return &EstimateService{db: db}
}

// LookupRate resolves the per-sqft rate for a service name: active
// Service record first, then the pricing mirror, then the configured
// default.
func (s *EstimateService) LookupRate(serviceName string) float64 {
	var service models.Service
	err := s.db.Where("title = ? AND is_active = ?", serviceName, true).First(&service).Error
	if err == nil && service.RatePerSqft > 0 {
		return service.RatePerSqft
	}

	var pricing models.ServicePricing
	err = s.db.Where("service_name = ? AND is_active = ?", serviceName, true).First(&pricing).Error
	if err == nil && pricing.PricePerSqft > 0 {
		return pricing.PricePerSqft
	}

	return config.DefaultQuoteRate()
}

// Estimate produces the breakdown for a quotation submission. Never
// errors: unknown services fall back to the default rate.
func (s *EstimateService) Estimate(serviceName, area string) Estimate {
	return CalculateBreakdown(serviceName, area, s.LookupRate(serviceName))
}
