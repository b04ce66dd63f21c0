package services

import (
	"fmt"
	"testing"

	"mkepoxy-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupEstimateDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Service{}, &models.ServicePricing{}))
	return db
}

func TestCalculateBreakdown_WorkedExample(t *testing.T) {
	est := CalculateBreakdown("Epoxy Flooring", "1000", 80)

	assert.Equal(t, "Epoxy Flooring", est.Service)
	assert.Equal(t, 1000.0, est.Area)
	assert.Equal(t, 80.0, est.BasePricePerSqft)
	assert.Equal(t, 80000.0, est.Subtotal)
	assert.Equal(t, 8000.0, est.Overhead)
	assert.Equal(t, 15840.0, est.GST)
	assert.Equal(t, 103840.0, est.Total)
	assert.Equal(t, "INR", est.Currency)
}

func TestCalculateBreakdown_LenientArea(t *testing.T) {
	for _, area := range []string{"", "abc", "-250", "0", "12abc"} {
		est := CalculateBreakdown("Waterproofing", area, 60)

		assert.Equal(t, 0.0, est.Area, "area %q", area)
		assert.Equal(t, 0.0, est.Subtotal, "area %q", area)
		assert.Equal(t, 0.0, est.Overhead, "area %q", area)
		assert.Equal(t, 0.0, est.GST, "area %q", area)
		assert.Equal(t, 0.0, est.Total, "area %q", area)
	}
}

// Each money figure is rounded from the unrounded intermediate values
// and the total is rounded from the unrounded sum. That means the total
// can differ from the sum of the already-rounded parts; this pins the
// chosen behavior.
func TestCalculateBreakdown_RoundingOrder(t *testing.T) {
	est := CalculateBreakdown("Crack Filling", "10.5", 7)

	// subtotal 73.5, overhead 7.35, gst 14.553, total 95.403
	assert.Equal(t, 74.0, est.Subtotal)
	assert.Equal(t, 7.0, est.Overhead)
	assert.Equal(t, 15.0, est.GST)
	assert.Equal(t, 95.0, est.Total)
	assert.NotEqual(t, est.Subtotal+est.Overhead+est.GST, est.Total)
}

func TestCalculateBreakdown_FractionalArea(t *testing.T) {
	est := CalculateBreakdown("Epoxy Flooring", " 120.5 ", 80)

	assert.Equal(t, 120.5, est.Area)
	assert.Equal(t, 9640.0, est.Subtotal)
}

func TestLookupRate_PrefersActiveService(t *testing.T) {
	db := setupEstimateDB(t)
	require.NoError(t, db.Create(&models.Service{
		Title: "PU Flooring", Slug: "pu-flooring", RatePerSqft: 100, IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&models.ServicePricing{
		ServiceName: "PU Flooring", PricePerSqft: 90, IsActive: true,
	}).Error)

	rate := NewEstimateService(db).LookupRate("PU Flooring")
	assert.Equal(t, 100.0, rate)
}

func TestLookupRate_FallsBackToPricingMirror(t *testing.T) {
	db := setupEstimateDB(t)
	require.NoError(t, db.Create(&models.Service{
		Title: "Waterproofing", Slug: "waterproofing", RatePerSqft: 60, IsActive: false,
	}).Error)
	require.NoError(t, db.Create(&models.ServicePricing{
		ServiceName: "Waterproofing", PricePerSqft: 65, IsActive: true,
	}).Error)

	rate := NewEstimateService(db).LookupRate("Waterproofing")
	assert.Equal(t, 65.0, rate)
}

func TestLookupRate_UnknownServiceUsesDefault(t *testing.T) {
	db := setupEstimateDB(t)

	rate := NewEstimateService(db).LookupRate("Nonexistent Service")
	assert.Equal(t, 80.0, rate)
}

func TestLookupRate_DefaultRateConfigurable(t *testing.T) {
	db := setupEstimateDB(t)
	t.Setenv("QUOTE_DEFAULT_RATE", "95")

	rate := NewEstimateService(db).LookupRate("Nonexistent Service")
	assert.Equal(t, 95.0, rate)
}

func TestEstimate_UnknownServiceNeverErrors(t *testing.T) {
	db := setupEstimateDB(t)

	est := NewEstimateService(db).Estimate("Mystery Coating", "not-a-number")
	assert.Equal(t, 0.0, est.Total)
	assert.Equal(t, 80.0, est.BasePricePerSqft)
}
