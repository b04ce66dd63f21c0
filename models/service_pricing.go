package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServicePricing is a denormalized mirror of a service's name and rate,
// kept for the legacy admin pricing screen. Synchronized best-effort on
// service create/update, not transactionally.
type ServicePricing struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceName  string    `gorm:"uniqueIndex;not null" json:"serviceName"`
	PricePerSqft float64   `gorm:"type:decimal(10,2);not null" json:"pricePerSqft"`
	IsActive     bool      `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *ServicePricing) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
