package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Quotation struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name     string     `gorm:"not null" json:"name"`
	Phone    string     `gorm:"not null" json:"phone"`
	Email    string     `gorm:"not null" json:"email"`
	Location string     `gorm:"not null" json:"location"`
	Service  string     `gorm:"not null" json:"service"`
	Area     string     `gorm:"not null" json:"area"` // stored as submitted
	Estimate float64    `gorm:"type:decimal(12,2)" json:"estimate"`
	Message  string     `gorm:"type:text" json:"message"`
	Images   StringList `gorm:"type:jsonb" json:"images"`
	Status   string     `gorm:"default:'pending'" json:"status"` // pending, contacted, quoted, completed

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (q *Quotation) BeforeCreate(tx *gorm.DB) (err error) {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return
}
