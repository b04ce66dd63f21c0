package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Rating        int       `gorm:"not null" json:"rating"` // 1-5
	Text          string    `gorm:"type:text;not null" json:"text"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Verified      bool      `json:"verified"`
	Source        string    `gorm:"default:'website'" json:"source"` // google, website, manual
	ImageURL      string    `json:"imageUrl"`
	ImagePublicID string    `json:"imagePublicId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
