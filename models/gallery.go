package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryImage struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ImageURL      string    `gorm:"not null" json:"imageUrl"`
	ImagePublicID string    `gorm:"not null" json:"imagePublicId"`
	Order         int       `gorm:"column:display_order;default:0" json:"order"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (g *GalleryImage) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return
}

type BeforeAfter struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	BeforeURL      string    `gorm:"not null" json:"beforeUrl"`
	BeforePublicID string    `gorm:"not null" json:"beforePublicId"`
	AfterURL       string    `gorm:"not null" json:"afterUrl"`
	AfterPublicID  string    `gorm:"not null" json:"afterPublicId"`
	Order          int       `gorm:"column:display_order;default:0" json:"order"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *BeforeAfter) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
