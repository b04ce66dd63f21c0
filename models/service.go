package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Title              string     `gorm:"not null" json:"title"`
	Slug               string     `gorm:"uniqueIndex;not null" json:"slug"`
	ShortDescription   string     `gorm:"size:320" json:"shortDescription"`
	Description        string     `gorm:"type:text" json:"description"`
	Benefits           StringList `gorm:"type:jsonb" json:"benefits"`
	ProcessSteps       StringList `gorm:"type:jsonb" json:"processSteps"`
	Warranty           string     `json:"warranty"`
	RatePerSqft        float64    `gorm:"type:decimal(10,2)" json:"ratePerSqft"`
	CoverImageURL      string     `json:"coverImageUrl"`
	CoverImagePublicID string     `json:"coverImagePublicId"`
	IsActive           bool       `json:"isActive"`
	Order              int        `gorm:"column:display_order;default:0" json:"order"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
