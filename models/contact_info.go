package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactInfo is a singleton document describing the business's public
// contact details.
type ContactInfo struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Phone          string    `gorm:"not null" json:"phone"`
	WhatsApp       string    `gorm:"not null" json:"whatsapp"`
	Email          string    `gorm:"not null" json:"email"`
	AlternateEmail string    `json:"alternateEmail"`
	Address        JSONB     `gorm:"type:jsonb" json:"address"`
	WorkingHours   JSONB     `gorm:"type:jsonb" json:"workingHours"`
	SocialMedia    JSONB     `gorm:"type:jsonb" json:"socialMedia"`
	GoogleMapsURL  string    `json:"googleMapsUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ci *ContactInfo) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return
}

// GetContactInfo returns the singleton record, creating it with
// business defaults on first read.
func GetContactInfo(db *gorm.DB) (ContactInfo, error) {
	var contactInfo ContactInfo
	err := db.First(&contactInfo).Error
	if err == nil {
		return contactInfo, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return contactInfo, err
	}

	contactInfo = ContactInfo{
		Phone:          "+91 73397 23912",
		WhatsApp:       "917339723912",
		Email:          "info@mkepoxy.com",
		AlternateEmail: "support@mkepoxy.com",
		Address: JSONB{
			"street":  "Your Business Address",
			"city":    "City",
			"state":   "State",
			"pincode": "PIN Code",
			"country": "India",
		},
		WorkingHours: JSONB{
			"weekdays": "Monday - Saturday: 9:00 AM - 7:00 PM",
			"weekend":  "Sunday: Closed",
		},
		SocialMedia: JSONB{
			"facebook":  "",
			"instagram": "",
			"linkedin":  "",
		},
	}
	if err := db.Create(&contactInfo).Error; err != nil {
		return contactInfo, err
	}
	return contactInfo, nil
}
