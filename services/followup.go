// services/followup.go
package services

import (
	"fmt"
	"log"
	"time"

	"mkepoxy-backend/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// FollowupService reminds the admin about quotation requests that have
// sat in the pending state for more than a day.
type FollowupService struct {
	db       *gorm.DB
	notifier *Notifier
}

func NewFollowupService(db *gorm.DB, notifier *Notifier) *FollowupService {
	return &FollowupService{db: db, notifier: notifier}
}

func (s *FollowupService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendPendingSummary)

	c.Start()
	log.Println("Quotation follow-up scheduler started")
}

func (s *FollowupService) SendPendingSummary() {
	log.Println("Checking for stale pending quotations...")

	cutoff := time.Now().Add(-24 * time.Hour)

	var pending []models.Quotation
	if err := s.db.Where("status = ? AND created_at < ?", "pending", cutoff).
		Order("created_at asc").Find(&pending).Error; err != nil {
		log.Printf("Failed to fetch pending quotations: %v", err)
		return
	}

	if len(pending) == 0 {
		return
	}

	body := fmt.Sprintf("%d quotation request(s) pending for over 24h:", len(pending))
	for i, q := range pending {
		if i >= 10 {
			body += fmt.Sprintf("\n...and %d more", len(pending)-i)
			break
		}
		body += fmt.Sprintf("\n- %s (%s), %s, %s sqft, since %s",
			q.Name, q.Phone, q.Service, q.Area, q.CreatedAt.Format("02 Jan"))
	}

	s.notifier.send(body)
}
