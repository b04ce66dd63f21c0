// services/notifier.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"

	"mkepoxy-backend/models"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Notifier sends best-effort admin alerts over WhatsApp or SMS. It is
// never part of the transactional contract of the request that triggers
// it: failures are logged and swallowed.
type Notifier struct {
	client     *twilio.RestClient
	adminPhone string
}

func NewNotifier() *Notifier {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	adminPhone := os.Getenv("ADMIN_PHONE")

	if accountSid == "" || authToken == "" || adminPhone == "" {
		log.Println("Notifier disabled: Twilio credentials or ADMIN_PHONE not set")
		return &Notifier{}
	}

	return &Notifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		adminPhone: adminPhone,
	}
}

func (n *Notifier) Enabled() bool {
	return n.client != nil
}

// QuotationAlert notifies the admin of a new quotation request.
func (n *Notifier) QuotationAlert(q models.Quotation, est Estimate) {
	body := fmt.Sprintf(
		"New quotation request\nName: %s\nPhone: %s\nEmail: %s\nLocation: %s\nService: %s\nArea: %s sqft\nEstimate: %.0f %s\nImages: %d",
		q.Name, q.Phone, q.Email, q.Location, q.Service, q.Area, est.Total, est.Currency, len(q.Images))
	if q.Message != "" {
		body += "\nMessage: " + q.Message
	}
	n.send(body)
}

// ContactAlert notifies the admin of a contact form submission.
func (n *Notifier) ContactAlert(name, email, phone, subject, message string) {
	if subject == "" {
		subject = "New Inquiry"
	}
	body := fmt.Sprintf(
		"Contact form: %s\nName: %s\nEmail: %s\nPhone: %s\nMessage: %s",
		subject, name, email, phone, message)
	n.send(body)
}

func (n *Notifier) send(body string) {
	if !n.Enabled() {
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetBody(body)

	// Prefer WhatsApp when a WhatsApp sender is configured
	if from := os.Getenv("TWILIO_WHATSAPP_NUMBER"); from != "" && strings.HasPrefix(n.adminPhone, "+") {
		params.SetTo("whatsapp:" + n.adminPhone)
		params.SetFrom("whatsapp:" + from)
	} else {
		params.SetTo(n.adminPhone)
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send admin notification: %v", err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Admin notification sent, SID: %s", *resp.Sid)
	} else {
		log.Println("Admin notification sent, but no SID returned")
	}
}
