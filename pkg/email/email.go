// pkg/email/email.go
package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"reisemlak_backend/internal/model"
	"reisemlak_backend/pkg/logger"
)

const resendEndpoint = "https://api.resend.com/emails"

type EmailService struct {
	apiKey    string
	from      string
	notifyTo  string
	endpoint  string
	client    *http.Client
	templates *template.Template
}

type EmailData struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

// Template data structures
type OfferNotificationData struct {
	PropertyID      int64
	PropertyTitle   string
	PropertyAddress string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	Message         string
	OfferAmount     string
	CreatedAt       string
}

type OfferDigestItem struct {
	PropertyTitle string
	CustomerName  string
	CustomerPhone string
	OfferAmount   string
	CreatedAt     string
}

type OfferDigestData struct {
	Date        time.Time
	UnreadCount int
	Offers      []OfferDigestItem
}

func NewEmailService(apiKey, from, notifyTo string) (*EmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %w", err)
	}

	return &EmailService{
		apiKey:    apiKey,
		from:      from,
		notifyTo:  notifyTo,
		endpoint:  resendEndpoint,
		client:    &http.Client{Timeout: 10 * time.Second},
		templates: templates,
	}, nil
}

func (s *EmailService) sendTemplateEmail(to, subject, templateName string, data interface{}) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	emailData := EmailData{
		From:    s.from,
		To:      to,
		Subject: subject,
		Html:    body.String(),
	}

	jsonData, err := json.Marshal(emailData)
	if err != nil {
		return fmt.Errorf("error marshaling email data: %w", err)
	}

	logger.Debugf("Sending email to: %s subject: %s", to, subject)

	req, err := http.NewRequest(http.MethodPost, s.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %w", err)
	}

	logger.Debugf("Resend API response: Status: %d, Body: %s", resp.StatusCode, string(respBody))

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("resend API error: %s", string(respBody))
	}

	return nil
}

// SendOfferNotification yeni teklif geldiğinde ofise haber verir
func (s *EmailService) SendOfferNotification(offer model.Offer) error {
	data := OfferNotificationData{
		PropertyID:      offer.PropertyID,
		PropertyTitle:   offer.PropertyTitle,
		PropertyAddress: offer.PropertyAddress,
		CustomerName:    offer.CustomerName,
		CustomerPhone:   offer.CustomerPhone,
		CustomerEmail:   offer.CustomerEmail,
		Message:         offer.Message,
		OfferAmount:     FormatAmount(offer.OfferAmount, offer.Currency),
		CreatedAt:       offer.CreatedAt,
	}
	subject := fmt.Sprintf("Yeni teklif: %s", offer.PropertyTitle)
	return s.sendTemplateEmail(s.notifyTo, subject, "offer_notification.html", data)
}

// SendUnreadOfferDigest okunmamış tekliflerin günlük özeti
func (s *EmailService) SendUnreadOfferDigest(data OfferDigestData) error {
	subject := fmt.Sprintf("%d okunmamış teklif bekliyor", data.UnreadCount)
	return s.sendTemplateEmail(s.notifyTo, subject, "offer_digest.html", data)
}

// FormatAmount 2500000 TRY -> "2.500.000 TRY"; tutar yoksa boş döner
func FormatAmount(amount *int64, currency model.Currency) string {
	if amount == nil {
		return ""
	}
	if currency == "" {
		currency = model.CurrencyTRY
	}

	digits := fmt.Sprintf("%d", *amount)
	neg := false
	if digits[0] == '-' {
		neg = true
		digits = digits[1:]
	}

	var out []byte
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, digits[i])
	}
	if neg {
		out = append([]byte{'-'}, out...)
	}

	return string(out) + " " + string(currency)
}
