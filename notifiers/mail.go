package notifiers

import (
	"bytes"
	"embed"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"text/template"

	"github.com/NGanna24/mi-gban-sub000/data"
	"github.com/NGanna24/mi-gban-sub000/models"
)

//go:embed templates/listing_enquiry.html
var emailTemplates embed.FS

var enquiryTemplates = template.Must(template.New("emails").ParseFS(emailTemplates, "templates/*.html"))

type Mailer struct {
	smtpHost string
	smtpPort string
	from     string
	password string
}

func NewMailer(smtpHost, smtpPort, from, password string) *Mailer {
	return &Mailer{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		from:     from,
		password: password,
	}
}

// ListingEnquiryEmail renders the message a user sends to the agency that
// owns a listing.
func (h *Mailer) ListingEnquiryEmail(to string, listing data.Listing, sender data.User, message string) (models.Email, error) {
	body := strings.TrimSpace(message)
	if len(body) > 2000 {
		body = body[:2000] + "..."
	}
	body = strings.ReplaceAll(body, "\n", "<br>")

	var buf bytes.Buffer
	tmplData := struct {
		ListingTitle string
		ListingCity  string
		SenderName   string
		SenderEmail  string
		Message      string
	}{
		ListingTitle: listing.Title,
		ListingCity:  listing.City,
		SenderName:   sender.Name,
		SenderEmail:  sender.Email,
		Message:      body,
	}
	if err := enquiryTemplates.ExecuteTemplate(&buf, "listing_enquiry.html", tmplData); err != nil {
		return models.Email{}, fmt.Errorf("render listing enquiry template: %w", err)
	}

	return models.Email{
		To:      to,
		Subject: fmt.Sprintf("Mi Gban: nouvelle demande pour \"%s\"", listing.Title),
		Body:    buf.String(),
	}, nil
}

func (h *Mailer) Send(mail models.Email) error {
	message := fmt.Sprintf(`From: Mi Gban <%s>
To: %s
Subject: %s
MIME-Version: 1.0
Content-Type: text/html; charset=UTF-8

%s`, h.from, mail.To, mail.Subject, mail.Body)

	auth := smtp.PlainAuth("", h.from, h.password, h.smtpHost)
	addr := fmt.Sprintf("%s:%s", h.smtpHost, h.smtpPort)
	err := smtp.SendMail(addr, auth, h.from, []string{mail.To}, []byte(message))
	if err != nil {
		slog.Error("Failed to send email", "error", err)
		return err
	}

	slog.Info("email sent", "recipient", mail.To, "subject", mail.Subject)
	return nil
}
