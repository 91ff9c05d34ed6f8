package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"

	"pgstay-backend/models"
)

// BuildBookingConfirmedEmail prepares the payment-confirmation email for a
// booking.
func BuildBookingConfirmedEmail(to, name, propertyName string, bookingID uint) *models.EmailNotification {
	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}
	name = safe(name)
	propertyName = safe(propertyName)
	if name == "" {
		name = "there"
	}

	plain := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Your payment was received and booking #%d for %s is confirmed.\n\n"+
			"If you did not make this booking, please contact support.\n",
		name, bookingID, propertyName,
	)

	html := fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Booking Confirmed</title>
<style>
body { background:#f5f7fb; font-family:Arial, Helvetica, sans-serif; color:#222; }
.container { max-width:640px; margin:20px auto; }
.card { background:#fff; border:1px solid #e6eef6; padding:24px; border-radius:8px; }
.ref { font-size:18px; font-weight:bold; color:#0b74ff; }
</style>
</head>
<body>
<div class="container">
<div class="card">
<p>Hi %s,</p>
<p>Your payment was received and booking <span class="ref">#%d</span> for <strong>%s</strong> is confirmed.</p>
<p>If you did not make this booking, please contact support.</p>
</div>
</div>
</body>
</html>`, name, bookingID, propertyName)

	return &models.EmailNotification{
		To:      to,
		Subject: fmt.Sprintf("Booking #%d confirmed", bookingID),
		Message: plain,
		HTML:    html,
	}
}

// SendEmailNotification delivers an email over SMTP. When SMTP is not
// configured it logs a mock send instead, so local development works
// without a relay.
func SendEmailNotification(n *models.EmailNotification) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := os.Getenv("SMTP_FROM_NAME")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] to:%s subject:%s", n.To, n.Subject)
		return nil
	}

	if fromName == "" {
		fromName = "PGStay"
	}

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)

	boundary := "----=_PGSTAY_EMAIL_BOUNDARY"

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", n.To))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", n.Subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n", boundary))
	sb.WriteString("\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	sb.WriteString(n.Message)
	sb.WriteString("\r\n")

	if n.HTML != "" {
		sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
		sb.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n\r\n")
		sb.WriteString(n.HTML)
		sb.WriteString("\r\n")
	}

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	return smtp.SendMail(addr, auth, smtpUser, []string{n.To}, []byte(sb.String()))
}
