package utils

import (
	"log"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"
)

// SendEmail envoie un e-mail HTML via SMTP. Les appelants l'invoquent en
// best-effort (goroutine) : un échec d'envoi ne bloque jamais la requête.
func SendEmail(to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = "noreply@eshop.local"
	}

	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		port = p
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}

// AdminEmail retourne l'adresse de notification des admins.
func AdminEmail() string {
	admin := os.Getenv("ADMIN_EMAIL")
	if admin == "" {
		admin = "admin@eshop.local"
	}
	return admin
}

// SupportEmail retourne l'adresse du support (formulaire de contact).
func SupportEmail() string {
	support := os.Getenv("SUPPORT_EMAIL")
	if support == "" {
		support = "support@eshop.local"
	}
	return support
}
