package email

import (
	"fmt"
	"log"
	"os"

	"github.com/resend/resend-go/v2"
)

type EmailService struct {
	from   string
	client *resend.Client
}

type EmailSender interface {
	SendEmail(to []string, subject, htmlContent string) error
}

func NewEmailService() *EmailService {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Println("RESEND_API_KEY not set, email sending disabled")
		return nil
	}

	emailFrom := os.Getenv("EMAIL_FROM")
	if emailFrom == "" {
		log.Println("EMAIL_FROM not set, email sending disabled")
		return nil
	}

	client := resend.NewClient(apiKey)
	return &EmailService{
		from:   emailFrom,
		client: client,
	}
}

func (es *EmailService) SendEmail(to []string, subject, htmlContent string) error {
	params := &resend.SendEmailRequest{
		From:    es.from,
		To:      to,
		Subject: subject,
		Html:    htmlContent,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		log.Printf("Failed to send email to %v: %v", to, err)
		return err
	}

	return nil
}

func WelcomeEmailHTML(firstName string) string {
	return fmt.Sprintf(`<h1>Welcome to FitStack, %s!</h1>
<p>Your account is ready. Log your first workout today to start your streak.</p>`, firstName)
}

func AchievementEmailHTML(firstName, achievementName string) string {
	return fmt.Sprintf(`<h1>Nice work, %s!</h1>
<p>You just unlocked the <strong>%s</strong> achievement. Keep it going.</p>`, firstName, achievementName)
}
