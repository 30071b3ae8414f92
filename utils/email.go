package utils

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
)

// SendSignupNotification emails the site operator when a new account is
// registered. It is a no-op unless both SENDGRID_API_KEY and ADMIN_EMAIL
// are configured; failures never affect the registration response.
func SendSignupNotification(username string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if apiKey == "" || adminEmail == "" {
		return nil
	}

	from := mail.NewEmail("Music Convertor", "donotreply@musicconvertor.app")
	subject := "New account registered"
	to := mail.NewEmail("", adminEmail)

	plainTextContent := fmt.Sprintf("A new account was just registered: %s", username)
	htmlContent := fmt.Sprintf("<strong>A new account was just registered: %s</strong>", username)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(apiKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}

	logrus.Infof("signup notification sent for user %s (status %d)", username, response.StatusCode)
	return nil
}
