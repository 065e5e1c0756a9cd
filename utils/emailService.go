package utils

import (
	"fmt"
	"lms/config"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendEmail delivers one HTML email through SendGrid. Failures are logged,
// never propagated: notification mail must not fail the triggering request.
func sendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendgridApiKey == "" {
		log.Printf("[EMAIL] SendGrid not configured, skipping %q to %s", subject, toEmail)
		return nil
	}

	from := mail.NewEmail(config.AppConfig.EmailFromName, config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("[EMAIL] Error sending %q to %s: %v", subject, toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("[EMAIL] SendGrid rejected %q to %s: %d %s", subject, toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}

	log.Printf("[EMAIL] Sent %q to %s", subject, toEmail)
	return nil
}

// SendEnrollmentEmail sends an email notification when a user enrolls in a course
func SendEnrollmentEmail(email, userName, courseName string) error {
	subject := "Course Enrollment Confirmation"
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Welcome aboard, %s!</h2>
					<p style="font-size: 16px; color: #555555;">You are now enrolled in <b>%s</b>.</p>
					<p style="font-size: 14px; color: #999999;">Head to your dashboard to start learning.</p>
				</div>
			</body>
		</html>
	`, userName, courseName)

	return sendEmail(email, userName, subject, body)
}

// SendCertificateEmail notifies a user that their certificate was issued
func SendCertificateEmail(email, userName, courseName, certificateNumber string) error {
	subject := "Your Course Certificate is Ready"
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Congratulations, %s!</h2>
					<p style="font-size: 16px; color: #555555;">You completed <b>%s</b>.</p>
					<p style="font-size: 16px; color: #555555;">Certificate number: <b>%s</b></p>
					<p style="font-size: 14px; color: #999999;">Download it from your certificates page any time.</p>
				</div>
			</body>
		</html>
	`, userName, courseName, certificateNumber)

	return sendEmail(email, userName, subject, body)
}

// SendApplicationDecisionEmail notifies an applicant about the review outcome
func SendApplicationDecisionEmail(email, userName, status, response string) error {
	subject := "Instructor Application Update"
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Hello %s</h2>
					<p style="font-size: 16px; color: #555555;">Your instructor application was <b>%s</b>.</p>
					<p style="font-size: 14px; color: #777777;">%s</p>
				</div>
			</body>
		</html>
	`, userName, status, response)

	return sendEmail(email, userName, subject, body)
}

// SendAppealDecisionEmail notifies a user about their suspension appeal outcome
func SendAppealDecisionEmail(email, userName, status, response string) error {
	subject := "Account Appeal Update"
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Hello %s</h2>
					<p style="font-size: 16px; color: #555555;">Your account appeal was <b>%s</b>.</p>
					<p style="font-size: 14px; color: #777777;">%s</p>
				</div>
			</body>
		</html>
	`, userName, status, response)

	return sendEmail(email, userName, subject, body)
}
