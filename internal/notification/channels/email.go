// Package channels - kênh gửi email qua SMTP.
package channels

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// EmailSender cấu hình SMTP của một người gửi.
type EmailSender struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// SendHTML gửi một email HTML tới danh sách người nhận.
func (s *EmailSender) SendHTML(recipients []string, subject, htmlContent string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", s.FromName, s.FromEmail))
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlContent)

	dialer := gomail.NewDialer(s.SMTPHost, s.SMTPPort, s.SMTPUsername, s.SMTPPassword)
	return dialer.DialAndSend(msg)
}
