package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"studysimplifier/internal/models"
)

// Mail is a single outbound message.
type Mail struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type EmailService interface {
	Send(m Mail) error
	SendVerificationEmail(user *models.User, code string) error
	SendTaskDueEmail(user *models.User, todo *models.Todo) error
	SendNewFeatureEmail(user *models.User, title, description string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	from        string
	frontendURL string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail, frontendURL string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer:      dialer,
		from:        fromEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) Send(m Mail) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", s.from, "Study Simplifier")
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/plain", m.Text)
	if m.HTML != "" {
		msg.AddAlternative("text/html", m.HTML)
	}

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email to %s: %w", m.To, err)
	}
	return nil
}

func (s *emailService) SendVerificationEmail(user *models.User, code string) error {
	text := fmt.Sprintf(`Hallo %s,

Vielen Dank für deine Registrierung bei Study Simplifier!

Dein Bestätigungscode: %s

Bitte gib diesen Code auf der Bestätigungsseite ein, um deine E-Mail-Adresse zu verifizieren.

Dieser Code ist 1 Stunde gültig.

Viele Grüße,
Dein Study Simplifier Team`, user.FirstName, code)

	html := fmt.Sprintf(`
		<h2>E-Mail bestätigen</h2>
		<p>Hallo %s,</p>
		<p>Vielen Dank für deine Registrierung bei Study Simplifier!</p>
		<div style="margin: 25px 0; text-align: center; background-color: #f0f0f0; padding: 15px; border-radius: 4px; font-size: 24px; letter-spacing: 2px;">
			<strong>%s</strong>
		</div>
		<p>Bitte gib diesen Code auf der Bestätigungsseite ein, um deine E-Mail-Adresse zu verifizieren.</p>
		<p>Dieser Code ist <strong>1 Stunde</strong> gültig.</p>
		<p>Viele Grüße,<br>Dein Study Simplifier Team</p>
	`, user.FirstName, code)

	return s.Send(Mail{
		To:      user.Email,
		Subject: "Bestätige deine E-Mail-Adresse für Study Simplifier",
		Text:    text,
		HTML:    html,
	})
}

func (s *emailService) SendTaskDueEmail(user *models.User, todo *models.Todo) error {
	due := ""
	if todo.DueDate != nil {
		due = todo.DueDate.Format("02.01.2006")
	}

	text := fmt.Sprintf(`Hallo %s,

Deine Aufgabe "%s" ist am %s fällig.

Melde dich in Study Simplifier an, um die Aufgabe zu bearbeiten:
%s/tasks

Viele Grüße,
Dein Study Simplifier Team`, user.FirstName, todo.Title, due, s.frontendURL)

	html := fmt.Sprintf(`
		<h2>Aufgabenerinnerung</h2>
		<p>Hallo %s,</p>
		<p>Deine Aufgabe <strong>"%s"</strong> ist am <strong>%s</strong> fällig.</p>
		<p><a href="%s/tasks">Aufgabe ansehen</a></p>
		<p>Viele Grüße,<br>Dein Study Simplifier Team</p>
		<p style="color: #666; font-size: 12px;">Um Benachrichtigungen zu deaktivieren, gehe zu <a href="%s/settings">Einstellungen</a>.</p>
	`, user.FirstName, todo.Title, due, s.frontendURL, s.frontendURL)

	return s.Send(Mail{
		To:      user.Email,
		Subject: fmt.Sprintf("Erinnerung: Aufgabe %q ist fällig", todo.Title),
		Text:    text,
		HTML:    html,
	})
}

func (s *emailService) SendNewFeatureEmail(user *models.User, title, description string) error {
	text := fmt.Sprintf(`Hallo %s,

Study Simplifier hat eine neue Funktion: %s

%s

Melde dich an, um sie auszuprobieren:
%s

Viele Grüße,
Dein Study Simplifier Team`, user.FirstName, title, description, s.frontendURL)

	html := fmt.Sprintf(`
		<h2>Neue Funktion</h2>
		<p>Hallo %s,</p>
		<p>Study Simplifier hat eine neue Funktion: <strong>%s</strong></p>
		<p>%s</p>
		<p><a href="%s">Jetzt ausprobieren</a></p>
		<p>Viele Grüße,<br>Dein Study Simplifier Team</p>
		<p style="color: #666; font-size: 12px;">Um Benachrichtigungen zu deaktivieren, gehe zu <a href="%s/settings">Einstellungen</a>.</p>
	`, user.FirstName, title, description, s.frontendURL, s.frontendURL)

	return s.Send(Mail{
		To:      user.Email,
		Subject: "Neue Funktion: " + title,
		Text:    text,
		HTML:    html,
	})
}
