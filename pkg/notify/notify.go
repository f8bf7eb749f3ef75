package notify

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/safefoodhq/sfbb-compliance-service/pkg/common"
	"github.com/safefoodhq/sfbb-compliance-service/pkg/models"
)

type MailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

// LoadMailConfig reads SMTP settings from the environment. The second
// return value is false when mailing is not configured, which callers
// treat as "notifications disabled".
func LoadMailConfig() (MailConfig, bool) {
	host := os.Getenv(common.EnvKeySMTPHost)
	if host == "" {
		return MailConfig{}, false
	}
	port, err := strconv.Atoi(os.Getenv(common.EnvKeySMTPPort))
	if err != nil {
		return MailConfig{}, false
	}
	return MailConfig{
		SMTPHost:     host,
		SMTPPort:     port,
		SMTPSender:   os.Getenv(common.EnvKeySMTPSenderName),
		SMTPEmail:    os.Getenv(common.EnvKeySMTPEmail),
		SMTPPassword: os.Getenv(common.EnvKeySMTPPassword),
	}, true
}

// Mailer sends critical-alert digests over SMTP. It satisfies the
// engine's Notifier interface.
type Mailer struct {
	config MailConfig
}

func NewMailer(config MailConfig) *Mailer {
	return &Mailer{config: config}
}

func (m *Mailer) SendCriticalAlertDigest(toEmail string, alerts []models.Alert) error {
	logger := common.GetLoggerWith(common.LoggerNameNotifier)

	subject := fmt.Sprintf("Food safety: %d critical alert(s) need attention", len(alerts))

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", m.config.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/plain", DigestBody(alerts))

	dialer := gomail.NewDialer(
		m.config.SMTPHost,
		m.config.SMTPPort,
		m.config.SMTPEmail,
		m.config.SMTPPassword,
	)

	if err := dialer.DialAndSend(mailer); err != nil {
		return err
	}

	logger.Info("Critical alert digest sent",
		zap.String("to", toEmail), zap.Int("alerts", len(alerts)))
	return nil
}

// DigestBody renders the plain-text digest, one alert per paragraph.
func DigestBody(alerts []models.Alert) string {
	var b strings.Builder
	b.WriteString("The following critical issues were detected in your food safety records:\n")
	for _, alert := range alerts {
		b.WriteString(fmt.Sprintf("\n- %s\n  %s\n", alert.Title, alert.Message))
	}
	b.WriteString("\nLog in to review and acknowledge these alerts.\n")
	return b.String()
}
