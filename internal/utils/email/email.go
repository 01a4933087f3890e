package email

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Dan9191/budget-alerts/internal/config"
	"github.com/Dan9191/budget-alerts/internal/service"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending alert emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendAlert sends one email covering every alert in the result
func (s *Sender) SendAlert(result service.CheckResult) error {
	e := email.NewEmail()
	e.From = s.cfg.AlertEmailFrom
	e.To = []string{s.cfg.AlertEmailTo}
	e.Subject = "YNAB Alert: " + result.Summary()
	e.Text = []byte(buildBody(result))

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send alert to %s: %v", s.cfg.AlertEmailTo, err)
		return fmt.Errorf("failed to send alert: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", s.cfg.AlertEmailTo, e.Subject)
	return nil
}

// buildBody renders the plain-text alert body
func buildBody(result service.CheckResult) string {
	var b strings.Builder

	if len(result.Shortfalls) > 0 {
		b.WriteString("Credit Card Coverage Shortfalls\n")
		b.WriteString("-------------------------------\n")
		for _, sf := range result.Shortfalls {
			fmt.Fprintf(&b, "%s owes %s, but %s has only %s available",
				sf.CCName, formatAmount(sf.PaymentNeeded), sf.CheckingName, formatAmount(sf.AvailableChecking))
			if sf.CheckingMinimum > 0 {
				fmt.Fprintf(&b, " (balance %s minus %s minimum)",
					formatAmount(sf.CheckingBalance), formatAmount(sf.CheckingMinimum))
			}
			b.WriteString(".\n")
			if sf.Underfunded {
				fmt.Fprintf(&b, "  Payment category covers only %s of %s.\n",
					formatAmount(sf.PaymentAvailable), formatAmount(sf.PaymentNeeded))
			}
		}
		b.WriteString("\n")
	}

	if len(result.LowBalances) > 0 {
		b.WriteString("Low Balances\n")
		b.WriteString("------------\n")
		for _, lb := range result.LowBalances {
			fmt.Fprintf(&b, "%s is at %s, below its %s minimum.\n",
				lb.AccountName, formatAmount(lb.Balance), formatAmount(lb.Minimum))
		}
		b.WriteString("\n")
	}

	b.WriteString("Best regards,\nBudget Alerts")
	return b.String()
}

// formatAmount renders milliunits as dollars using integer math only,
// e.g. 2000000 -> "$2000.00", -1500 -> "-$1.50"
func formatAmount(milliunits int64) string {
	sign := ""
	if milliunits < 0 {
		sign = "-"
		milliunits = -milliunits
	}
	return fmt.Sprintf("%s$%d.%02d", sign, milliunits/1000, milliunits%1000/10)
}
