package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dan9191/budget-alerts/internal/config"
	"github.com/Dan9191/budget-alerts/internal/models"
	"github.com/sirupsen/logrus"
)

// SnapshotProvider supplies the accounts and categories for one
// evaluation run, already filtered to active records
type SnapshotProvider interface {
	Accounts(ctx context.Context) ([]models.Account, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

// AlertSender delivers a non-empty check result to the user
type AlertSender interface {
	SendAlert(result CheckResult) error
}

// CheckResult holds the alerts produced by one evaluation run
type CheckResult struct {
	Shortfalls  []models.Shortfall  `json:"shortfalls"`
	LowBalances []models.LowBalance `json:"low_balances"`
}

// Empty reports whether the run produced no alerts
func (r CheckResult) Empty() bool {
	return len(r.Shortfalls) == 0 && len(r.LowBalances) == 0
}

// Summary renders the one-line alert summary, e.g.
// "2 shortfalls, 1 low balance". Empty clauses are omitted.
func (r CheckResult) Summary() string {
	var parts []string
	if n := len(r.Shortfalls); n > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", n, pluralize(n, "shortfall", "shortfalls")))
	}
	if n := len(r.LowBalances); n > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", n, pluralize(n, "low balance", "low balances")))
	}
	return strings.Join(parts, ", ")
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// Service handles business logic
type Service struct {
	snapshots  SnapshotProvider
	mailer     AlertSender
	thresholds config.Thresholds
	log        *logrus.Logger
}

// NewService initializes a new service
func NewService(snapshots SnapshotProvider, mailer AlertSender, thresholds config.Thresholds, log *logrus.Logger) *Service {
	return &Service{snapshots: snapshots, mailer: mailer, thresholds: thresholds, log: log}
}

// Run fetches a fresh snapshot, evaluates both checks, and emails an
// alert when anything tripped. Runs are independent; no state carries
// across invocations.
func (s *Service) Run(ctx context.Context) (CheckResult, error) {
	accounts, err := s.snapshots.Accounts(ctx)
	if err != nil {
		return CheckResult{}, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	categories, err := s.snapshots.Categories(ctx)
	if err != nil {
		return CheckResult{}, fmt.Errorf("failed to fetch categories: %w", err)
	}

	result := CheckResult{
		Shortfalls:  CheckCoverage(accounts, categories, s.thresholds.AccountMappings, s.thresholds.MinimumBalances),
		LowBalances: CheckBalances(accounts, s.thresholds.MinimumBalances),
	}

	if result.Empty() {
		s.log.Infof("Check passed: %d accounts, %d categories, no alerts", len(accounts), len(categories))
		return result, nil
	}

	if err := s.mailer.SendAlert(result); err != nil {
		return result, fmt.Errorf("failed to send alert: %w", err)
	}

	s.log.Infof("Alert sent: %s", result.Summary())
	return result, nil
}
