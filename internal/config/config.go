package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Thresholds holds the user-configured alert rules. AccountMappings maps
// a credit card account name to the id of the checking account that pays
// it. MinimumBalances maps an account name to its minimum balance in
// whole dollars. Entries referencing accounts absent from the live
// budget are skipped during evaluation, not rejected here.
type Thresholds struct {
	AccountMappings map[string]string `yaml:"account_mappings" json:"account_mappings"`
	MinimumBalances map[string]int64  `yaml:"minimum_balances" json:"minimum_balances"`
}

// Config holds application configuration
type Config struct {
	Port           string
	LogLevel       string
	YNABURL        string
	YNABToken      string
	YNABBudgetID   string
	AlertEmailTo   string
	AlertEmailFrom string
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	Thresholds     Thresholds
}

// NewConfig loads configuration from environment variables. Threshold
// tables come from the YAML file named by THRESHOLDS_FILE when it
// exists, otherwise from the YNAB_CONFIG env var as JSON.
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		YNABURL:        getEnv("YNAB_URL", "https://api.ynab.com/v1"),
		YNABToken:      getEnv("YNAB_ACCESS_TOKEN", ""),
		YNABBudgetID:   getEnv("YNAB_BUDGET_ID", "last-used"),
		AlertEmailTo:   getEnv("ALERT_EMAIL_TO", ""),
		AlertEmailFrom: getEnv("ALERT_EMAIL_FROM", ""),
		SMTPHost:       getEnv("SMTP_HOST", "localhost"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
	}

	if cfg.YNABToken == "" {
		return nil, fmt.Errorf("YNAB_ACCESS_TOKEN is required")
	}
	if cfg.AlertEmailTo == "" {
		return nil, fmt.Errorf("ALERT_EMAIL_TO is required")
	}
	if cfg.AlertEmailFrom == "" {
		return nil, fmt.Errorf("ALERT_EMAIL_FROM is required")
	}

	thresholds, err := loadThresholds(getEnv("THRESHOLDS_FILE", "ynab.local.yml"))
	if err != nil {
		return nil, err
	}
	cfg.Thresholds = thresholds

	return cfg, nil
}

// loadThresholds reads the threshold tables from a local YAML file if
// present, falling back to the YNAB_CONFIG JSON env var. Missing both
// yields empty tables, which is valid (every check is a no-op).
func loadThresholds(path string) (Thresholds, error) {
	var t Thresholds

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &t); err != nil {
			return t, fmt.Errorf("failed to parse thresholds file %s: %w", path, err)
		}
		return t, nil
	}

	if raw, exists := os.LookupEnv("YNAB_CONFIG"); exists && raw != "" {
		if err := json.Unmarshal([]byte(raw), &t); err != nil {
			return t, fmt.Errorf("failed to parse YNAB_CONFIG: %w", err)
		}
	}

	return t, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
