package ynab

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Dan9191/budget-alerts/internal/config"
	"github.com/Dan9191/budget-alerts/internal/models"
	"github.com/sirupsen/logrus"
)

// Client handles integration with the YNAB API
type Client struct {
	url      string
	token    string
	budgetID string
	client   *http.Client
	log      *logrus.Logger
}

// NewClient initializes a new YNAB client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url:      cfg.YNABURL,
		token:    cfg.YNABToken,
		budgetID: cfg.YNABBudgetID,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

type budgetsResponse struct {
	Data struct {
		Budgets []models.Budget `json:"budgets"`
	} `json:"data"`
}

type accountsResponse struct {
	Data struct {
		Accounts []models.Account `json:"accounts"`
	} `json:"data"`
}

type categoryGroup struct {
	Name       string `json:"name"`
	Hidden     bool   `json:"hidden"`
	Deleted    bool   `json:"deleted"`
	Categories []struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Balance int64  `json:"balance"`
		Hidden  bool   `json:"hidden"`
		Deleted bool   `json:"deleted"`
	} `json:"categories"`
}

type categoriesResponse struct {
	Data struct {
		CategoryGroups []categoryGroup `json:"category_groups"`
	} `json:"data"`
}

type errorResponse struct {
	Error struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Detail string `json:"detail"`
	} `json:"error"`
}

// Budgets retrieves all budgets visible to the access token
func (c *Client) Budgets(ctx context.Context) ([]models.Budget, error) {
	var resp budgetsResponse
	if err := c.get(ctx, "/budgets", &resp); err != nil {
		return nil, err
	}
	return resp.Data.Budgets, nil
}

// Accounts retrieves the budget's accounts, excluding closed and
// deleted ones
func (c *Client) Accounts(ctx context.Context) ([]models.Account, error) {
	var resp accountsResponse
	path := fmt.Sprintf("/budgets/%s/accounts", c.budgetID)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}

	accounts := make([]models.Account, 0, len(resp.Data.Accounts))
	for _, a := range resp.Data.Accounts {
		if a.Closed || a.Deleted {
			continue
		}
		accounts = append(accounts, a)
	}

	c.log.Debugf("Fetched %d open accounts from YNAB", len(accounts))
	return accounts, nil
}

// Categories retrieves the budget's categories flattened across
// groups, excluding hidden and deleted ones. Each category carries its
// group's name so callers can identify credit card payment categories.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var resp categoriesResponse
	path := fmt.Sprintf("/budgets/%s/categories", c.budgetID)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}

	var categories []models.Category
	for _, group := range resp.Data.CategoryGroups {
		if group.Hidden || group.Deleted {
			continue
		}
		for _, cat := range group.Categories {
			if cat.Hidden || cat.Deleted {
				continue
			}
			categories = append(categories, models.Category{
				ID:                cat.ID,
				Name:              cat.Name,
				CategoryGroupName: group.Name,
				Balance:           cat.Balance,
			})
		}
	}

	c.log.Debugf("Fetched %d active categories from YNAB", len(categories))
	return categories, nil
}

// get performs an authenticated GET request and decodes the response
// into out
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Name != "" {
			return fmt.Errorf("ynab api error %s: %s (%s)", apiErr.Error.ID, apiErr.Error.Name, apiErr.Error.Detail)
		}
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}
