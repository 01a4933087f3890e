package service

import (
	"sort"

	"github.com/Dan9191/budget-alerts/internal/models"
)

// CheckBalances reports every account whose balance is strictly below
// its configured minimum. minimumBalances maps account names to
// minimums in whole dollars; entries for accounts absent from the
// snapshot are skipped. A balance exactly at the minimum is not a
// violation.
func CheckBalances(accounts []models.Account, minimumBalances map[string]int64) []models.LowBalance {
	accountsByName := make(map[string]models.Account, len(accounts))
	for _, a := range accounts {
		accountsByName[a.Name] = a
	}

	names := make([]string, 0, len(minimumBalances))
	for name := range minimumBalances {
		names = append(names, name)
	}
	sort.Strings(names)

	var lowBalances []models.LowBalance

	for _, name := range names {
		account, ok := accountsByName[name]
		if !ok {
			continue
		}

		minimum := minimumBalances[name] * 1000 // dollars to milliunits
		if account.Balance >= minimum {
			continue
		}

		lowBalances = append(lowBalances, models.LowBalance{
			AccountName: name,
			Balance:     account.Balance,
			Minimum:     minimum,
		})
	}

	return lowBalances
}
