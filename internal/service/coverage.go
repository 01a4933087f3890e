package service

import (
	"sort"

	"github.com/Dan9191/budget-alerts/internal/models"
)

// ccPaymentGroup is the group YNAB auto-creates credit card payment
// categories under; each category in it is named after its card's
// account.
const ccPaymentGroup = "Credit Card Payments"

// CheckCoverage evaluates each credit card -> checking mapping and
// reports the cards whose checking account, after reserving its
// configured minimum, cannot cover the card's outstanding balance.
//
// accountMappings maps credit card account names to checking account
// ids; minimumBalances maps checking account names to minimums in
// whole dollars. Mappings referencing accounts absent from the
// snapshot are skipped: thresholds are expected to lag the live
// budget. Account names are assumed unique within a snapshot.
func CheckCoverage(accounts []models.Account, categories []models.Category, accountMappings map[string]string, minimumBalances map[string]int64) []models.Shortfall {
	accountsByID := make(map[string]models.Account, len(accounts))
	accountsByName := make(map[string]models.Account, len(accounts))
	for _, a := range accounts {
		accountsByID[a.ID] = a
		accountsByName[a.Name] = a
	}

	// First category in input order wins on duplicate names, matching
	// upstream behavior.
	ccPaymentsByName := make(map[string]models.Category)
	for _, c := range categories {
		if c.CategoryGroupName != ccPaymentGroup {
			continue
		}
		if _, ok := ccPaymentsByName[c.Name]; !ok {
			ccPaymentsByName[c.Name] = c
		}
	}

	ccNames := make([]string, 0, len(accountMappings))
	for ccName := range accountMappings {
		ccNames = append(ccNames, ccName)
	}
	sort.Strings(ccNames)

	var shortfalls []models.Shortfall

	for _, ccName := range ccNames {
		ccAccount, ok := accountsByName[ccName]
		if !ok {
			continue
		}

		checkingAccount, ok := accountsByID[accountMappings[ccName]]
		if !ok {
			continue
		}

		paymentNeeded := abs(ccAccount.Balance)
		var paymentAvailable int64
		if paymentCategory, ok := ccPaymentsByName[ccName]; ok {
			paymentAvailable = paymentCategory.Balance
		}

		minimum := minimumBalances[checkingAccount.Name] * 1000 // dollars to milliunits
		availableChecking := checkingAccount.Balance - minimum

		underfunded := paymentNeeded > paymentAvailable
		uncoverable := paymentNeeded > availableChecking

		if !uncoverable {
			continue
		}

		shortfalls = append(shortfalls, models.Shortfall{
			CCName:            ccName,
			PaymentNeeded:     paymentNeeded,
			PaymentAvailable:  paymentAvailable,
			CheckingName:      checkingAccount.Name,
			CheckingBalance:   checkingAccount.Balance,
			CheckingMinimum:   minimum,
			AvailableChecking: availableChecking,
			Underfunded:       underfunded,
			Uncoverable:       uncoverable,
		})
	}

	return shortfalls
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
