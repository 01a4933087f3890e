package models

// Shortfall reports a checking account that cannot cover a linked
// credit card's outstanding balance after reserving its configured
// minimum. All amounts are milliunits.
type Shortfall struct {
	CCName            string `json:"cc_name"`
	PaymentNeeded     int64  `json:"payment_needed"`
	PaymentAvailable  int64  `json:"payment_available"`
	CheckingName      string `json:"checking_name"`
	CheckingBalance   int64  `json:"checking_balance"`
	CheckingMinimum   int64  `json:"checking_minimum"`
	AvailableChecking int64  `json:"available_checking"`
	Underfunded       bool   `json:"underfunded"`
	Uncoverable       bool   `json:"uncoverable"`
}

// LowBalance reports an account whose balance fell below its
// configured minimum. Amounts are milliunits.
type LowBalance struct {
	AccountName string `json:"account_name"`
	Balance     int64  `json:"balance"`
	Minimum     int64  `json:"minimum"`
}
