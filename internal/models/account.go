package models

// Account represents a YNAB account. Balance is in milliunits
// (1/1000 of a dollar); negative balances mean money owed.
type Account struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Balance int64  `json:"balance"`
	Closed  bool   `json:"closed"`
	Deleted bool   `json:"deleted"`
}
