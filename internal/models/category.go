package models

// Category represents a YNAB budget category. YNAB auto-creates one
// category per credit card in the "Credit Card Payments" group, named
// after the card's account.
type Category struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	CategoryGroupName string `json:"category_group_name"`
	Balance           int64  `json:"balance"`
	Hidden            bool   `json:"hidden"`
	Deleted           bool   `json:"deleted"`
}
