package models

// Budget represents a YNAB budget
type Budget struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
