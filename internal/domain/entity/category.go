package entity

import "time"

// SeedCategoryNames are the categories inserted when the categories table is created.
var SeedCategoryNames = []string{"Fashion", "Electronics", "Food", "Sports"}

// Category is a named classification tag for offers.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
