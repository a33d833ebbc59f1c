package models

import "time"

// Category is the database row shape for a spending/income bucket.
type Category struct {
	CategoryID string    `db:"category_id"`
	Name       string    `db:"name"`
	Emoji      *string   `db:"emoji"`
	IsDefault  bool      `db:"is_default"`
	CreatedBy  string    `db:"created_by"`
	CreatedAt  time.Time `db:"created_at"`
}
