package models

import "time"

// User is the database row shape for a resolved household member.
type User struct {
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Image     *string   `db:"image"`
	CreatedAt time.Time `db:"created_at"`
}
