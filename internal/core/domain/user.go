package domain

import "time"

// User is a resolved household member identity. Users are created lazily the
// first time a member performs a mutation and are never deleted by the
// application.
type User struct {
	UserID    string    `json:"userID"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Image     *string   `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
