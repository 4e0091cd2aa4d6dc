package models

import (
	"time"

	"github.com/google/uuid"
)

// Role constants
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account authenticated with email and password.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`    // user, admin
	Status       string    `json:"status"`  // Pending, Approved, Rejected
	Remarks      string    `json:"remarks"` // moderation remarks on the account
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin returns true if the user can moderate places and accounts.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
