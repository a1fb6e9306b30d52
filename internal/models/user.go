package models

import "time"

// User represents a registered account. The password hash never leaves the
// server; `json:"-"` keeps it out of every response shape.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
