package models

import "time"

// User is the full write model, including the bcrypt hash. Transports must
// never serialize PasswordHash; the service hands out projections instead.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
