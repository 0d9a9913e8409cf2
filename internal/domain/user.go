package domain

import "time"

// User is the domain model for a registered account. PasswordHash never
// leaves the service layer.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
