package entity

import "time"

// User is the aggregate root for the user domain.
// Password holds a bcrypt hash, never the plaintext; it is zeroed before the
// entity leaves the application layer.
type User struct {
	ID        string
	Email     string
	Password  string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
