package users

import "time"

// User is one record of the credential store. Usernames are case-sensitive
// unique; PasswordHash is a bcrypt digest, never the raw password.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
