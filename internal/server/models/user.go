package models

import "time"

// User is an account record. TokenSecret is the per-user key material that
// signs this user's tokens; replacing it invalidates every token issued
// before the replacement.
type User struct {
	ID           int64
	UserName     string
	PasswordHash []byte
	TokenSecret  string
	CreatedAt    time.Time
}
