package domain

import "time"

// Account is a registered identity. PasswordHash always holds an
// argon2id encoded hash, never plaintext. Email is stored lowercased
// and is unique across all accounts.
type Account struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
