package store

import (
	"context"
	"errors"

	"github.com/keyfold/authd/internal/authd/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. It exposes sub-repositories so callers depend on
// narrow interfaces rather than the whole driver.
type Store interface {
	Accounts() Accounts

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Accounts interface {
	// CreateAccount inserts a new account. The store assigns the id and
	// both timestamps. Returns ErrAlreadyExists if the email is taken;
	// the unique index is the authoritative guard, the service-level
	// existence check is only a fast path.
	CreateAccount(ctx context.Context, a domain.Account) (domain.Account, error)

	// GetAccountByEmail looks up by the stored (lowercased) email.
	// The lookup is case-sensitive; normalization happens above.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// GetAccountByID returns an account by id.
	GetAccountByID(ctx context.Context, id int64) (domain.Account, error)

	// UpdateAccount writes all mutable fields and bumps updated_at.
	UpdateAccount(ctx context.Context, a domain.Account) error
}
