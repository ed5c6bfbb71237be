package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/keyfold/authd/internal/authd/domain"
	"github.com/keyfold/authd/internal/authd/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	require.NoError(t, st.ApplyMigrations())
}

func TestCreateAccount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("assigns id and timestamps", func(t *testing.T) {
		t.Parallel()
		repo := newTestStore(t).Accounts()

		before := time.Now().UTC().Add(-time.Second)
		created, err := repo.CreateAccount(ctx, domain.Account{
			Name:         "Alice",
			Email:        "alice@x.com",
			PasswordHash: "hash",
		})
		require.NoError(t, err)
		require.NotZero(t, created.ID)
		require.False(t, created.Active)
		require.True(t, created.CreatedAt.After(before))
		require.Equal(t, created.CreatedAt, created.UpdatedAt)
	})

	t.Run("second insert gets a new id", func(t *testing.T) {
		t.Parallel()
		repo := newTestStore(t).Accounts()

		first, err := repo.CreateAccount(ctx, domain.Account{
			Name: "A", Email: "a@x.com", PasswordHash: "h",
		})
		require.NoError(t, err)

		second, err := repo.CreateAccount(ctx, domain.Account{
			Name: "B", Email: "b@x.com", PasswordHash: "h",
		})
		require.NoError(t, err)
		require.Greater(t, second.ID, first.ID)
	})

	t.Run("duplicate email violates the unique index", func(t *testing.T) {
		t.Parallel()
		repo := newTestStore(t).Accounts()

		_, err := repo.CreateAccount(ctx, domain.Account{
			Name: "A", Email: "dup@x.com", PasswordHash: "h",
		})
		require.NoError(t, err)

		_, err = repo.CreateAccount(ctx, domain.Account{
			Name: "B", Email: "dup@x.com", PasswordHash: "h2",
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestGetAccount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("by email round-trips all fields", func(t *testing.T) {
		t.Parallel()
		repo := newTestStore(t).Accounts()

		created, err := repo.CreateAccount(ctx, domain.Account{
			Name:         "Alice",
			Email:        "alice@x.com",
			PasswordHash: "argon2-hash",
		})
		require.NoError(t, err)

		got, err := repo.GetAccountByEmail(ctx, "alice@x.com")
		require.NoError(t, err)
		require.Equal(t, created.ID, got.ID)
		require.Equal(t, "Alice", got.Name)
		require.Equal(t, "argon2-hash", got.PasswordHash)
		require.False(t, got.Active)
	})

	t.Run("email lookup is an exact match", func(t *testing.T) {
		t.Parallel()
		repo := newTestStore(t).Accounts()

		// Callers normalize casing before the store; the store itself
		// stays byte-exact.
		_, err := repo.CreateAccount(ctx, domain.Account{
			Name: "Alice", Email: "alice@x.com", PasswordHash: "h",
		})
		require.NoError(t, err)

		_, err = repo.GetAccountByEmail(ctx, "Alice@X.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("by id", func(t *testing.T) {
		t.Parallel()
		repo := newTestStore(t).Accounts()

		created, err := repo.CreateAccount(ctx, domain.Account{
			Name: "Alice", Email: "alice@x.com", PasswordHash: "h",
		})
		require.NoError(t, err)

		got, err := repo.GetAccountByID(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, created.Email, got.Email)
	})

	t.Run("missing rows map to ErrNotFound", func(t *testing.T) {
		t.Parallel()
		repo := newTestStore(t).Accounts()

		_, err := repo.GetAccountByEmail(ctx, "nobody@x.com")
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = repo.GetAccountByID(ctx, 404)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestUpdateAccount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("persists changed fields and bumps updated_at", func(t *testing.T) {
		t.Parallel()
		repo := newTestStore(t).Accounts()

		created, err := repo.CreateAccount(ctx, domain.Account{
			Name: "Alice", Email: "alice@x.com", PasswordHash: "h",
		})
		require.NoError(t, err)

		created.Active = true
		require.NoError(t, repo.UpdateAccount(ctx, created))

		got, err := repo.GetAccountByID(ctx, created.ID)
		require.NoError(t, err)
		require.True(t, got.Active)
		require.False(t, got.UpdatedAt.Before(created.UpdatedAt))
	})

	t.Run("unknown id maps to ErrNotFound", func(t *testing.T) {
		t.Parallel()
		repo := newTestStore(t).Accounts()

		err := repo.UpdateAccount(ctx, domain.Account{ID: 404, Name: "Ghost"})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("cannot steal another account's email", func(t *testing.T) {
		t.Parallel()
		repo := newTestStore(t).Accounts()

		_, err := repo.CreateAccount(ctx, domain.Account{
			Name: "A", Email: "a@x.com", PasswordHash: "h",
		})
		require.NoError(t, err)

		b, err := repo.CreateAccount(ctx, domain.Account{
			Name: "B", Email: "b@x.com", PasswordHash: "h",
		})
		require.NoError(t, err)

		b.Email = "a@x.com"
		require.ErrorIs(t, repo.UpdateAccount(ctx, b), store.ErrAlreadyExists)
	})
}

func TestPing(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	require.NoError(t, st.Ping(context.Background()))

	require.NoError(t, st.Close())
	require.Error(t, st.Ping(context.Background()))
}
