package service

import (
	"context"
	"errors"
	"strings"

	"github.com/keyfold/authd/internal/authd/domain"
	"github.com/keyfold/authd/internal/authd/store"
	"github.com/keyfold/authd/pkg/cryptox"
	"github.com/keyfold/authd/pkg/slogx"
)

// OTPVerifier delegates challenge validation to the remote OTP service.
type OTPVerifier interface {
	Check(ctx context.Context, ch domain.OTPChallenge) bool
	Invalidate(ctx context.Context, ch domain.OTPChallenge) error
}

type AccountService struct {
	Store store.Store
	OTP   OTPVerifier
}

// Register creates a new inactive account. Email is normalized to
// lowercase before the uniqueness check and before storage.
func (s *AccountService) Register(
	ctx context.Context,
	name, email, password string,
) (domain.Account, error) {
	email = normalizeEmail(email)

	_, err := s.Store.Accounts().GetAccountByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.Account{}, ErrEmailExists
	case !errors.Is(err, store.ErrNotFound):
		return domain.Account{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.Account{}, err
	}

	account, err := s.Store.Accounts().CreateAccount(ctx, domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Active:       false,
	})
	if err != nil {
		// A concurrent register can win between our existence check and
		// this insert; the unique index reports it as a conflict.
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Account{}, ErrEmailExists
		}
		return domain.Account{}, err
	}

	return account, nil
}

// Authenticate returns the account matching the credentials. Unknown
// email and wrong password both return ErrAccountNotFound so callers
// cannot probe which emails are registered.
func (s *AccountService) Authenticate(
	ctx context.Context,
	email, password string,
) (domain.Account, error) {
	account, err := s.Store.Accounts().GetAccountByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrAccountNotFound
		}
		return domain.Account{}, err
	}

	if cryptox.VerifyPassword(password, account.PasswordHash) != nil {
		return domain.Account{}, ErrAccountNotFound
	}

	if !account.Active {
		return domain.Account{}, ErrInactiveAccount
	}

	return account, nil
}

// GetByID fetches an account by id.
func (s *AccountService) GetByID(ctx context.Context, id int64) (domain.Account, error) {
	account, err := s.Store.Accounts().GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrAccountNotFound
		}
		return domain.Account{}, err
	}
	return account, nil
}

// Activate runs the account activation workflow: look up the account,
// reject repeat activations, confirm the OTP challenge, flip the active
// flag, then consume the challenge. Activation happens only after OTP
// confirmation, and invalidation only after activation has persisted,
// so a failed activation never burns a valid challenge.
func (s *AccountService) Activate(
	ctx context.Context,
	id int64,
	challenge domain.OTPChallenge,
) error {
	account, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if account.Active {
		return ErrAlreadyActivated
	}

	if !s.OTP.Check(ctx, challenge) {
		return ErrInvalidOTP
	}

	if err := s.markActive(ctx, account); err != nil {
		return err
	}

	// Best-effort: the account is already active, so a failed
	// invalidation is logged rather than surfaced to the caller.
	if err := s.OTP.Invalidate(ctx, challenge); err != nil {
		slogx.FromContext(ctx).Warn("otp invalidate failed",
			"account_id", id,
			"err", err,
		)
	}

	return nil
}

// markActive is the pure pending→active state transition.
func (s *AccountService) markActive(ctx context.Context, account domain.Account) error {
	account.Active = true
	return s.Store.Accounts().UpdateAccount(ctx, account)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
