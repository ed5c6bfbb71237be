package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/keyfold/authd/internal/authd/domain"
	"github.com/keyfold/authd/internal/authd/store"
)

type accountsRepo struct {
	db *sql.DB
}

const accountColumns = `id, name, email, password_hash, active, created_at, updated_at`

func (r *accountsRepo) CreateAccount(
	ctx context.Context,
	a domain.Account,
) (domain.Account, error) {
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (name, email, password_hash, active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		a.Name, a.Email, a.PasswordHash, a.Active, now, now,
	)
	if err != nil {
		return domain.Account{}, mapConflict(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Account{}, err
	}

	a.ID = id
	a.CreatedAt = now
	a.UpdatedAt = now
	return a, nil
}

func (r *accountsRepo) GetAccountByEmail(
	ctx context.Context,
	email string,
) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = ?`, email)
	return scanAccount(row)
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id int64) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	return scanAccount(row)
}

func (r *accountsRepo) UpdateAccount(ctx context.Context, a domain.Account) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts
		 SET name = ?, email = ?, password_hash = ?, active = ?, updated_at = ?
		 WHERE id = ?`,
		a.Name, a.Email, a.PasswordHash, a.Active, time.Now().UTC(), a.ID,
	)
	if err != nil {
		return mapConflict(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanAccount(row *sql.Row) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.PasswordHash,
		&a.Active,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}
