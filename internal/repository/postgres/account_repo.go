package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kgbdns/kgbdns/internal/errs"
	"github.com/kgbdns/kgbdns/internal/model"
)

// AccountRepo implements AccountRepository using PostgreSQL.
type AccountRepo struct{ db *DB }

// NewAccountRepo constructs an account repository.
func NewAccountRepo(db *DB) *AccountRepo { return &AccountRepo{db: db} }

// Create inserts the account and its password hash atomically. The
// existence check runs inside the same transaction as the inserts, so two
// concurrent registrations of the same identity serialize: one commits,
// the other sees the row (or trips the unique constraint) and gets
// errs.ErrConflict.
func (r *AccountRepo) Create(ctx context.Context, a *model.Account, passwordHash string) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()

	const sel = `SELECT 1 FROM accounts WHERE username=$1 OR email=$2`
	const insAcc = `
INSERT INTO accounts (username, email, salt, account_token, security_token)
VALUES ($1, $2, $3, $4, $5)`
	const insHash = `INSERT INTO password_hashes (username, hash) VALUES ($1, $2)`

	var one int
	scanErr := tx.QueryRow(ctx, sel, a.Username, a.Email).Scan(&one)
	switch {
	case scanErr == nil:
		return fmt.Errorf("account %q: %w", a.Username, errs.ErrConflict)
	case errors.Is(scanErr, pgx.ErrNoRows):
		// free to insert
	default:
		return scanErr
	}

	if _, err = tx.Exec(ctx, insAcc, a.Username, a.Email, a.Salt, a.AccountToken, a.SecurityToken); err != nil {
		if isUniqueViolation(err) {
			err = fmt.Errorf("account %q: %w", a.Username, errs.ErrConflict)
		}
		return err
	}
	if _, err = tx.Exec(ctx, insHash, a.Username, passwordHash); err != nil {
		return err
	}
	return nil
}

// GetSalt selects the salt for a username.
func (r *AccountRepo) GetSalt(ctx context.Context, username string) (string, error) {
	const q = `SELECT salt FROM accounts WHERE username=$1`
	var salt string
	if err := r.db.Pool.QueryRow(ctx, q, username).Scan(&salt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errs.ErrNotFound
		}
		return "", err
	}
	return salt, nil
}

// GetPasswordHash selects the stored digest for a username.
func (r *AccountRepo) GetPasswordHash(ctx context.Context, username string) (string, error) {
	const q = `SELECT hash FROM password_hashes WHERE username=$1`
	var hash string
	if err := r.db.Pool.QueryRow(ctx, q, username).Scan(&hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errs.ErrNotFound
		}
		return "", err
	}
	return hash, nil
}

// GetAccountToken selects the account token for a username.
func (r *AccountRepo) GetAccountToken(ctx context.Context, username string) (string, error) {
	const q = `SELECT account_token FROM accounts WHERE username=$1`
	var token string
	if err := r.db.Pool.QueryRow(ctx, q, username).Scan(&token); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errs.ErrNotFound
		}
		return "", err
	}
	return token, nil
}
