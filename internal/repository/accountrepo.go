// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/kgbdns/kgbdns/internal/model"
)

// AccountRepository persists accounts and their password hashes.
type AccountRepository interface {
	// Create inserts the account row and its password hash in one
	// transaction, after verifying inside that same transaction that
	// neither the username nor the email is taken. Returns
	// errs.ErrConflict on either collision.
	Create(ctx context.Context, a *model.Account, passwordHash string) error
	// GetSalt returns the account's salt, or errs.ErrNotFound.
	GetSalt(ctx context.Context, username string) (string, error)
	// GetPasswordHash returns the stored hex digest for the username.
	GetPasswordHash(ctx context.Context, username string) (string, error)
	// GetAccountToken returns the account token, or errs.ErrNotFound.
	GetAccountToken(ctx context.Context, username string) (string, error)
}
