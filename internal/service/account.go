// Package service contains application services for accounts and domains.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	pkgcrypto "github.com/kgbdns/kgbdns/internal/crypto"
	"github.com/kgbdns/kgbdns/internal/errs"
	"github.com/kgbdns/kgbdns/internal/metrics"
	"github.com/kgbdns/kgbdns/internal/model"
	"github.com/kgbdns/kgbdns/internal/repository"
	"github.com/kgbdns/kgbdns/internal/validate"
)

// secretBytes is the length of salts and tokens before hex encoding.
const secretBytes = 32

// AccountService defines registration and credential operations.
type AccountService interface {
	// Register creates a new account and returns its username.
	Register(ctx context.Context, username, email, password string) (string, error)
	// Login verifies credentials and returns the username on success.
	// Establishing a session is the caller's responsibility.
	Login(ctx context.Context, username, password string) (string, error)
	// AccountToken returns the long-lived token for a username.
	AccountToken(ctx context.Context, username string) (string, error)
}

// AccountServiceImpl is the production AccountService. It is stateless and
// safe for concurrent use; all mutable state lives in the store.
type AccountServiceImpl struct {
	accounts repository.AccountRepository
	audit    repository.AuditRepository
	log      *zap.Logger
}

// NewAccountService constructs AccountService with required dependencies.
func NewAccountService(accounts repository.AccountRepository, audit repository.AuditRepository, log *zap.Logger) *AccountServiceImpl {
	return &AccountServiceImpl{accounts: accounts, audit: audit, log: log}
}

// Register validates input, generates credential material and persists the
// account. Field checks run in a fixed order so the first failing field
// names the rejection.
func (s *AccountServiceImpl) Register(ctx context.Context, username, email, password string) (string, error) {
	if !validate.Username(username) {
		return "", errs.Reject(errs.ErrValidation, "username invalid.")
	}
	if !validate.Email(email) {
		return "", errs.Reject(errs.ErrValidation, "email invalid.")
	}
	if !validate.Password(password) {
		return "", errs.Reject(errs.ErrValidation, "password invalid.")
	}

	salt, err := pkgcrypto.TokenHex(secretBytes)
	if err != nil {
		return "", err
	}
	token, err := pkgcrypto.TokenHex(secretBytes)
	if err != nil {
		return "", err
	}
	securityToken, err := pkgcrypto.TokenHex(secretBytes)
	if err != nil {
		return "", err
	}

	a := &model.Account{
		Username:      username,
		Email:         email,
		Salt:          salt,
		AccountToken:  token,
		SecurityToken: securityToken,
	}
	if err := s.accounts.Create(ctx, a, pkgcrypto.HashPassword(password, salt)); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			metrics.Registrations.WithLabelValues(metrics.ResultFail).Inc()
			return "", errs.Reject(errs.ErrConflict, "username or email exists.")
		}
		return "", err
	}

	metrics.Registrations.WithLabelValues(metrics.ResultOK).Inc()
	recordAudit(ctx, s.audit, s.log, username, actionRegister, username, "")
	return username, nil
}

// Login recomputes the digest from the stored salt and compares it against
// the stored hash. The first step reveals whether the username exists; the
// second step deliberately does not distinguish a wrong password from a
// missing hash.
func (s *AccountServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	salt, err := s.accounts.GetSalt(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			metrics.Logins.WithLabelValues(metrics.ResultFail).Inc()
			return "", errs.Reject(errs.ErrUnauthorized, "username invalid.")
		}
		return "", err
	}

	hash, err := s.accounts.GetPasswordHash(ctx, username)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return "", err
	}
	if err != nil || !pkgcrypto.VerifyPassword(password, salt, hash) {
		metrics.Logins.WithLabelValues(metrics.ResultFail).Inc()
		return "", errs.Reject(errs.ErrUnauthorized, "username or password invalid.")
	}

	metrics.Logins.WithLabelValues(metrics.ResultOK).Inc()
	return username, nil
}

// AccountToken loads the update-client token for the account.
func (s *AccountServiceImpl) AccountToken(ctx context.Context, username string) (string, error) {
	token, err := s.accounts.GetAccountToken(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", errs.Reject(errs.ErrNotFound, "username invalid.")
		}
		return "", err
	}
	return token, nil
}
