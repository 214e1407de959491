package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kgbdns/kgbdns/internal/errs"
	"github.com/kgbdns/kgbdns/internal/model"
)

// DomainRepo implements DomainRepository using PostgreSQL.
type DomainRepo struct{ db *DB }

// NewDomainRepo constructs a domain repository.
func NewDomainRepo(db *DB) *DomainRepo { return &DomainRepo{db: db} }

// Exists reports whether the domain name is registered.
func (r *DomainRepo) Exists(ctx context.Context, domain string) (bool, error) {
	const q = `SELECT 1 FROM domains WHERE domain=$1`
	var one int
	err := r.db.Pool.QueryRow(ctx, q, domain).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListByOwner selects all records owned by username.
func (r *DomainRepo) ListByOwner(ctx context.Context, username string) ([]model.DomainRecord, error) {
	const q = `SELECT domain, username, updated_at, ip FROM domains WHERE username=$1`
	rows, err := r.db.Pool.Query(ctx, q, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []model.DomainRecord
	for rows.Next() {
		var rec model.DomainRecord
		if err := rows.Scan(&rec.Domain, &rec.Owner, &rec.UpdatedAt, &rec.IP); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Insert stores a new domain record. The primary key on domain turns a
// lost race into errs.ErrConflict instead of a second owner.
func (r *DomainRepo) Insert(ctx context.Context, rec *model.DomainRecord) error {
	const q = `INSERT INTO domains (domain, username, updated_at, ip) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Pool.Exec(ctx, q, rec.Domain, rec.Owner, rec.UpdatedAt, rec.IP)
	if isUniqueViolation(err) {
		return fmt.Errorf("domain %q: %w", rec.Domain, errs.ErrConflict)
	}
	return err
}

// NamesByToken resolves the account owning token and returns its domain
// names. A token matching no account returns an empty slice, deliberately
// indistinguishable from an account with no domains.
func (r *DomainRepo) NamesByToken(ctx context.Context, token string) ([]string, error) {
	const q = `
SELECT d.domain FROM accounts a
INNER JOIN domains d ON a.username = d.username
WHERE a.account_token=$1`
	rows, err := r.db.Pool.Query(ctx, q, token)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// UpdateIP overwrites the address and refreshes the timestamp.
func (r *DomainRepo) UpdateIP(ctx context.Context, domain string, updatedAt int64, ip string) error {
	const q = `UPDATE domains SET updated_at=$2, ip=$3 WHERE domain=$1`
	tag, err := r.db.Pool.Exec(ctx, q, domain, updatedAt, ip)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes the record.
func (r *DomainRepo) Delete(ctx context.Context, domain string) error {
	const q = `DELETE FROM domains WHERE domain=$1`
	tag, err := r.db.Pool.Exec(ctx, q, domain)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
