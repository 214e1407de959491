package postgres

import (
	"context"

	"github.com/kgbdns/kgbdns/internal/model"
)

// AuditRepo implements AuditRepository using PostgreSQL.
type AuditRepo struct{ db *DB }

// NewAuditRepo constructs an audit repository.
func NewAuditRepo(db *DB) *AuditRepo { return &AuditRepo{db: db} }

// Save appends one audit entry.
func (r *AuditRepo) Save(ctx context.Context, e *model.AuditEntry) error {
	const q = `
INSERT INTO audit_logs (id, actor, action, target, detail, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Pool.Exec(ctx, q, e.ID, e.Actor, e.Action, e.Target, e.Detail, e.CreatedAt)
	return err
}
