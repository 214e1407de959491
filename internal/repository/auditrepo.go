package repository

import (
	"context"

	"github.com/kgbdns/kgbdns/internal/model"
)

// AuditRepository appends audit entries. Writes are best-effort: services
// log failures but never fail the audited operation.
type AuditRepository interface {
	Save(ctx context.Context, e *model.AuditEntry) error
}
