package repository

import (
	"context"

	"github.com/kgbdns/kgbdns/internal/model"
)

// DomainRepository persists domain->owner->IP bindings. The domain name is
// the primary key: uniqueness is global because every record lives under
// the one shared parent zone.
type DomainRepository interface {
	// Exists reports whether the domain name is already registered.
	Exists(ctx context.Context, domain string) (bool, error)
	// ListByOwner returns all records owned by username, used for quota
	// checks and display.
	ListByOwner(ctx context.Context, username string) ([]model.DomainRecord, error)
	// Insert stores a new record. Returns errs.ErrConflict if the name was
	// taken concurrently.
	Insert(ctx context.Context, rec *model.DomainRecord) error
	// NamesByToken returns the domain names owned by the account whose
	// account token matches. An unknown token yields an empty slice.
	NamesByToken(ctx context.Context, token string) ([]string, error)
	// UpdateIP overwrites ip and the millisecond timestamp for domain.
	UpdateIP(ctx context.Context, domain string, updatedAt int64, ip string) error
	// Delete removes the record.
	Delete(ctx context.Context, domain string) error
}
