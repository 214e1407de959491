// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Account represents a registered user. Credential material (the password
// hash) lives in a separate table keyed by username and never travels on
// this struct.
type Account struct {
	Username      string // PK, 3-20 chars of [A-Za-z0-9_-]
	Email         string // unique
	Salt          string // 32 random bytes hex-encoded, fixed at registration
	AccountToken  string // long-lived secret for unattended update clients
	SecurityToken string // reserved for secondary verification flows
}

// DomainRecord binds a subdomain of the parent zone to its owner and
// current address. UpdatedAt is a millisecond timestamp refreshed on every
// successful IP update.
type DomainRecord struct {
	Domain    string // PK, globally unique across all owners
	Owner     string // FK -> accounts.username
	UpdatedAt int64
	IP        string
}

// AuditEntry records a successful administrative action.
type AuditEntry struct {
	ID        uuid.UUID
	Actor     string // username, or "token" for capability-authenticated ops
	Action    string // e.g. "REGISTER", "CREATE_DOMAIN"
	Target    string // username or domain name acted upon
	Detail    string
	CreatedAt time.Time
}
