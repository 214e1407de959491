// Package provider abstracts the upstream DNS service that actually stores
// the records. The core treats it as an opaque success/failure boundary:
// adapters return an error on failure and nothing else.
package provider

import "context"

// Provider manages A-records for subdomain labels under the parent zone.
type Provider interface {
	// CreateRecord creates an A-record for name pointing at ip.
	CreateRecord(ctx context.Context, name, ip string) error
	// UpdateRecord repoints the existing A-record for name at ip.
	UpdateRecord(ctx context.Context, name, ip string) error
	// DeleteRecord removes the A-record for name.
	DeleteRecord(ctx context.Context, name string) error
}
