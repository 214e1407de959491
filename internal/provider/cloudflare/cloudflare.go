// Package cloudflare pushes records to a Cloudflare zone. It is an
// alternative to the Gandi adapter for installations hosting the parent
// zone there.
package cloudflare

import (
	"context"
	"fmt"

	"github.com/cloudflare/cloudflare-go"
)

const recordTTL = 300

// Client implements provider.Provider on top of the Cloudflare API.
type Client struct {
	api  *cloudflare.API
	rc   *cloudflare.ResourceContainer
	zone string
}

// New resolves the zone and builds a client.
func New(apiToken, zone string) (*Client, error) {
	if apiToken == "" || zone == "" {
		return nil, fmt.Errorf("cloudflare: api token and zone are required")
	}
	api, err := cloudflare.NewWithAPIToken(apiToken)
	if err != nil {
		return nil, err
	}
	zoneID, err := api.ZoneIDByName(zone)
	if err != nil {
		return nil, err
	}
	return &Client{api: api, rc: cloudflare.ZoneIdentifier(zoneID), zone: zone}, nil
}

// CreateRecord creates an A-record for name pointing at ip.
func (c *Client) CreateRecord(ctx context.Context, name, ip string) error {
	_, err := c.api.CreateDNSRecord(ctx, c.rc, cloudflare.CreateDNSRecordParams{
		Type:    "A",
		Name:    name,
		Content: ip,
		TTL:     recordTTL,
	})
	return err
}

// UpdateRecord repoints the A-record for name at ip.
func (c *Client) UpdateRecord(ctx context.Context, name, ip string) error {
	rec, err := c.find(ctx, name)
	if err != nil {
		return err
	}
	_, err = c.api.UpdateDNSRecord(ctx, c.rc, cloudflare.UpdateDNSRecordParams{
		ID:      rec.ID,
		Type:    "A",
		Name:    name,
		Content: ip,
		TTL:     recordTTL,
	})
	return err
}

// DeleteRecord removes the A-record for name.
func (c *Client) DeleteRecord(ctx context.Context, name string) error {
	rec, err := c.find(ctx, name)
	if err != nil {
		return err
	}
	return c.api.DeleteDNSRecord(ctx, c.rc, rec.ID)
}

func (c *Client) find(ctx context.Context, name string) (cloudflare.DNSRecord, error) {
	recs, _, err := c.api.ListDNSRecords(ctx, c.rc, cloudflare.ListDNSRecordsParams{
		Type: "A",
		Name: name + "." + c.zone,
	})
	if err != nil {
		return cloudflare.DNSRecord{}, err
	}
	if len(recs) == 0 {
		return cloudflare.DNSRecord{}, fmt.Errorf("cloudflare: no A record for %s", name)
	}
	return recs[0], nil
}
