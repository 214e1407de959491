// Package gandi pushes records to the Gandi LiveDNS REST API.
package gandi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.gandi.net/v5/livedns"
	recordTTL      = 300
)

// Client implements provider.Provider against LiveDNS.
type Client struct {
	baseURL string
	zone    string // parent zone, e.g. "kgbdns.com"
	apiKey  string
	http    *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (tests point this at a local server).
func WithBaseURL(u string) Option { return func(c *Client) { c.baseURL = u } }

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.http = h } }

// New builds a LiveDNS client for the given parent zone.
func New(zone, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		zone:    zone,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type rrset struct {
	FQDN   string   `json:"fqdn,omitempty"`
	Name   string   `json:"rrset_name,omitempty"`
	Type   string   `json:"rrset_type,omitempty"`
	Values []string `json:"rrset_values"`
	TTL    int      `json:"rrset_ttl"`
}

// CreateRecord creates an A-record for name. LiveDNS answers 201 on create.
func (c *Client) CreateRecord(ctx context.Context, name, ip string) error {
	body := rrset{FQDN: name, Name: name, Type: "A", Values: []string{ip}, TTL: recordTTL}
	url := fmt.Sprintf("%s/domains/%s/records", c.baseURL, c.zone)
	return c.do(ctx, http.MethodPost, url, body, http.StatusCreated)
}

// UpdateRecord replaces the A-record values for name. LiveDNS answers 201.
func (c *Client) UpdateRecord(ctx context.Context, name, ip string) error {
	body := rrset{Values: []string{ip}, TTL: recordTTL}
	url := fmt.Sprintf("%s/domains/%s/records/%s/A", c.baseURL, c.zone, name)
	return c.do(ctx, http.MethodPut, url, body, http.StatusCreated)
}

// DeleteRecord removes the A-record for name. LiveDNS answers 204.
func (c *Client) DeleteRecord(ctx context.Context, name string) error {
	url := fmt.Sprintf("%s/domains/%s/records/%s/A", c.baseURL, c.zone, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Apikey "+c.apiKey)
	return c.send(req, http.StatusNoContent)
}

func (c *Client) do(ctx context.Context, method, url string, body rrset, want int) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Apikey "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	return c.send(req, want)
}

func (c *Client) send(req *http.Request, want int) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != want {
		return fmt.Errorf("livedns: %s %s: got %d, want %d", req.Method, req.URL.Path, resp.StatusCode, want)
	}
	return nil
}
