package gandi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateRecord(t *testing.T) {
	t.Parallel()
	var got rrset
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/domains/kgbdns.com/records", r.URL.Path)
		require.Equal(t, "Apikey k", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New("kgbdns.com", "k", WithBaseURL(srv.URL))
	require.NoError(t, c.CreateRecord(context.Background(), "abc123", "1.1.1.1"))
	require.Equal(t, "abc123", got.Name)
	require.Equal(t, "A", got.Type)
	require.Equal(t, []string{"1.1.1.1"}, got.Values)
	require.Equal(t, 300, got.TTL)
}

func TestUpdateRecord(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/domains/kgbdns.com/records/abc123/A", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New("kgbdns.com", "k", WithBaseURL(srv.URL))
	require.NoError(t, c.UpdateRecord(context.Background(), "abc123", "8.8.8.8"))
}

func TestDeleteRecord(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/domains/kgbdns.com/records/abc123/A", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New("kgbdns.com", "k", WithBaseURL(srv.URL))
	require.NoError(t, c.DeleteRecord(context.Background(), "abc123"))
}

func TestUnexpectedStatusIsAnError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := New("kgbdns.com", "bad-key", WithBaseURL(srv.URL))
	ctx := context.Background()
	require.Error(t, c.CreateRecord(ctx, "abc123", "1.1.1.1"))
	require.Error(t, c.UpdateRecord(ctx, "abc123", "1.1.1.1"))
	require.Error(t, c.DeleteRecord(ctx, "abc123"))
}
