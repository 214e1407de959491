package validate

import (
	"strings"
	"testing"
)

func TestUsername(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want bool
	}{
		{"abc", true},
		{"user_name-1", true},
		{strings.Repeat("a", 20), true},
		{"ab", false},
		{strings.Repeat("a", 21), false},
		{"a b", false},
		{"héllo", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := Username(tc.in); got != tc.want {
			t.Errorf("Username(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestEmail(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want bool
	}{
		{"alice@example.com", true},
		{"a.b-c_d@sub.domain.org", true},
		{"user+tag@example.co", true},
		{`"ab"@example.com`, true},
		{"alice@[203.0.113.5]", true},
		// The historical grammar is lowercase-only and unanchored at the
		// end; both behaviors are load-bearing for existing clients.
		{"Alice@example.com", false},
		{"alice@example.com trailing", true},
		{"alice", false},
		{"@example.com", false},
		{"alice@", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := Email(tc.in); got != tc.want {
			t.Errorf("Email(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPassword(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want bool
	}{
		{"abc", true},
		{"Secr3t!", true},
		{"a<*+!?=", true},
		{strings.Repeat("x", 32), true},
		{"ab", false},
		{strings.Repeat("x", 33), false},
		{"pass word", false},
		{"p@ss", false},
		{"pässword", false},
	}
	for _, tc := range cases {
		if got := Password(tc.in); got != tc.want {
			t.Errorf("Password(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDomainLabel(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want bool
	}{
		{"abc123", true},
		{"a", true},
		{strings.Repeat("z", 60), true},
		{"", false},
		{strings.Repeat("z", 61), false},
		{"my-domain", false}, // hyphens are not registrable
		{"my.domain", false},
	}
	for _, tc := range cases {
		if got := DomainLabel(tc.in); got != tc.want {
			t.Errorf("DomainLabel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDomainLabelReserved(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"www", "test"} {
		if DomainLabel(name) {
			t.Errorf("DomainLabel(%q) = true, want false (reserved)", name)
		}
	}
	// Reservation is exact-match only.
	if !DomainLabel("www2") {
		t.Errorf("DomainLabel(\"www2\") = false, want true")
	}
}

func TestIPv4(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want bool
	}{
		{"8.8.8.8", true},
		{"0.0.0.0", true},
		{"255.255.255.255", true},
		{"203.0.113.5", true},
		{"1.1.1.1", true},
		// Historical laxity: dot-separated trailing text is accepted.
		{"1.2.3.4.5", true},
		{"256.1.1.1", false},
		{"1.2.3", false},
		{"1.2.3.4x", false},
		{"1.2.3.4.", false},
		{"a.b.c.d", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IPv4(tc.in); got != tc.want {
			t.Errorf("IPv4(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
