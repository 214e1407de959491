// Package validate holds the pure format checks applied to user input.
//
// The patterns are carried over from the original service unchanged,
// including their quirks: the email grammar is lowercase-only, and the
// IPv4 pattern tolerates dot-separated trailing text after the fourth
// octet. Deployed update clients depend on these exact acceptances.
package validate

import "regexp"

// Subdomain labels that collide with infrastructure names and may never be
// registered, regardless of owner.
var reservedLabels = map[string]struct{}{
	"www":  {},
	"test": {},
}

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)
	passwordRe = regexp.MustCompile(`^[A-Za-z0-9<*+!?=]{3,32}$`)
	labelRe    = regexp.MustCompile(`^[A-Za-z0-9]{1,60}$`)
	ipv4Re     = regexp.MustCompile(`^\b((25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)(\.|$)){4}\b`)

	// RFC 5322-shaped: dot-atom or quoted local part, dotted-label or
	// bracketed-IPv4 domain. ASCII lowercase only.
	emailRe = regexp.MustCompile(`^(?:[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*|"(?:[\x01-\x08\x0b\x0c\x0e-\x1f\x21\x23-\x5b\x5d-\x7f]|\\[\x01-\x09\x0b\x0c\x0e-\x7f])*")@(?:(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?|\[(?:(?:(2(5[0-5]|[0-4][0-9])|1[0-9][0-9]|[1-9]?[0-9]))\.){3}(?:(2(5[0-5]|[0-4][0-9])|1[0-9][0-9]|[1-9]?[0-9])|[a-z0-9-]*[a-z0-9]:(?:[\x01-\x08\x0b\x0c\x0e-\x1f\x21-\x5a\x53-\x7f]|\\[\x01-\x09\x0b\x0c\x0e-\x7f])+)\])`)
)

// Username reports whether s is 3-20 characters of [A-Za-z0-9_-].
func Username(s string) bool { return usernameRe.MatchString(s) }

// Email reports whether s starts with a well-formed address.
func Email(s string) bool { return emailRe.MatchString(s) }

// Password reports whether s is 3-32 characters from the restricted set
// [A-Za-z0-9<*+!?=]. The narrow alphabet is intentional.
func Password(s string) bool { return passwordRe.MatchString(s) }

// DomainLabel reports whether s is a registrable subdomain label:
// 1-60 alphanumeric characters and not a reserved name.
func DomainLabel(s string) bool {
	if _, reserved := reservedLabels[s]; reserved {
		return false
	}
	return labelRe.MatchString(s)
}

// IPv4 reports whether s starts with four dot-separated octets in 0-255.
func IPv4(s string) bool { return ipv4Re.MatchString(s) }
