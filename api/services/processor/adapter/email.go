package adapter

import (
	"fmt"
	"strings"

	"github.com/badoux/checkmail"
)

// ValidateEmail applies the standard email-shape check, then requires the
// domain to be a dotted-quad address or dotted labels ending in an
// alphabetic top-level label of at least two letters. Bare hosts like
// "user@localhost" are rejected.
func ValidateEmail(email string) error {
	if err := checkmail.ValidateFormat(email); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	domain := email[strings.LastIndex(email, "@")+1:]
	if !isDottedQuad(domain) && !isLabelDomain(domain) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}

func isDottedQuad(domain string) bool {
	parts := strings.Split(domain, ".")
	if len(parts) != 4 {
		return false
	}
	for _, p := range parts {
		if len(p) == 0 || len(p) > 3 || strings.Trim(p, "0123456789") != "" {
			return false
		}
	}
	return true
}

func isLabelDomain(domain string) bool {
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels[:len(labels)-1] {
		if l == "" || strings.Trim(l, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-") != "" {
			return false
		}
	}
	tld := labels[len(labels)-1]
	return len(tld) >= 2 && strings.Trim(tld, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ") == ""
}
