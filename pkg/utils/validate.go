package utils

import "regexp"

// Deliberately loose: one "@" with something on both sides and a dot in the
// domain. Full RFC 5322 parsing rejects addresses providers accept.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsPlausibleEmail reports whether addr looks like an email address.
func IsPlausibleEmail(addr string) bool {
	if len(addr) > 254 {
		return false
	}
	return emailPattern.MatchString(addr)
}
