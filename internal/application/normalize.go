package application

import "strings"

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// Idempotent: normalizing an already-normalized value is a no-op.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone trims surrounding whitespace only. Numbers are matched
// exactly as stored; no reformatting is attempted.
func NormalizePhone(phone string) string {
	return strings.TrimSpace(phone)
}
