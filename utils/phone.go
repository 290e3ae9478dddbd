package utils

import "strings"

// NormalizePhoneNumber reduces a phone number to its digits so the same
// number always maps to the same user.
func NormalizePhoneNumber(phoneNumber string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(phoneNumber) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
