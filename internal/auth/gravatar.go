package auth

import (
	"crypto/md5" //nolint:gosec // gravatar addresses images by md5 of the email
	"encoding/hex"
	"strings"
)

// Gravatar returns the protocol-relative avatar URL for email: 200px,
// pg rated, with the mystery-man fallback.
func Gravatar(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email)))) //nolint:gosec
	return "//www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=200&r=pg&d=mm"
}
