// Package auth contains credential and session-token primitives.
package auth

import (
	"crypto/subtle"
	"strings"

	"hypeup/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// passwordVerifier implements service.CredentialVerifier.
//
// When the stored credential is a bcrypt hash the comparison goes through
// bcrypt. Otherwise the stored value is treated as the plain secret and
// compared in constant time. The plain path exists because the original
// deployment configured the admin password unhashed; operators should
// migrate to a bcrypt hash, at which point the fallback never triggers.
type passwordVerifier struct{}

// NewPasswordVerifier is the constructor for passwordVerifier.
func NewPasswordVerifier() service.CredentialVerifier {
	return &passwordVerifier{}
}

// Verify reports whether the presented password matches the stored credential.
func (v *passwordVerifier) Verify(presented, stored string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
	}

	return subtle.ConstantTimeCompare([]byte(presented), []byte(stored)) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
