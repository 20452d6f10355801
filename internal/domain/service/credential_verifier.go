// Package service defines domain service interfaces implemented by the infra layer.
package service

// CredentialVerifier checks a presented password against the stored
// credential of an account. Implementations decide how the stored value
// is interpreted (hashed or plain).
type CredentialVerifier interface {
	// Verify reports whether the presented password matches the stored credential.
	Verify(presented, stored string) bool
}
