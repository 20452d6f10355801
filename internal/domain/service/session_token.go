// Package service defines domain service interfaces implemented by the infra layer.
package service

// SessionTokenCodec produces and hashes the opaque tokens that identify
// dashboard sessions. Only the hash is ever persisted; the raw token
// lives exclusively in the browser cookie.
type SessionTokenCodec interface {
	// NewToken returns a fresh, unguessable raw session token.
	NewToken() (string, error)

	// Hash derives the storage form of a raw token. Deterministic, so a
	// presented cookie can be matched against the stored hash.
	Hash(raw string) string
}
