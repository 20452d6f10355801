package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"hypeup/config"
	"hypeup/internal/domain/service"

	"github.com/pkg/errors"
)

const rawTokenBytes = 32

// tokenCodec implements service.SessionTokenCodec. Raw tokens are 32
// random bytes, hex encoded. The stored form is an HMAC-SHA256 of the raw
// token keyed with the configured session secret, so neither a database
// dump nor the secret alone is enough to forge a valid cookie.
type tokenCodec struct {
	secret []byte
}

// NewTokenCodec is the constructor for tokenCodec.
func NewTokenCodec(cfg *config.Config) service.SessionTokenCodec {
	return &tokenCodec{secret: []byte(cfg.Session.Secret)}
}

// NewToken returns a fresh, unguessable raw session token.
func (c *tokenCodec) NewToken() (string, error) {
	buf := make([]byte, rawTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}

	return hex.EncodeToString(buf), nil
}

// Hash derives the storage form of a raw token.
func (c *tokenCodec) Hash(raw string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(raw))

	return hex.EncodeToString(mac.Sum(nil))
}
