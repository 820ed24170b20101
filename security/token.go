package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"time"

	"recipeshare/backend/model"
)

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 30 * 24 * time.Hour

const tokenBytes = 32

// NewToken issues a fresh bearer token from 32 bytes of cryptographically
// random data. No uniqueness check against existing tokens is made, the
// value space makes collisions a non-issue.
func NewToken(now time.Time) (model.Token, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return model.Token{}, err
	}

	return model.Token{
		Token:      base64.StdEncoding.EncodeToString(b),
		Expiration: now.Add(TokenTTL),
	}, nil
}

// Authorize reports whether presented matches one of the stored tokens.
// Entries at or past their expiration don't count. The loop always visits
// every entry so timing doesn't leak which one matched.
func Authorize(tokens []model.Token, presented string, now time.Time) bool {
	ok := false
	for _, t := range tokens {
		match := subtle.ConstantTimeCompare([]byte(t.Token), []byte(presented)) == 1
		if match && t.Expiration.After(now) {
			ok = true
		}
	}

	return ok
}
