// Package session maps opaque tokens to authenticated user ids. The default
// implementation is in-memory; the Store interface is what handlers depend
// on, so a shared backend can be swapped in for multi-instance deployments.
package session

import (
	"crypto/rand"
	"encoding/base64"
)

type Store interface {
	// Create binds a new token to userID and returns it.
	Create(userID string) (string, error)

	// Get resolves a token to its user id and refreshes the idle timer.
	// Returns domain.ErrNoSession for unknown or expired tokens.
	Get(token string) (string, error)

	// Delete ends the session. Deleting an unknown token is not an error.
	Delete(token string)
}

// newToken returns 32 bytes of entropy as an unpadded URL-safe string. The
// token carries no user information; it is only a map key.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
