// Package session holds the server-side login session store. Tokens are
// opaque; expiry is fixed at issuance and logout removes the session
// immediately. Two interchangeable backends exist: an in-process map for
// demo mode and Redis for deployments.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

// ErrNotFound signals an unknown or expired session token.
var ErrNotFound = errors.New("session not found")

// Store persists sessions keyed by their opaque token.
type Store interface {
	Save(ctx context.Context, sess *models.Session) error
	Find(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}

// NewToken returns a 32-byte random token, base64url encoded.
func NewToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
