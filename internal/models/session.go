package models

import "time"

// Session is a server-side login session identified by an opaque token.
// Expiry is fixed at issuance, not sliding.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"-"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is past its fixed expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
