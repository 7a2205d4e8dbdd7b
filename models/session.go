// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is a persisted login session. Its ID is the SHA-256 derivation of
// the raw token held by the client; the raw token itself is never stored.
type Session struct {
	ID        string    `json:"-"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now.
// A session whose expiry equals now is expired.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// DueForRenewal reports whether now falls within the trailing window
// before expiry in which validation extends the session.
func (s Session) DueForRenewal(now time.Time, window time.Duration) bool {
	return !now.Before(s.ExpiresAt.Add(-window))
}

// SessionValidationResult is the outcome of validating a session token.
// Session and User are either both set or both nil.
type SessionValidationResult struct {
	Session *Session
	User    *User

	// Renewed is set when validation extended the session expiry, so the
	// transport can re-issue the cookie with the new expiry.
	Renewed bool
}

// Valid reports whether the token resolved to a live session.
func (r SessionValidationResult) Valid() bool {
	return r.Session != nil && r.User != nil
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	User User

	// Token is the raw session token; it is handed to the client once.
	Token string

	ExpiresAt time.Time
}
