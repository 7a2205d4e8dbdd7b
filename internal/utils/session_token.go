// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"hash"
	"sync"
)

// sessionTokenBytes is the amount of entropy in a session token (160 bits).
const sessionTokenBytes = 20

// hasherPool is a package-level pool of reusable SHA-256 hash instances
// used to derive session identifiers from raw tokens.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// GenerateSessionToken returns a fresh opaque session token: 20 bytes from
// crypto/rand encoded as unpadded base64url (27 characters).
//
// The raw token is handed to the client once and never persisted; only
// [DeriveSessionID] of it reaches the database.
func GenerateSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error reading random bytes for session token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// DeriveSessionID maps a raw session token to its storage identifier: the
// lowercase hex SHA-256 digest of the token bytes (64 characters).
//
// Example usage:
//
//	token, _ := utils.GenerateSessionToken()
//	sessionID := utils.DeriveSessionID(token)
func DeriveSessionID(token string) string {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write([]byte(token))
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return hex.EncodeToString(sum)
}
