// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account entity. Accounts are created on first login
// from an email of the allowed domain; there are no passwords.
type User struct {
	// ID is the unique identifier of the user (UUID string).
	ID string `json:"id"`

	// Username is derived from the local part of Email at creation time.
	Username string `json:"username"`

	// Email is unique across all users and compared exactly.
	Email string `json:"email"`

	// Age is optional profile data, never set by the login flow.
	Age *int `json:"age,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
