// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create a user
	// fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrUserNotCreated is returned when the user INSERT completes without
	// error but returns no row.
	ErrUserNotCreated = errors.New("user was not created")

	// ErrSessionNotFound is returned when no session matches the derived id.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrSessionNotSaved is returned when the session INSERT affects no rows.
	ErrSessionNotSaved = errors.New("session was not saved")

	// ErrIngredientNotSaved is returned when the pantry entry INSERT returns
	// no row.
	ErrIngredientNotSaved = errors.New("ingredient was not saved")

	// ErrIngredientNotFound is returned when a pantry entry does not exist
	// for the given user.
	ErrIngredientNotFound = errors.New("ingredient was not found")

	// ErrRecipeNotSaved is returned when the recipe INSERT returns no row.
	ErrRecipeNotSaved = errors.New("recipe was not saved")

	// ErrRecipeNotFound is returned when a recipe does not exist for the
	// given user.
	ErrRecipeNotFound = errors.New("recipe was not found")

	// ErrCacheEntryNotFound is returned when no cached batch exists for a
	// user and fingerprint.
	ErrCacheEntryNotFound = errors.New("recipe cache entry was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingJSON is returned when a JSON column value cannot be
	// marshaled or unmarshaled.
	ErrEncodingJSON = errors.New("failed to encode json column")
)
