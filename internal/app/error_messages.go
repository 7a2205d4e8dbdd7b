// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-pantry services, handlers and middleware.
//
// All Msg* constants are human-readable message strings that end up in
// response payloads (the "error" and "message" fields) or log entries.
// Keeping them in one place ensures consistent wording throughout the app.
package app

// Authentication messages.
const (
	// MsgEmailDomainNotAllowed is a format string taking the allowed domain.
	MsgEmailDomainNotAllowed = "Only @%s emails are allowed"

	// MsgEmailIsRequired is returned when the login form has no email.
	MsgEmailIsRequired = "Email is required"

	// MsgUserAlreadyExists is returned when an account for the email exists.
	MsgUserAlreadyExists = "User already exists"

	// MsgUserCreateFailed is returned when the user INSERT produced no row
	// or failed unexpectedly.
	MsgUserCreateFailed = "Failed to create user"

	// MsgLoginFailed is returned when a session could not be issued.
	MsgLoginFailed = "Failed to log in user"

	// MsgLogoutFailed is returned when the session could not be removed.
	MsgLogoutFailed = "Failed to log out user"

	// MsgSessionValidationFailed is logged when the session lookup fails.
	MsgSessionValidationFailed = "Failed to validate session"
)

// Ingredient messages.
const (
	MsgIngredientAddFailed    = "Failed to add ingredient"
	MsgIngredientsFetchFailed = "Failed to fetch ingredients"
	MsgIngredientUpdateFailed = "Failed to update ingredient"
	MsgIngredientRemoveFailed = "Failed to remove ingredient"
	MsgIngredientNotFound     = "Ingredient not found"
	MsgIngredientNameInvalid  = "Ingredient name must be between 2 and 100 characters"
	MsgIngredientSearchFailed = "Failed to search ingredients"
	MsgIngredientRemoved      = "Ingredient removed successfully"
	MsgIngredientUpdated      = "Ingredient updated"
	MsgIngredientGone         = "Ingredient not found or already removed"
	MsgIngredientIDIsRequired = "Invalid ingredient ID"
	MsgIngredientNameMissing  = "Ingredient name is required"
	MsgProductIDIsRequired    = "Product ID is required"
	MsgProductNotFound        = "Product not found"
)

// Recipe messages.
const (
	MsgRecipeSaveFailed    = "Failed to save recipe"
	MsgRecipesFetchFailed  = "Failed to fetch recipes"
	MsgRecipeFetchFailed   = "Failed to fetch recipe"
	MsgRecipeRateFailed    = "Failed to update recipe rating"
	MsgRecipeDeleteFailed  = "Failed to delete recipe"
	MsgRecipeNotFound      = "Recipe not found"
	MsgRecipeInvalid       = "Recipe title and instructions are required"
	MsgRatingOutOfRange    = "Rating must be between 1 and 5"
	MsgRecipeDeleted       = "Recipe deleted successfully"
	MsgInvalidRecipeData   = "Invalid recipe data"
	MsgRecipeIDIsRequired  = "Recipe ID is required"
	MsgGenerationFailed    = "Failed to generate recipes. Please try again."
	MsgNoIngredientsChosen = "Please select at least one ingredient"
	MsgRatingIsRequired    = "Recipe ID and rating are required"
	MsgRecipeGone          = "Recipe not found or already deleted"
)

// MsgUnexpectedError answers a login that failed for a reason other than
// the account or the email.
const MsgUnexpectedError = "An unexpected error occurred. Please try again."

// MsgRequestTimedOut is the body of a request cut off by the server
// request timeout.
const MsgRequestTimedOut = "request timed out"

// MsgInvalidDataProvided is returned when a form cannot be parsed.
const MsgInvalidDataProvided = "invalid data provided"
