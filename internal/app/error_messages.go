// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// recipe-share HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the "message" field of JSON response bodies to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording throughout
// the API and lets the API client recognise them.
package app

// Authorization gate messages.
const (
	// MsgNoToken is returned when a route that re-reads the user is called
	// without a bearer token.
	MsgNoToken = "access denied, no token provided"

	// MsgTokenExpired is returned when the session token is past its expiry.
	MsgTokenExpired = "token expired, please log in again"

	// MsgInvalidToken is returned for malformed or badly signed tokens.
	MsgInvalidToken = "invalid token"

	// MsgAuthenticationFailed is returned when the token subject no longer
	// exists or the token fails verification for an unspecified reason.
	MsgAuthenticationFailed = "authentication failed"

	// MsgAccessTokenMissing is returned by claim-trusting routes without a token.
	MsgAccessTokenMissing = "access token is missing"

	// MsgInvalidOrExpiredAccessToken is returned by claim-trusting routes for
	// any verification failure.
	MsgInvalidOrExpiredAccessToken = "invalid or expired token"

	// MsgInsufficientPermissions is returned when the caller's role is not
	// allowed on the route.
	MsgInsufficientPermissions = "access denied: insufficient permissions"
)

// Response messages of the account, password reset, user and recipe routes.
const (
	MsgUserRegistered        = "User registered successfully"
	MsgEmailAlreadyExists    = "Email already exists"
	MsgInvalidCredentials    = "Invalid credentials"
	MsgEmailNotFound         = "Email not found"
	MsgResetTokenSent        = "Password reset email sent"
	MsgResetTokenValid       = "Token is valid. Please set a new password."
	MsgInvalidOrExpiredReset = "Invalid or expired token"
	MsgPasswordReset         = "Password has been successfully reset"
	MsgUserNotFound          = "User not found"
	MsgUserDeleted           = "User deleted successfully"
	MsgInvalidRole           = "Invalid role specified"
	MsgValidationFailed      = "Validation failed"
	MsgInvalidJSON           = "Invalid JSON was passed"
	MsgInvalidIdentifier     = "Invalid identifier"
	MsgInternalServerError   = "Internal server error"
	MsgNotFound              = "Not found"
	MsgVersionIsNotSpecified = "app version is not specified"
	MsgRecipeNotFound        = "Recipe not found"
	MsgRecipeDeleted         = "Recipe deleted successfully"
	MsgNotRecipeOwner        = "You are not authorized to modify this recipe"
	MsgNothingToUpdate       = "No fields to update"
	MsgInvalidRating         = "Rating must be between 1 and 5"
	MsgRecipeRated           = "Recipe rated successfully"
	MsgInvalidPicture        = "Invalid picture upload"
	MsgReferencedRowNotFound = "Referenced record does not exist"
	MsgConstraintViolation   = "Constraint violation"
	MsgNoRecipesFound        = "No recipes found"
	MsgRecipeCreated         = "Recipe created successfully"
	MsgRecipeUpdated         = "Recipe updated successfully"
	MsgRoleUpdated           = "User role updated successfully"
	MsgShareLinks            = "Share links generated successfully"
)
