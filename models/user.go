package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the system-assigned unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique address used to log in and to receive
	// password reset tokens.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// Role is the access level of the account. Defaults to [RoleViewer].
	Role Role `json:"role"`

	// ResetToken is the pending password reset token, if any.
	// ResetToken and ResetTokenExpires are either both nil or both set.
	ResetToken *string `json:"-"`

	// ResetTokenExpires is the instant after which ResetToken stops being
	// accepted.
	ResetTokenExpires *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasActiveResetToken reports whether u carries a reset token that is still
// valid at now.
func (u User) HasActiveResetToken(now time.Time) bool {
	return u.ResetToken != nil && u.ResetTokenExpires != nil && u.ResetTokenExpires.After(now)
}

// Author is the public projection of a [User] embedded in recipe responses.
type Author struct {
	UserID int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
