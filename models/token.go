package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a session token together with its verified claims: the standard
// registered set (sub, iss, iat, exp) plus the caller's role at login time.
// Sessions are stateless, so a role change only shows up in new tokens.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	Role Role `json:"role"`

	// SignedString is the header.payload.signature form sent as
	// "Authorization: Bearer <SignedString>".
	SignedString string `json:"-"`

	// UserID is the "sub" claim as a number, filled after verification.
	UserID int64 `json:"-"`
}

// SubjectUserID parses the "sub" claim, which carries the decimal user id.
func (t *Token) SubjectUserID() (int64, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error reading token subject: %w", err)
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token subject %q is not a user id: %w", sub, err)
	}
	return userID, nil
}

// Identity returns the caller described by the claims alone, without a
// stored user record.
func (t *Token) Identity() Identity {
	return Identity{UserID: t.UserID, Role: t.Role}
}

func (t *Token) String() string {
	return t.SignedString
}

// Identity is the authenticated principal attached to a request by the
// authorization gate.
type Identity struct {
	UserID int64 `json:"id"`
	Role   Role  `json:"role"`

	// User is the stored user record. It is nil when the identity was
	// built from token claims only.
	User *User `json:"-"`
}
