// Package service declares the ports that usecases call for work done outside
// the database: credentials, push delivery, messaging and QR rendering.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrTokenExpired is returned for a well-formed token past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for any other parse or signature failure.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims defines the custom claims for the JWT tokens. Access tokens carry only
// the subject; Purpose is set on password reset tokens.
type Claims struct {
	Purpose string `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *Claims) UserID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(ErrTokenInvalid, "subject is not a user id")
	}

	return id, nil
}

// PasswordHasher stores passwords one-way. Check never errors; a malformed
// hash simply does not match.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

// PasswordHashLookup returns the current password hash of a user.
type PasswordHashLookup func(userID uuid.UUID) (string, error)

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken issues a bearer token for the user.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// ValidateAccessToken returns ErrTokenExpired or ErrTokenInvalid on failure.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// GenerateResetToken issues a password reset token bound to the current password hash.
	GenerateResetToken(userID uuid.UUID, passwordHash string) (string, error)

	// ValidateResetToken verifies a reset token against the user's current hash.
	ValidateResetToken(tokenString string, lookup PasswordHashLookup) (uuid.UUID, error)

	// AccessTokenTTL returns the lifetime of access tokens.
	AccessTokenTTL() time.Duration
}
