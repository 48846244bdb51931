package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"passport/internal/domain/entity"
)

// Claims defines the identity facts carried by a bearer token.
// The json tags are the wire names inside the token payload.
type Claims struct {
	Username string `json:"unique_name"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token construction from the use cases.
type TokenService interface {
	// IssueToken creates a signed, time-bounded token for an authenticated user.
	// Every call embeds a fresh token identifier, so two tokens for the same
	// user are never identical.
	IssueToken(user *entity.User) (string, error)

	// ValidateToken checks the signature, expiry, issuer and audience of a
	// token string and returns the embedded claims. Every failure mode
	// collapses to a single invalid-token error for the caller.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the configured token lifetime.
	TokenDuration() time.Duration
}
