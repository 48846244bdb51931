// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"passport/config"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   []byte        // Symmetric signing secret, immutable after startup.
	issuer   string        // Value of the 'iss' claim.
	audience string        // Value of the 'aud' claim.
	expiry   time.Duration // Token lifetime.
}

// NewJWTService is the constructor for jwtService.
// It refuses to construct a service without a sufficiently long signing secret;
// signing with an empty or default key is a fatal configuration error.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if err := cfg.ValidateSigningSecret(); err != nil {
		return nil, err
	}

	return &jwtService{
		secret:   []byte(cfg.Token.SigningSecret),
		issuer:   cfg.Token.Issuer,
		audience: cfg.Token.Audience,
		expiry:   cfg.TokenExpiry(),
	}, nil
}

// IssueToken creates a signed HS256 token carrying the user's identity claims.
// The 'jti' claim is freshly generated per call, so two tokens issued for the
// same user are never identical.
func (s *jwtService) IssueToken(user *entity.User) (string, error) {
	now := time.Now()

	claims := &service.Claims{
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", domainerrors.ErrInternalError.WrapMessage("failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks signature, expiry, issuer and audience and returns the
// embedded claims. Bad signature, expired, malformed and claim-mismatch cases
// all collapse to ErrTokenInvalid; callers only need valid/invalid.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token validation failed")
	}

	return claims, nil
}

// TokenDuration returns the configured token lifetime.
func (s *jwtService) TokenDuration() time.Duration {
	return s.expiry
}
