package auth

import (
	"strings"
	"testing"
	"time"

	"passport/config"
	"passport/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Token = &config.TokenConfig{
		SigningSecret: "test_signing_secret_key_very_long_for_testing",
		Issuer:        "passport-test",
		Audience:      "passport-clients",
		Expiry:        time.Hour,
	}

	return cfg
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Username: "john",
		Email:    "john@example.com",
		Active:   true,
	}
}

func TestJWTService_RejectsMissingOrShortSecret(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewJWTService(cfg)
	assert.Error(t, err)

	cfg.Token = &config.TokenConfig{SigningSecret: "short"}
	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	user := newTestUser()

	token, err := svc.IssueToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// Compact serialization: header.payload.signature
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Email, claims.Email)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, "passport-test", claims.Issuer)
}

func TestJWTService_UniqueTokenPerIssue(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	user := newTestUser()

	first, err := svc.IssueToken(user)
	require.NoError(t, err)
	second, err := svc.IssueToken(user)
	require.NoError(t, err)

	// Fresh jti per call: two tokens for the same user are never identical.
	assert.NotEqual(t, first, second)

	firstClaims, err := svc.ValidateToken(first)
	require.NoError(t, err)
	secondClaims, err := svc.ValidateToken(second)
	require.NoError(t, err)
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	cfg := newTestTokenConfig()
	cfg.Token.Expiry = -time.Minute

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.IssueToken(newTestUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedSignature(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	token, err := svc.IssueToken(newTestUser())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	signature := []byte(parts[2])
	if signature[0] == 'A' {
		signature[0] = 'B'
	} else {
		signature[0] = 'A'
	}
	tampered := strings.Join([]string{parts[0], parts[1], string(signature)}, ".")

	_, err = svc.ValidateToken(tampered)
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	otherCfg := newTestTokenConfig()
	otherCfg.Token.SigningSecret = "another_signing_secret_key_very_long_for_testing"
	otherSvc, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := otherSvc.IssueToken(newTestUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsIssuerAndAudienceMismatch(t *testing.T) {
	cfg := newTestTokenConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	otherIssuer := newTestTokenConfig()
	otherIssuer.Token.Issuer = "someone-else"
	issuerSvc, err := NewJWTService(otherIssuer)
	require.NoError(t, err)

	token, err := issuerSvc.IssueToken(newTestUser())
	require.NoError(t, err)
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)

	otherAudience := newTestTokenConfig()
	otherAudience.Token.Audience = "different-clients"
	audienceSvc, err := NewJWTService(otherAudience)
	require.NoError(t, err)

	token, err = audienceSvc.IssueToken(newTestUser())
	require.NoError(t, err)
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsMalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := svc.ValidateToken(token)
		assert.Error(t, err, "token %q should be invalid", token)
	}
}
