// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/crypto/pbkdf2"

	"passport/config"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"
	"passport/internal/errors"
)

const (
	// algorithmTag versions the hash format. A future algorithm change gets a
	// new tag and Verify keeps accepting old hashes.
	algorithmTag = "pbkdf2-sha256"

	saltLength = 16
	keyLength  = 32
)

// encodedPartCount is the number of '$'-separated segments in a stored hash:
// algorithm tag, iteration count, salt, derived key.
const encodedPartCount = 4

var hashEncoding = base64.RawURLEncoding

// pbkdf2Hasher is a concrete implementation of the PasswordHasher interface
// using PBKDF2-HMAC-SHA256.
type pbkdf2Hasher struct {
	iterations int
	strength   *config.PasswordStrengthConfig
}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewPBKDF2Hasher(cfg *config.Config) service.PasswordHasher {
	return &pbkdf2Hasher{
		iterations: cfg.HashIterations(),
		strength:   cfg.PasswordStrength,
	}
}

// Hash derives a key from the password with a fresh random salt and encodes
// algorithm tag, iteration count, salt and key into one self-describing string.
func (h *pbkdf2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		// Entropy source failure is not recoverable for this request.
		return "", errors.Wrap(err, "failed to generate salt")
	}

	key := pbkdf2.Key([]byte(password), salt, h.iterations, keyLength, sha256.New)

	encoded := strings.Join([]string{
		algorithmTag,
		strconv.Itoa(h.iterations),
		hashEncoding.EncodeToString(salt),
		hashEncoding.EncodeToString(key),
	}, "$")

	return encoded, nil
}

// Verify re-derives the key from the candidate password using the parameters
// stored in the hash and compares in constant time. A malformed hash is not a
// crash condition; it simply does not verify.
func (h *pbkdf2Hasher) Verify(password, encodedHash string) bool {
	iterations, salt, storedKey, ok := decodeHash(encodedHash)
	if !ok {
		return false
	}

	derived := pbkdf2.Key([]byte(password), salt, iterations, len(storedKey), sha256.New)

	return subtle.ConstantTimeCompare(derived, storedKey) == 1
}

// decodeHash splits a stored hash into its parameters.
func decodeHash(encodedHash string) (iterations int, salt, key []byte, ok bool) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != encodedPartCount || parts[0] != algorithmTag {
		return 0, nil, nil, false
	}

	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return 0, nil, nil, false
	}

	salt, err = hashEncoding.DecodeString(parts[2])
	if err != nil || len(salt) == 0 {
		return 0, nil, nil, false
	}

	key, err = hashEncoding.DecodeString(parts[3])
	if err != nil || len(key) == 0 {
		return 0, nil, nil, false
	}

	return iterations, salt, key, true
}

// ValidatePasswordStrength checks a plaintext password against the configured
// strength requirements. With no configuration only a minimum length applies.
func (h *pbkdf2Hasher) ValidatePasswordStrength(password string) error {
	minLength := 8
	maxLength := 0
	requireUpper, requireLower, requireNumbers, requireSpecial := false, false, false, false

	if h.strength != nil {
		if h.strength.MinLength > 0 {
			minLength = h.strength.MinLength
		}
		maxLength = h.strength.MaxLength
		requireUpper = h.strength.RequireUppercase
		requireLower = h.strength.RequireLowercase
		requireNumbers = h.strength.RequireNumbers
		requireSpecial = h.strength.RequireSpecial
	}

	if len(password) < minLength {
		return domainerrors.ErrPasswordStrength.WrapMessage(
			"password must be at least " + strconv.Itoa(minLength) + " characters long")
	}
	if maxLength > 0 && len(password) > maxLength {
		return domainerrors.ErrPasswordStrength.WrapMessage(
			"password must be at most " + strconv.Itoa(maxLength) + " characters long")
	}
	if requireUpper && !containsClass(password, unicode.IsUpper) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one uppercase letter")
	}
	if requireLower && !containsClass(password, unicode.IsLower) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one lowercase letter")
	}
	if requireNumbers && !containsClass(password, unicode.IsDigit) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one number")
	}
	if requireSpecial && !containsClass(password, isSpecialRune) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one special character")
	}

	return nil
}

func containsClass(s string, class func(rune) bool) bool {
	for _, r := range s {
		if class(r) {
			return true
		}
	}

	return false
}

func isSpecialRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r)
}
