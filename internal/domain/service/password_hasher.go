// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying key derivation algorithm, keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted, self-describing hash from a plaintext password.
	// Two calls with the same password produce different hashes.
	Hash(password string) (string, error)

	// Verify re-derives the key from the candidate password and compares it to
	// the stored hash in constant time. Malformed hashes verify as false.
	Verify(password, hash string) bool

	// ValidatePasswordStrength checks a plaintext password against the
	// configured strength requirements.
	ValidatePasswordStrength(password string) error
}
