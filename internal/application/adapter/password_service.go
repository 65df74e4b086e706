// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService hashes, verifies, and vets passwords.
type PasswordService interface {
	// HashPassword hashes a plain text password.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password against its hash.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength checks the password meets the minimum
	// requirements before it is accepted at registration.
	ValidatePasswordStrength(password string) error
}
