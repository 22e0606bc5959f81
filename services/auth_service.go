package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles password hashing and invite token plumbing for
// dashboard accounts
type AuthService struct{}

var authService = &AuthService{}

// GetAuthService returns the shared auth service
func GetAuthService() *AuthService {
	return authService
}

// ════════════════════════════════════════════════════════════
// Password Management
// ════════════════════════════════════════════════════════════

// HashPassword hashes a password using bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *AuthService) VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ════════════════════════════════════════════════════════════
// Invite Token Management
// ════════════════════════════════════════════════════════════

// GenerateInviteToken generates a cryptographically secure random token
// Returns 64 character hex string (32 bytes)
func (s *AuthService) GenerateInviteToken() (string, error) {
	token := make([]byte, 32)
	if _, err := rand.Read(token); err != nil {
		return "", err
	}
	return hex.EncodeToString(token), nil
}

// HashToken hashes a token using SHA256 for storage in database
// Raw invite tokens only ever live in the emailed link
func (s *AuthService) HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
