package services

import (
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles customer password operations
type AuthService struct{}

var authService = &AuthService{}

func GetAuthService() *AuthService {
	return authService
}

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

// ValidatePassword checks if a password meets minimum requirements.
// Minimum 8 characters
func (s *AuthService) ValidatePassword(password string) bool {
	return len(password) >= 8
}
