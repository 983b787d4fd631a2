package service

import (
	"errors"
	"strings"

	"chat-mvp/backend/pkg/jwt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Verifier checks a credential pair against an identity source. The fixed
// two-user list is one trivial implementation; a real user store would slot in
// here without touching callers.
type Verifier interface {
	Verify(username, password string) bool
}

// FixedUserVerifier accepts a fixed allow-list of usernames sharing a single
// password. Usernames are compared case-insensitively, the password exactly.
type FixedUserVerifier struct {
	usernames []string
	password  string
}

func NewFixedUserVerifier(usernames []string, password string) *FixedUserVerifier {
	return &FixedUserVerifier{usernames: usernames, password: password}
}

func (v *FixedUserVerifier) Verify(username, password string) bool {
	if password != v.password {
		return false
	}
	for _, u := range v.usernames {
		if strings.EqualFold(u, username) {
			return true
		}
	}
	return false
}

// AuthService validates login credentials and issues tokens
type AuthService struct {
	verifier   Verifier
	jwtService *jwt.Service
}

func NewAuthService(verifier Verifier, jwtService *jwt.Service) *AuthService {
	return &AuthService{verifier: verifier, jwtService: jwtService}
}

// Login returns a signed token for valid credentials. The token carries the
// username exactly as submitted, case included. Unknown user and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (string, error) {
	if !s.verifier.Verify(username, password) {
		return "", ErrInvalidCredentials
	}

	return s.jwtService.GenerateToken(username)
}
