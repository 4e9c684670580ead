package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"hometasks/internal/model"
)

// Credential pairs a login with its bcrypt hash and the account it
// unlocks. Credentials live outside the employee directory on purpose.
type Credential struct {
	Username     string
	PasswordHash string
	User         model.User
}

type AuthService interface {
	// Login verifies the username/password pair and returns the matching
	// account. Any failure, unknown user or bad password alike, yields
	// the same error so callers cannot probe for valid usernames.
	Login(ctx context.Context, username, password string) (*model.User, error)
}

type authService struct {
	credentials []Credential
}

var _ AuthService = (*authService)(nil)

func NewAuthService(credentials []Credential) AuthService {
	return &authService{credentials: credentials}
}

func (s *authService) Login(_ context.Context, username, password string) (*model.User, error) {
	for i := range s.credentials {
		if s.credentials[i].Username != username {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(
			[]byte(s.credentials[i].PasswordHash), []byte(password)); err != nil {
			return nil, ErrInvalidCredentials
		}
		user := s.credentials[i].User
		return &user, nil
	}
	return nil, ErrInvalidCredentials
}
