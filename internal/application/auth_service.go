package application

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/imf-ops/gadget-api/internal/domain/entity"
	repo "github.com/imf-ops/gadget-api/internal/domain/repository"
	"github.com/imf-ops/gadget-api/pkg/helpers"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService orchestrates signup (hash + persist) and login
// (verify + issue token).
type AuthService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(repo repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, JWT: jwt, Logger: logger}
}

// Signup hashes the password and persists a new operative account.
// A username collision surfaces as ErrUserExists.
func (s *AuthService) Signup(username, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Username: username, PasswordHash: hash}
	if err := s.Repo.Create(u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrUserExists
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", username).Error("signup persist failed")
		}
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and issues a bearer token bound to the user id.
// "unknown username" and "wrong password" are indistinguishable to the
// caller so usernames cannot be enumerated. Persistence failures other than
// not-found are passed through for the handler's 500 path.
func (s *AuthService) Login(username, password string) (string, time.Time, error) {
	u, err := s.Repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", time.Time{}, ErrInvalidCredentials
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", username).Error("login lookup failed")
		}
		return "", time.Time{}, err
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		}
		return "", time.Time{}, err
	}
	return token, exp, nil
}
