package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminExists        = errors.New("admin already exists")
	ErrMissingFields      = errors.New("username and password are required")
)

type Service struct {
	repo AdminRepository
}

func NewService(repo AdminRepository) *Service {
	return &Service{repo: repo}
}

// REGISTER (first admin only)
func (s *Service) Register(ctx context.Context, username, password string) (*Admin, error) {
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}

	exists, err := s.repo.AnyExists(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAdminExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	admin := &Admin{
		Username:     username,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// LOGIN returns the admin and a signed session token.
func (s *Service) Login(ctx context.Context, username, password string) (*Admin, string, error) {
	if username == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	admin, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, ErrAdminNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(admin.PasswordHash),
		[]byte(password),
	)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := GenerateToken(admin.ID, admin.Username)
	if err != nil {
		return nil, "", err
	}

	return admin, token, nil
}
