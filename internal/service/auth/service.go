package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ai-store/internal/domain"
	tokenrepo "ai-store/internal/repository/token"
	userrepo "ai-store/internal/repository/user"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when username/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
	// ErrValidation wraps rejected input.
	ErrValidation = errors.New("invalid input")
)

// Service handles login, token validation and profile updates.
type Service struct {
	repo      userrepo.Repository
	tokens    *tokenManager
	accessTTL time.Duration
}

// New creates a Service with sane defaults.
func New(repo userrepo.Repository, tokens tokenrepo.Repository) *Service {
	return &Service{
		repo:      repo,
		tokens:    newTokenManager(tokens),
		accessTTL: 2 * time.Hour,
	}
}

// Login validates credentials and returns the user plus an issued access token.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", fmt.Errorf("%w: username and password required", ErrValidation)
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(ctx, u.ID, s.accessTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Logout revokes the presented token. Unknown tokens are not an error; the
// client is dropping its copy either way.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}

// LookupByToken returns the user bound to a valid access token.
func (s *Service) LookupByToken(ctx context.Context, token string) (*domain.User, error) {
	meta, ok := s.tokens.Validate(ctx, token)
	if !ok {
		return nil, ErrInvalidToken
	}
	u, err := s.repo.GetByID(ctx, meta.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return u, nil
}

// ProfileInput carries optional profile changes. Nil pointer fields are left
// untouched; a password change requires the current password.
type ProfileInput struct {
	Username        *string `json:"username,omitempty"`
	Email           *string `json:"email,omitempty"`
	CurrentPassword string  `json:"currentPassword,omitempty"`
	NewPassword     string  `json:"newPassword,omitempty"`
}

// UpdateProfile applies the requested changes and returns the updated user.
func (s *Service) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*domain.User, error) {
	current, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	update := userrepo.UpdateInput{Email: in.Email}
	if in.Username != nil {
		name := strings.TrimSpace(*in.Username)
		if name == "" {
			return nil, fmt.Errorf("%w: username must not be empty", ErrValidation)
		}
		update.Username = &name
	}
	if in.NewPassword != "" {
		if in.CurrentPassword == "" {
			return nil, fmt.Errorf("%w: current password required to change password", ErrValidation)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(current.PasswordHash), []byte(in.CurrentPassword)); err != nil {
			return nil, ErrInvalidCredentials
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash := string(hashed)
		update.PasswordHash = &hash
	}
	if update.Username == nil && update.Email == nil && update.PasswordHash == nil {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	return s.repo.Update(ctx, userID, update)
}

// AccessTTLSeconds exposes the access token lifetime in seconds.
func (s *Service) AccessTTLSeconds() int {
	return int(s.accessTTL.Seconds())
}
