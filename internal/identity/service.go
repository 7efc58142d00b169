package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service manages registration and credential checks against the user store.
type Service struct {
	repo      Repository
	hasher    PasswordHasher
	validator *Validator
	now       func() time.Time
}

// NewService creates a new identity service.
func NewService(repo Repository, hasher PasswordHasher) *Service {
	return &Service{
		repo:      repo,
		hasher:    hasher,
		validator: NewValidator(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Register validates the input, rejects duplicate emails, and stores a new user
// with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if err := s.validator.Validate(in); err != nil {
		return User{}, err
	}

	// Fast path only; the store's unique constraint is authoritative.
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return User{}, ErrEmailTaken()
	} else if KindOf(err) != KindNotFound {
		return User{}, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if KindOf(err) != "" {
			return User{}, err
		}
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}

	return user, nil
}

// Authenticate verifies credentials and returns the matching user.
func (s *Service) Authenticate(ctx context.Context, creds Credentials) (User, error) {
	creds.Email = normalizeEmail(creds.Email)
	if err := s.validator.Validate(creds); err != nil {
		return User{}, err
	}

	user, err := s.repo.FindByEmail(ctx, creds.Email)
	if err != nil {
		return User{}, err
	}

	if err := s.hasher.Compare(user.PasswordHash, creds.Password); err != nil {
		return User{}, ErrInvalidPassword()
	}

	return user, nil
}

// Get returns the user with the given id.
func (s *Service) Get(ctx context.Context, id string) (User, error) {
	return s.repo.FindByID(ctx, id)
}
