package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Service manages the account lifecycle: registration and credential
// verification. Hashing is bcrypt with a fixed cost; verification recomputes
// the hash rather than comparing stored values directly.
type Service struct {
	repo Repository
	cost int
}

// NewService creates an identity service. A cost outside bcrypt's valid range
// falls back to bcrypt.DefaultCost.
func NewService(repo Repository, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{repo: repo, cost: bcryptCost}
}

// RegisterInput carries the fields collected by the signup form.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Phone    string
}

// Register hashes the password and persists a new user. The insert itself is
// the uniqueness check: the store's unique constraint closes the window a
// separate existence query would leave open under concurrent requests.
func (s *Service) Register(ctx context.Context, input RegisterInput) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		FullName:     strings.TrimSpace(input.FullName),
		Email:        NormalizeEmail(input.Email),
		PasswordHash: string(hash),
		Phone:        strings.TrimSpace(input.Phone),
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, user)
	if err != nil {
		return User{}, err
	}
	user.ID = id

	return user, nil
}

// Login verifies the email/password pair and returns the matching user.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	user, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return User{}, ErrInvalidCredentials
		}
		// Anything else means the stored hash is not a bcrypt hash at all.
		return User{}, ErrCorruptCredential
	}

	// Last-login bookkeeping must not fail an otherwise valid login.
	_ = s.repo.TouchLastLogin(ctx, user.ID, time.Now())

	return user, nil
}

// GetByID loads a user by primary key.
func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	return s.repo.FindByID(ctx, id)
}

// NormalizeEmail lowercases and trims an email address so uniqueness is
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
