package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"finman/internal/core"
)

// dummyHash is a valid bcrypt hash compared against when the username is
// unknown, so both login failure paths cost a hash verification.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService registers users and verifies logins.
type AuthService struct {
	store UserStore
}

func NewAuthService(store UserStore) *AuthService {
	return &AuthService{store: store}
}

// Register hashes the password with a per-call random salt and inserts the
// user. A taken username fails with core.ErrDuplicateUsername and writes
// nothing.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	if username == "" {
		return core.ErrEmptyUsername
	}
	if password == "" {
		return core.ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.store.CreateUser(ctx, username, string(hash)); err != nil {
		return err
	}
	return nil
}

// Authenticate returns the user's id when the password matches. Unknown
// username and wrong password both come back as core.ErrInvalidCredentials
// with no distinguishing signal; neither the plaintext nor the stored hash
// is logged or returned.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (int64, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("look up user: %w", err)
	}
	if user == nil {
		// Burn a comparison so the unknown-username path costs the same
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return 0, core.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return 0, core.ErrInvalidCredentials
	}

	slog.InfoContext(ctx, "Login successful", "user_id", user.ID)
	return user.ID, nil
}
