package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/vero/internal/config"
	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/internal/store"
	"github.com/MKhiriev/vero/internal/utils"
	"github.com/MKhiriev/vero/internal/validators"
	"github.com/MKhiriev/vero/models"
	"golang.org/x/crypto/bcrypt"
)

// dummyPassword is hashed once at construction. Unknown usernames are
// compared against that hash so both failure paths cost one bcrypt round.
const dummyPassword = "vero-dummy-password"

// authService is the concrete implementation of AuthService.
// It verifies bcrypt password hashes stored by a UserRepository and records
// successful logins in the audit log.
type authService struct {
	// userRepository is the data-access layer used to look up and upsert users.
	userRepository store.UserRepository

	// auditRepository receives a login entry after each successful login.
	auditRepository store.AuditRepository

	validator validators.Validator

	// ids generates ids and opaque encryption keys of seeded users.
	ids utils.IDGenerator

	// passwordCost is the bcrypt cost factor of new hashes.
	passwordCost int

	// dummyHash is a bcrypt hash of dummyPassword at passwordCost.
	dummyHash []byte

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with the password cost from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, auditRepository store.AuditRepository, cfg config.App, logger *logger.Logger) (AuthService, error) {
	cost := cfg.PasswordCost
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}

	dummyHash, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("error generating dummy password hash: %w", err)
	}

	return &authService{
		userRepository:  userRepository,
		auditRepository: auditRepository,
		validator:       validators.NewChatValidator(),
		ids:             utils.NewUUIDGenerator(),
		passwordCost:    cost,
		dummyHash:       dummyHash,
		now:             time.Now,
		logger:          logger,
	}, nil
}

// VerifyCredentials authenticates a user by username and password.
//
// It validates that both fields are non-empty, looks the account up by exact
// username and compares the bcrypt hash. On success last_login is updated and
// a login entry is appended to the audit log; an audit failure is only
// logged.
//
// Returns the authenticated user or:
//   - a *validators.ValidationError (ErrInvalidInput) for empty fields.
//   - ErrInvalidCredentials if the user does not exist or the password is wrong.
//   - a wrapped storage error otherwise.
func (a *authService) VerifyCredentials(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(req.Password))
		log.Info().Str("username", req.Username).Msg("login attempt for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Info().Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	loginAt := a.now().UTC()
	if err = a.userRepository.TouchLastLogin(ctx, user.ID, loginAt); err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("updating last login failed")
		return models.User{}, fmt.Errorf("updating last login failed: %w", err)
	}
	user.LastLogin = &loginAt
	user.UpdatedAt = loginAt

	entry := models.AuditEntry{
		UserID:    user.ID,
		Action:    models.AuditLogin,
		Timestamp: loginAt,
		Details:   map[string]any{"username": user.Username},
	}
	if err = a.auditRepository.Append(ctx, entry); err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("writing login audit entry failed")
	}

	return user, nil
}

// Whoami re-reads the session's user so that role changes and last login
// are reported fresh. A session whose user no longer exists is treated as
// unauthenticated.
func (a *authService) Whoami(ctx context.Context, session models.Session) (models.User, error) {
	if session.IsZero() {
		return models.User{}, ErrUnauthenticated
	}

	user, err := a.userRepository.FindByID(ctx, session.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		logger.FromContext(ctx).Info().Str("user_id", session.UserID).Msg("session user not found")
		return models.User{}, fmt.Errorf("%w: user not found", ErrUnauthenticated)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

func (a *authService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.passwordCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// SeedUser creates or re-seeds an account. It is used by the seeding tool
// and never exposed over HTTP.
func (a *authService) SeedUser(ctx context.Context, username, password string, role models.Role) (models.User, error) {
	if err := a.validator.Validate(ctx, models.LoginRequest{Username: username, Password: password}); err != nil {
		return models.User{}, err
	}
	if !role.Valid() {
		return models.User{}, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	hash, err := a.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	id, err := a.ids.Generate()
	if err != nil {
		return models.User{}, err
	}
	encryptionKey, err := a.ids.Generate()
	if err != nil {
		return models.User{}, err
	}

	now := a.now().UTC()
	user, err := a.userRepository.Upsert(ctx, models.User{
		ID:            id,
		Username:      username,
		PasswordHash:  hash,
		Role:          role,
		EncryptionKey: encryptionKey,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("user upsert failed: %w", err)
	}

	a.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Str("role", string(user.Role)).Msg("user seeded")

	return user, nil
}
