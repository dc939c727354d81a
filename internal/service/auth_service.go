package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
	"github.com/ifsi-gestion/ifsi-api/internal/session"
	appErrors "github.com/ifsi-gestion/ifsi-api/pkg/errors"
)

// RegisterRequest holds the payload for the public registration endpoint.
type RegisterRequest struct {
	Username string           `json:"username" validate:"required,min=3"`
	Password string           `json:"password" validate:"required,min=6"`
	FullName string           `json:"fullName" validate:"required"`
	Email    *string          `json:"email" validate:"omitempty,email"`
	Role     *models.UserRole `json:"role" validate:"omitempty,oneof=admin teacher student"`
}

// LoginRequest holds login credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthService issues and revokes login sessions.
type AuthService struct {
	users      userRepository
	sessions   session.Store
	validator  *validator.Validate
	logger     *zap.Logger
	sessionTTL time.Duration
	now        func() time.Time
}

// NewAuthService constructs the auth service. ttl is the fixed session
// lifetime applied at login.
func NewAuthService(users userRepository, sessions session.Store, ttl time.Duration, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		validator:  validate,
		sessionTTL: ttl,
		logger:     logger,
		now:        time.Now,
	}
}

// Register creates an account and logs it in immediately, returning the
// new user together with a fresh session.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*models.User, *models.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}
	if _, err := s.users.FindByUsername(ctx, req.Username); err == nil {
		return nil, nil, appErrors.Clone(appErrors.ErrConflict, "Username already exists")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check username")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}
	role := models.RoleAdmin
	if req.Role != nil {
		role = *req.Role
	}
	u := &models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
		FullName:     req.FullName,
		Email:        req.Email,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create user")
	}
	sess, err := s.issueSession(ctx, u.ID)
	if err != nil {
		return nil, nil, err
	}
	s.logger.Info("user registered", zap.Int64("user_id", u.ID), zap.String("role", string(u.Role)))
	return u, sess, nil
}

// Login verifies credentials and issues a session. Unknown usernames and
// wrong passwords produce the same error; bcrypt comparison keeps the
// timing of both paths close.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*models.User, *models.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}
	u, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Burn a bcrypt comparison so unknown usernames are not faster.
			_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5B1dN6mN1G1zS0a7uK8QxWf1u0hG2"), []byte(req.Password))
			return nil, nil, appErrors.Clone(appErrors.ErrInvalidCredentials, appErrors.ErrInvalidCredentials.Message)
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, appErrors.Clone(appErrors.ErrInvalidCredentials, appErrors.ErrInvalidCredentials.Message)
	}
	sess, err := s.issueSession(ctx, u.ID)
	if err != nil {
		return nil, nil, err
	}
	s.logger.Info("user logged in", zap.Int64("user_id", u.ID))
	return u, sess, nil
}

// Logout revokes the session immediately. Revoking an unknown token is
// not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to revoke session")
	}
	return nil
}

// Authenticate resolves a token to its user. Expired or unknown tokens
// and sessions pointing at deleted users all yield ErrUnauthorized.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	sess, err := s.sessions.Find(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, appErrors.ErrUnauthorized.Message)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load session")
	}
	u, err := s.users.FindByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, appErrors.ErrUnauthorized.Message)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}
	return u, nil
}

// SessionTTL reports the fixed session lifetime, used to size cookies.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

func (s *AuthService) issueSession(ctx context.Context, userID int64) (*models.Session, error) {
	token, err := session.NewToken()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to generate session token")
	}
	now := s.now()
	sess := &models.Session{
		ID:        uuid.NewString(),
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save session")
	}
	return sess, nil
}
