package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
	appErrors "github.com/ifsi-gestion/ifsi-api/pkg/errors"
)

type userRepository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateUserRequest holds the payload for the admin user-management
// endpoints. Role defaults to admin, matching the account bootstrap flow.
type CreateUserRequest struct {
	Username string           `json:"username" validate:"required,min=3"`
	Password string           `json:"password" validate:"required,min=6"`
	FullName string           `json:"fullName" validate:"required"`
	Email    *string          `json:"email" validate:"omitempty,email"`
	Role     *models.UserRole `json:"role" validate:"omitempty,oneof=admin teacher student"`
}

// UpdateUserRequest merges only the supplied fields. A supplied password
// is re-hashed before storage.
type UpdateUserRequest struct {
	Username *string          `json:"username" validate:"omitempty,min=3"`
	Password *string          `json:"password" validate:"omitempty,min=6"`
	FullName *string          `json:"fullName" validate:"omitempty,min=1"`
	Email    *string          `json:"email" validate:"omitempty,email"`
	Role     *models.UserRole `json:"role" validate:"omitempty,oneof=admin teacher student"`
}

// UserService handles account management for administrators.
type UserService struct {
	repo      userRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService constructs the user service.
func NewUserService(repo userRepository, validate *validator.Validate, logger *zap.Logger) *UserService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, validator: validate, logger: logger}
}

// List returns every account. Password hashes are excluded by the model's
// JSON tags, not stripped here.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list users")
	}
	return users, nil
}

// Get returns one account or a not-found error.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}
	return u, nil
}

// Create registers an account with a bcrypt-hashed password. Usernames
// are unique across all accounts.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid user payload")
	}
	if _, err := s.repo.FindByUsername(ctx, req.Username); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "Username already exists")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check username")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
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
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create user")
	}
	return u, nil
}

// Update merges the supplied fields onto an existing account.
func (s *UserService) Update(ctx context.Context, id int64, req UpdateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid user payload")
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}
	if req.Username != nil && *req.Username != u.Username {
		if other, err := s.repo.FindByUsername(ctx, *req.Username); err == nil && other.ID != u.ID {
			return nil, appErrors.Clone(appErrors.ErrConflict, "Username already exists")
		} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check username")
		}
		u.Username = *req.Username
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
		}
		u.PasswordHash = string(hash)
	}
	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.Email != nil {
		u.Email = req.Email
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update user")
	}
	return u, nil
}

// Delete removes an account. Sessions already issued for it linger in
// the session store until they expire, but authentication rejects them
// as soon as the user row is gone.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete user")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	return nil
}
