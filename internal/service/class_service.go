package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
	appErrors "github.com/ifsi-gestion/ifsi-api/pkg/errors"
)

type classRepository interface {
	List(ctx context.Context, filter models.ClassFilter) ([]models.Class, error)
	FindByID(ctx context.Context, id int64) (*models.Class, error)
	Create(ctx context.Context, c *models.Class) error
	Update(ctx context.Context, c *models.Class) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateClassRequest holds the payload for creating classes.
type CreateClassRequest struct {
	FiliereID    int64  `json:"filiereId" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Abbreviation string `json:"abbreviation" validate:"required"`
}

// UpdateClassRequest merges only the supplied fields.
type UpdateClassRequest struct {
	FiliereID    *int64  `json:"filiereId" validate:"omitempty,min=1"`
	Name         *string `json:"name" validate:"omitempty,min=1"`
	Abbreviation *string `json:"abbreviation" validate:"omitempty,min=1"`
}

// ClassService handles class use-cases.
type ClassService struct {
	repo      classRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassService constructs the class service.
func NewClassService(repo classRepository, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{repo: repo, validator: validate, logger: logger}
}

// List returns classes, optionally narrowed to one filiere.
func (s *ClassService) List(ctx context.Context, filter models.ClassFilter) ([]models.Class, error) {
	classes, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}
	return classes, nil
}

// Get returns one class or a not-found error.
func (s *ClassService) Get(ctx context.Context, id int64) (*models.Class, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}
	return c, nil
}

// Create registers a new class.
func (s *ClassService) Create(ctx context.Context, req CreateClassRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}
	c := &models.Class{
		FiliereID:    req.FiliereID,
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create class")
	}
	return c, nil
}

// Update merges the supplied fields onto an existing class.
func (s *ClassService) Update(ctx context.Context, id int64, req UpdateClassRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}
	if req.FiliereID != nil {
		c.FiliereID = *req.FiliereID
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Abbreviation != nil {
		c.Abbreviation = *req.Abbreviation
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update class")
	}
	return c, nil
}

// Delete removes a class.
func (s *ClassService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete class")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "class not found")
	}
	return nil
}
