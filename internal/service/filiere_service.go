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

type filiereRepository interface {
	List(ctx context.Context) ([]models.Filiere, error)
	FindByID(ctx context.Context, id int64) (*models.Filiere, error)
	Create(ctx context.Context, f *models.Filiere) error
	Update(ctx context.Context, f *models.Filiere) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateFiliereRequest holds the payload for creating filieres.
type CreateFiliereRequest struct {
	Name         string `json:"name" validate:"required"`
	Abbreviation string `json:"abbreviation" validate:"required"`
	NumYears     int    `json:"numYears" validate:"required,min=1"`
}

// UpdateFiliereRequest merges only the supplied fields.
type UpdateFiliereRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1"`
	Abbreviation *string `json:"abbreviation" validate:"omitempty,min=1"`
	NumYears     *int    `json:"numYears" validate:"omitempty,min=1"`
}

// FiliereService handles filiere use-cases.
type FiliereService struct {
	repo      filiereRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFiliereService constructs the filiere service.
func NewFiliereService(repo filiereRepository, validate *validator.Validate, logger *zap.Logger) *FiliereService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FiliereService{repo: repo, validator: validate, logger: logger}
}

// List returns every filiere.
func (s *FiliereService) List(ctx context.Context) ([]models.Filiere, error) {
	filieres, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list filieres")
	}
	return filieres, nil
}

// Get returns one filiere or a not-found error.
func (s *FiliereService) Get(ctx context.Context, id int64) (*models.Filiere, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "filiere not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load filiere")
	}
	return f, nil
}

// Create registers a new filiere.
func (s *FiliereService) Create(ctx context.Context, req CreateFiliereRequest) (*models.Filiere, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid filiere payload")
	}
	f := &models.Filiere{
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
		NumYears:     req.NumYears,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create filiere")
	}
	return f, nil
}

// Update merges the supplied fields onto an existing filiere.
func (s *FiliereService) Update(ctx context.Context, id int64, req UpdateFiliereRequest) (*models.Filiere, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid filiere payload")
	}
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "filiere not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load filiere")
	}
	if req.Name != nil {
		f.Name = *req.Name
	}
	if req.Abbreviation != nil {
		f.Abbreviation = *req.Abbreviation
	}
	if req.NumYears != nil {
		f.NumYears = *req.NumYears
	}
	if err := s.repo.Update(ctx, f); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update filiere")
	}
	return f, nil
}

// Delete removes a filiere. Dependent classes and students are left
// untouched; referential integrity is not checked here.
func (s *FiliereService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete filiere")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "filiere not found")
	}
	return nil
}
