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

type periodeRepository interface {
	List(ctx context.Context) ([]models.PeriodeDeStage, error)
	FindByID(ctx context.Context, id int64) (*models.PeriodeDeStage, error)
	Create(ctx context.Context, p *models.PeriodeDeStage) error
	Update(ctx context.Context, p *models.PeriodeDeStage) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreatePeriodeRequest holds the payload for creating internship periods.
type CreatePeriodeRequest struct {
	Name      string `json:"name" validate:"required"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

// UpdatePeriodeRequest merges only the supplied fields.
type UpdatePeriodeRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1"`
	StartDate *string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

// PeriodeService handles periode de stage use-cases.
type PeriodeService struct {
	repo      periodeRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPeriodeService constructs the periode service.
func NewPeriodeService(repo periodeRepository, validate *validator.Validate, logger *zap.Logger) *PeriodeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PeriodeService{repo: repo, validator: validate, logger: logger}
}

// List returns every periode de stage.
func (s *PeriodeService) List(ctx context.Context) ([]models.PeriodeDeStage, error) {
	periodes, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list periodes")
	}
	return periodes, nil
}

// Get returns one periode or a not-found error.
func (s *PeriodeService) Get(ctx context.Context, id int64) (*models.PeriodeDeStage, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "periode not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load periode")
	}
	return p, nil
}

// Create registers a new periode de stage. Date ordering is not checked
// server-side; both bounds only need to be valid ISO dates.
func (s *PeriodeService) Create(ctx context.Context, req CreatePeriodeRequest) (*models.PeriodeDeStage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid periode payload")
	}
	p := &models.PeriodeDeStage{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create periode")
	}
	return p, nil
}

// Update merges the supplied fields onto an existing periode.
func (s *PeriodeService) Update(ctx context.Context, id int64, req UpdatePeriodeRequest) (*models.PeriodeDeStage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid periode payload")
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "periode not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load periode")
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.StartDate != nil {
		p.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		p.EndDate = *req.EndDate
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update periode")
	}
	return p, nil
}

// Delete removes a periode de stage.
func (s *PeriodeService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete periode")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "periode not found")
	}
	return nil
}
