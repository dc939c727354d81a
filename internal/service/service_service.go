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

type serviceRepository interface {
	List(ctx context.Context) ([]models.Service, error)
	FindByID(ctx context.Context, id int64) (*models.Service, error)
	Create(ctx context.Context, sv *models.Service) error
	Update(ctx context.Context, sv *models.Service) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateServiceRequest holds the payload for creating clinical services.
type CreateServiceRequest struct {
	Name     string  `json:"name" validate:"required"`
	Location *string `json:"location"`
}

// UpdateServiceRequest merges only the supplied fields.
type UpdateServiceRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Location *string `json:"location"`
}

// ServiceService manages the catalog of clinical services hosting internships.
type ServiceService struct {
	repo      serviceRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewServiceService constructs the clinical service catalog service.
func NewServiceService(repo serviceRepository, validate *validator.Validate, logger *zap.Logger) *ServiceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ServiceService{repo: repo, validator: validate, logger: logger}
}

// List returns every clinical service.
func (s *ServiceService) List(ctx context.Context) ([]models.Service, error) {
	services, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list services")
	}
	return services, nil
}

// Get returns one clinical service or a not-found error.
func (s *ServiceService) Get(ctx context.Context, id int64) (*models.Service, error) {
	sv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "service not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load service")
	}
	return sv, nil
}

// Create registers a new clinical service.
func (s *ServiceService) Create(ctx context.Context, req CreateServiceRequest) (*models.Service, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid service payload")
	}
	sv := &models.Service{
		Name:     req.Name,
		Location: req.Location,
	}
	if err := s.repo.Create(ctx, sv); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create service")
	}
	return sv, nil
}

// Update merges the supplied fields onto an existing clinical service.
func (s *ServiceService) Update(ctx context.Context, id int64, req UpdateServiceRequest) (*models.Service, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid service payload")
	}
	sv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "service not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load service")
	}
	if req.Name != nil {
		sv.Name = *req.Name
	}
	if req.Location != nil {
		sv.Location = req.Location
	}
	if err := s.repo.Update(ctx, sv); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update service")
	}
	return sv, nil
}

// Delete removes a clinical service.
func (s *ServiceService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete service")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "service not found")
	}
	return nil
}
