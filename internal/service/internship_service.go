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

type internshipRepository interface {
	List(ctx context.Context, filter models.InternshipFilter) ([]models.Internship, error)
	FindByID(ctx context.Context, id int64) (*models.Internship, error)
	Create(ctx context.Context, in *models.Internship) error
	Update(ctx context.Context, in *models.Internship) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateInternshipRequest holds the payload for placing a student in a
// service. Validation status defaults to Pending.
type CreateInternshipRequest struct {
	StudentID        int64                    `json:"studentId" validate:"required"`
	ServiceID        int64                    `json:"serviceId" validate:"required"`
	PeriodeDeStageID int64                    `json:"periodeDeStageId" validate:"required"`
	StartDate        string                   `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate          string                   `json:"endDate" validate:"required,datetime=2006-01-02"`
	ValidationStatus *models.ValidationStatus `json:"validationStatus" validate:"omitempty,oneof=Pending Validated Rejected"`
}

// UpdateInternshipRequest merges only the supplied fields.
type UpdateInternshipRequest struct {
	StudentID        *int64                   `json:"studentId" validate:"omitempty,min=1"`
	ServiceID        *int64                   `json:"serviceId" validate:"omitempty,min=1"`
	PeriodeDeStageID *int64                   `json:"periodeDeStageId" validate:"omitempty,min=1"`
	StartDate        *string                  `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate          *string                  `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	ValidationStatus *models.ValidationStatus `json:"validationStatus" validate:"omitempty,oneof=Pending Validated Rejected"`
}

// InternshipService handles internship placement use-cases.
type InternshipService struct {
	repo      internshipRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewInternshipService constructs the internship service.
func NewInternshipService(repo internshipRepository, validate *validator.Validate, logger *zap.Logger) *InternshipService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InternshipService{repo: repo, validator: validate, logger: logger}
}

// List returns internships, optionally narrowed by student, service or periode.
func (s *InternshipService) List(ctx context.Context, filter models.InternshipFilter) ([]models.Internship, error) {
	internships, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list internships")
	}
	return internships, nil
}

// Get returns one internship or a not-found error.
func (s *InternshipService) Get(ctx context.Context, id int64) (*models.Internship, error) {
	in, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "internship not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load internship")
	}
	return in, nil
}

// Create places a student in a clinical service for a periode de stage.
// Double placement of a student in the same periode is allowed.
func (s *InternshipService) Create(ctx context.Context, req CreateInternshipRequest) (*models.Internship, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid internship payload")
	}
	status := models.ValidationPending
	if req.ValidationStatus != nil {
		status = *req.ValidationStatus
	}
	in := &models.Internship{
		StudentID:        req.StudentID,
		ServiceID:        req.ServiceID,
		PeriodeDeStageID: req.PeriodeDeStageID,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		ValidationStatus: status,
	}
	if err := s.repo.Create(ctx, in); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create internship")
	}
	return in, nil
}

// Update merges the supplied fields onto an existing internship.
func (s *InternshipService) Update(ctx context.Context, id int64, req UpdateInternshipRequest) (*models.Internship, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid internship payload")
	}
	in, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "internship not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load internship")
	}
	if req.StudentID != nil {
		in.StudentID = *req.StudentID
	}
	if req.ServiceID != nil {
		in.ServiceID = *req.ServiceID
	}
	if req.PeriodeDeStageID != nil {
		in.PeriodeDeStageID = *req.PeriodeDeStageID
	}
	if req.StartDate != nil {
		in.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		in.EndDate = *req.EndDate
	}
	if req.ValidationStatus != nil {
		in.ValidationStatus = *req.ValidationStatus
	}
	if err := s.repo.Update(ctx, in); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update internship")
	}
	return in, nil
}

// Delete removes an internship placement.
func (s *InternshipService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete internship")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "internship not found")
	}
	return nil
}
