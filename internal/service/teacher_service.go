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

type teacherRepository interface {
	List(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, id int64) (*models.Teacher, error)
	Create(ctx context.Context, t *models.Teacher) error
	Update(ctx context.Context, t *models.Teacher) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateTeacherRequest holds the payload for creating staff records.
type CreateTeacherRequest struct {
	UserID   int64   `json:"userId" validate:"required"`
	FullName string  `json:"fullName" validate:"required"`
	Subject  *string `json:"subject"`
}

// UpdateTeacherRequest merges only the supplied fields.
type UpdateTeacherRequest struct {
	UserID   *int64  `json:"userId" validate:"omitempty,min=1"`
	FullName *string `json:"fullName" validate:"omitempty,min=1"`
	Subject  *string `json:"subject"`
}

// TeacherService handles teacher staff record use-cases.
type TeacherService struct {
	repo      teacherRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeacherService constructs the teacher service.
func NewTeacherService(repo teacherRepository, validate *validator.Validate, logger *zap.Logger) *TeacherService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{repo: repo, validator: validate, logger: logger}
}

// List returns every teacher record.
func (s *TeacherService) List(ctx context.Context) ([]models.Teacher, error) {
	teachers, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}
	return teachers, nil
}

// Get returns one teacher record or a not-found error.
func (s *TeacherService) Get(ctx context.Context, id int64) (*models.Teacher, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}
	return t, nil
}

// Create registers a staff record linked to an existing user account.
func (s *TeacherService) Create(ctx context.Context, req CreateTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}
	t := &models.Teacher{
		UserID:   req.UserID,
		FullName: req.FullName,
		Subject:  req.Subject,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create teacher")
	}
	return t, nil
}

// Update merges the supplied fields onto an existing teacher record.
func (s *TeacherService) Update(ctx context.Context, id int64, req UpdateTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}
	if req.UserID != nil {
		t.UserID = *req.UserID
	}
	if req.FullName != nil {
		t.FullName = *req.FullName
	}
	if req.Subject != nil {
		t.Subject = req.Subject
	}
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update teacher")
	}
	return t, nil
}

// Delete removes a teacher record. The linked user account survives.
func (s *TeacherService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete teacher")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	return nil
}
