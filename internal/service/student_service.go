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

type studentRepository interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error)
	FindByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, st *models.Student) error
	Update(ctx context.Context, st *models.Student) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateStudentRequest holds the payload for registering students.
// Filiere and class are optional; status defaults to Actif.
type CreateStudentRequest struct {
	FullName     string                `json:"fullName" validate:"required"`
	IDCardNumber *string               `json:"idCardNumber"`
	Phone        *string               `json:"phone"`
	Address      *string               `json:"address"`
	Email        *string               `json:"email" validate:"omitempty,email"`
	FiliereID    *int64                `json:"filiereId" validate:"omitempty,min=1"`
	ClassID      *int64                `json:"classId" validate:"omitempty,min=1"`
	Status       *models.StudentStatus `json:"status" validate:"omitempty,oneof=Actif Suspendu Diplômé Exclu"`
	Documents    *string               `json:"documents"`
}

// UpdateStudentRequest merges only the supplied fields.
type UpdateStudentRequest struct {
	FullName     *string               `json:"fullName" validate:"omitempty,min=1"`
	IDCardNumber *string               `json:"idCardNumber"`
	Phone        *string               `json:"phone"`
	Address      *string               `json:"address"`
	Email        *string               `json:"email" validate:"omitempty,email"`
	FiliereID    *int64                `json:"filiereId" validate:"omitempty,min=1"`
	ClassID      *int64                `json:"classId" validate:"omitempty,min=1"`
	Status       *models.StudentStatus `json:"status" validate:"omitempty,oneof=Actif Suspendu Diplômé Exclu"`
	Documents    *string               `json:"documents"`
}

// StudentService handles student use-cases.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, logger: logger}
}

// List returns students, optionally narrowed to one class.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	students, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// Get returns one student or a not-found error.
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return st, nil
}

// Create registers a new student.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	status := models.StudentActive
	if req.Status != nil {
		status = *req.Status
	}
	st := &models.Student{
		FullName:     req.FullName,
		IDCardNumber: req.IDCardNumber,
		Phone:        req.Phone,
		Address:      req.Address,
		Email:        req.Email,
		FiliereID:    req.FiliereID,
		ClassID:      req.ClassID,
		Status:       status,
		Documents:    req.Documents,
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}
	return st, nil
}

// Update merges the supplied fields onto an existing student.
func (s *StudentService) Update(ctx context.Context, id int64, req UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	if req.FullName != nil {
		st.FullName = *req.FullName
	}
	if req.IDCardNumber != nil {
		st.IDCardNumber = req.IDCardNumber
	}
	if req.Phone != nil {
		st.Phone = req.Phone
	}
	if req.Address != nil {
		st.Address = req.Address
	}
	if req.Email != nil {
		st.Email = req.Email
	}
	if req.FiliereID != nil {
		st.FiliereID = req.FiliereID
	}
	if req.ClassID != nil {
		st.ClassID = req.ClassID
	}
	if req.Status != nil {
		st.Status = *req.Status
	}
	if req.Documents != nil {
		st.Documents = req.Documents
	}
	if err := s.repo.Update(ctx, st); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}
	return st, nil
}

// Delete removes a student record. Attendance and internships referencing
// the student are not touched.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete student")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return nil
}
