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

type attendanceRepository interface {
	List(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error)
	FindByID(ctx context.Context, id int64) (*models.Attendance, error)
	Create(ctx context.Context, a *models.Attendance) error
	Update(ctx context.Context, a *models.Attendance) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type internshipAttendanceRepository interface {
	List(ctx context.Context, filter models.InternshipAttendanceFilter) ([]models.InternshipAttendance, error)
	FindByID(ctx context.Context, id int64) (*models.InternshipAttendance, error)
	Create(ctx context.Context, a *models.InternshipAttendance) error
	Update(ctx context.Context, a *models.InternshipAttendance) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateAttendanceRequest holds the payload for one classroom attendance
// record. Status defaults to Absent when omitted.
type CreateAttendanceRequest struct {
	StudentID int64                    `json:"studentId" validate:"required"`
	Date      string                   `json:"date" validate:"required,datetime=2006-01-02"`
	Status    *models.AttendanceStatus `json:"status" validate:"omitempty,oneof=Present Absent Late"`
	Remarks   *string                  `json:"remarks"`
}

// UpdateAttendanceRequest merges only the supplied fields.
type UpdateAttendanceRequest struct {
	StudentID *int64                   `json:"studentId" validate:"omitempty,min=1"`
	Date      *string                  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status    *models.AttendanceStatus `json:"status" validate:"omitempty,oneof=Present Absent Late"`
	Remarks   *string                  `json:"remarks"`
}

// AttendanceService handles classroom attendance use-cases.
type AttendanceService struct {
	repo      attendanceRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAttendanceService constructs the classroom attendance service.
func NewAttendanceService(repo attendanceRepository, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{repo: repo, validator: validate, logger: logger}
}

// List returns attendance records, optionally narrowed by student or day.
func (s *AttendanceService) List(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list attendance")
	}
	return records, nil
}

// Get returns one attendance record or a not-found error.
func (s *AttendanceService) Get(ctx context.Context, id int64) (*models.Attendance, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "attendance record not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load attendance record")
	}
	return a, nil
}

// Create records attendance for one student and day. Duplicate records for
// the same student and day are allowed; the UI treats the newest as current.
func (s *AttendanceService) Create(ctx context.Context, req CreateAttendanceRequest) (*models.Attendance, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}
	status := models.AttendanceAbsent
	if req.Status != nil {
		status = *req.Status
	}
	a := &models.Attendance{
		StudentID: req.StudentID,
		Date:      req.Date,
		Status:    status,
		Remarks:   req.Remarks,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create attendance record")
	}
	return a, nil
}

// Update merges the supplied fields onto an existing attendance record.
func (s *AttendanceService) Update(ctx context.Context, id int64, req UpdateAttendanceRequest) (*models.Attendance, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "attendance record not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load attendance record")
	}
	if req.StudentID != nil {
		a.StudentID = *req.StudentID
	}
	if req.Date != nil {
		a.Date = *req.Date
	}
	if req.Status != nil {
		a.Status = *req.Status
	}
	if req.Remarks != nil {
		a.Remarks = req.Remarks
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update attendance record")
	}
	return a, nil
}

// Delete removes an attendance record.
func (s *AttendanceService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete attendance record")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "attendance record not found")
	}
	return nil
}

// CreateInternshipAttendanceRequest holds the payload for attendance taken
// at the clinical site. Status defaults to Absent when omitted.
type CreateInternshipAttendanceRequest struct {
	InternshipID int64                    `json:"internshipId" validate:"required"`
	StudentID    int64                    `json:"studentId" validate:"required"`
	Date         string                   `json:"date" validate:"required,datetime=2006-01-02"`
	Status       *models.AttendanceStatus `json:"status" validate:"omitempty,oneof=Present Absent Late"`
	Remarks      *string                  `json:"remarks"`
}

// UpdateInternshipAttendanceRequest merges only the supplied fields.
type UpdateInternshipAttendanceRequest struct {
	InternshipID *int64                   `json:"internshipId" validate:"omitempty,min=1"`
	StudentID    *int64                   `json:"studentId" validate:"omitempty,min=1"`
	Date         *string                  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status       *models.AttendanceStatus `json:"status" validate:"omitempty,oneof=Present Absent Late"`
	Remarks      *string                  `json:"remarks"`
}

// InternshipAttendanceService handles on-site attendance use-cases.
type InternshipAttendanceService struct {
	repo      internshipAttendanceRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewInternshipAttendanceService constructs the on-site attendance service.
func NewInternshipAttendanceService(repo internshipAttendanceRepository, validate *validator.Validate, logger *zap.Logger) *InternshipAttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InternshipAttendanceService{repo: repo, validator: validate, logger: logger}
}

// List returns on-site attendance records, optionally narrowed by
// internship, student or day.
func (s *InternshipAttendanceService) List(ctx context.Context, filter models.InternshipAttendanceFilter) ([]models.InternshipAttendance, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list internship attendance")
	}
	return records, nil
}

// Get returns one on-site attendance record or a not-found error.
func (s *InternshipAttendanceService) Get(ctx context.Context, id int64) (*models.InternshipAttendance, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "internship attendance record not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load internship attendance record")
	}
	return a, nil
}

// Create records on-site attendance. The student id is carried explicitly
// rather than resolved from the internship.
func (s *InternshipAttendanceService) Create(ctx context.Context, req CreateInternshipAttendanceRequest) (*models.InternshipAttendance, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid internship attendance payload")
	}
	status := models.AttendanceAbsent
	if req.Status != nil {
		status = *req.Status
	}
	a := &models.InternshipAttendance{
		InternshipID: req.InternshipID,
		StudentID:    req.StudentID,
		Date:         req.Date,
		Status:       status,
		Remarks:      req.Remarks,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create internship attendance record")
	}
	return a, nil
}

// Update merges the supplied fields onto an existing on-site record.
func (s *InternshipAttendanceService) Update(ctx context.Context, id int64, req UpdateInternshipAttendanceRequest) (*models.InternshipAttendance, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid internship attendance payload")
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "internship attendance record not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load internship attendance record")
	}
	if req.InternshipID != nil {
		a.InternshipID = *req.InternshipID
	}
	if req.StudentID != nil {
		a.StudentID = *req.StudentID
	}
	if req.Date != nil {
		a.Date = *req.Date
	}
	if req.Status != nil {
		a.Status = *req.Status
	}
	if req.Remarks != nil {
		a.Remarks = req.Remarks
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update internship attendance record")
	}
	return a, nil
}

// Delete removes an on-site attendance record.
func (s *InternshipAttendanceService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete internship attendance record")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "internship attendance record not found")
	}
	return nil
}
