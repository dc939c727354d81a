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

type subjectRepository interface {
	List(ctx context.Context) ([]models.Subject, error)
	FindByID(ctx context.Context, id int64) (*models.Subject, error)
	Create(ctx context.Context, sub *models.Subject) error
	Update(ctx context.Context, sub *models.Subject) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type roomRepository interface {
	List(ctx context.Context) ([]models.Room, error)
	FindByID(ctx context.Context, id int64) (*models.Room, error)
	Create(ctx context.Context, r *models.Room) error
	Update(ctx context.Context, r *models.Room) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type timetableRepository interface {
	List(ctx context.Context, filter models.TimetableFilter) ([]models.Timetable, error)
	FindByID(ctx context.Context, id int64) (*models.Timetable, error)
	Create(ctx context.Context, t *models.Timetable) error
	Update(ctx context.Context, t *models.Timetable) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateSubjectRequest holds the payload for creating subjects.
type CreateSubjectRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateSubjectRequest merges only the supplied fields.
type UpdateSubjectRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
}

// SubjectService handles subject use-cases.
type SubjectService struct {
	repo      subjectRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSubjectService constructs the subject service.
func NewSubjectService(repo subjectRepository, validate *validator.Validate, logger *zap.Logger) *SubjectService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubjectService{repo: repo, validator: validate, logger: logger}
}

func (s *SubjectService) List(ctx context.Context) ([]models.Subject, error) {
	subjects, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list subjects")
	}
	return subjects, nil
}

func (s *SubjectService) Get(ctx context.Context, id int64) (*models.Subject, error) {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load subject")
	}
	return sub, nil
}

func (s *SubjectService) Create(ctx context.Context, req CreateSubjectRequest) (*models.Subject, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subject payload")
	}
	sub := &models.Subject{Name: req.Name}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create subject")
	}
	return sub, nil
}

func (s *SubjectService) Update(ctx context.Context, id int64, req UpdateSubjectRequest) (*models.Subject, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subject payload")
	}
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load subject")
	}
	if req.Name != nil {
		sub.Name = *req.Name
	}
	if err := s.repo.Update(ctx, sub); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update subject")
	}
	return sub, nil
}

func (s *SubjectService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete subject")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "subject not found")
	}
	return nil
}

// CreateRoomRequest holds the payload for creating rooms.
type CreateRoomRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateRoomRequest merges only the supplied fields.
type UpdateRoomRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
}

// RoomService handles room use-cases.
type RoomService struct {
	repo      roomRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRoomService constructs the room service.
func NewRoomService(repo roomRepository, validate *validator.Validate, logger *zap.Logger) *RoomService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoomService{repo: repo, validator: validate, logger: logger}
}

func (s *RoomService) List(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list rooms")
	}
	return rooms, nil
}

func (s *RoomService) Get(ctx context.Context, id int64) (*models.Room, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "room not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load room")
	}
	return r, nil
}

func (s *RoomService) Create(ctx context.Context, req CreateRoomRequest) (*models.Room, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid room payload")
	}
	r := &models.Room{Name: req.Name}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create room")
	}
	return r, nil
}

func (s *RoomService) Update(ctx context.Context, id int64, req UpdateRoomRequest) (*models.Room, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid room payload")
	}
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "room not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load room")
	}
	if req.Name != nil {
		r.Name = *req.Name
	}
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update room")
	}
	return r, nil
}

func (s *RoomService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete room")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "room not found")
	}
	return nil
}

// CreateTimetableRequest holds the payload for one weekly slot. DayOfWeek
// runs 0 (Sunday) through 6; times are "HH:MM" strings.
type CreateTimetableRequest struct {
	ClassID   int64  `json:"classId" validate:"required"`
	SubjectID int64  `json:"subjectId" validate:"required"`
	TeacherID int64  `json:"teacherId" validate:"required"`
	RoomID    int64  `json:"roomId" validate:"required"`
	DayOfWeek int    `json:"dayOfWeek" validate:"gte=0,lte=6"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime" validate:"required,datetime=15:04"`
}

// UpdateTimetableRequest merges only the supplied fields.
type UpdateTimetableRequest struct {
	ClassID   *int64  `json:"classId" validate:"omitempty,min=1"`
	SubjectID *int64  `json:"subjectId" validate:"omitempty,min=1"`
	TeacherID *int64  `json:"teacherId" validate:"omitempty,min=1"`
	RoomID    *int64  `json:"roomId" validate:"omitempty,min=1"`
	DayOfWeek *int    `json:"dayOfWeek" validate:"omitempty,gte=0,lte=6"`
	StartTime *string `json:"startTime" validate:"omitempty,datetime=15:04"`
	EndTime   *string `json:"endTime" validate:"omitempty,datetime=15:04"`
}

// TimetableService handles weekly timetable use-cases.
type TimetableService struct {
	repo      timetableRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTimetableService constructs the timetable service.
func NewTimetableService(repo timetableRepository, validate *validator.Validate, logger *zap.Logger) *TimetableService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimetableService{repo: repo, validator: validate, logger: logger}
}

// List returns slots, optionally narrowed by class, teacher or day.
func (s *TimetableService) List(ctx context.Context, filter models.TimetableFilter) ([]models.Timetable, error) {
	slots, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list timetables")
	}
	return slots, nil
}

func (s *TimetableService) Get(ctx context.Context, id int64) (*models.Timetable, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "timetable not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}
	return t, nil
}

// Create registers a weekly slot. Overlapping slots for the same room or
// teacher are accepted; conflict detection is left to the planner UI.
func (s *TimetableService) Create(ctx context.Context, req CreateTimetableRequest) (*models.Timetable, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timetable payload")
	}
	t := &models.Timetable{
		ClassID:   req.ClassID,
		SubjectID: req.SubjectID,
		TeacherID: req.TeacherID,
		RoomID:    req.RoomID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create timetable")
	}
	return t, nil
}

func (s *TimetableService) Update(ctx context.Context, id int64, req UpdateTimetableRequest) (*models.Timetable, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timetable payload")
	}
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "timetable not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}
	if req.ClassID != nil {
		t.ClassID = *req.ClassID
	}
	if req.SubjectID != nil {
		t.SubjectID = *req.SubjectID
	}
	if req.TeacherID != nil {
		t.TeacherID = *req.TeacherID
	}
	if req.RoomID != nil {
		t.RoomID = *req.RoomID
	}
	if req.DayOfWeek != nil {
		t.DayOfWeek = *req.DayOfWeek
	}
	if req.StartTime != nil {
		t.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		t.EndTime = *req.EndTime
	}
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update timetable")
	}
	return t, nil
}

func (s *TimetableService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete timetable")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "timetable not found")
	}
	return nil
}
