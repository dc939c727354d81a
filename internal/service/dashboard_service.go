package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
	appErrors "github.com/ifsi-gestion/ifsi-api/pkg/errors"
)

// DashboardStats is the aggregate snapshot behind the landing page.
type DashboardStats struct {
	TotalStudents      int `json:"totalStudents"`
	ActiveStudents     int `json:"activeStudents"`
	TotalFilieres      int `json:"totalFilieres"`
	TotalClasses       int `json:"totalClasses"`
	TotalServices      int `json:"totalServices"`
	OngoingInternships int `json:"ongoingInternships"`
	PresentToday       int `json:"presentToday"`
	AbsentToday        int `json:"absentToday"`
	LateToday          int `json:"lateToday"`
}

// DashboardService aggregates counts across the other stores. It reuses
// the list operations rather than dedicated count queries; the school
// datasets are small enough that this stays cheap.
type DashboardService struct {
	students    studentRepository
	filieres    filiereRepository
	classes     classRepository
	services    serviceRepository
	internships internshipRepository
	attendance  attendanceRepository
	logger      *zap.Logger
	now         func() time.Time
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(
	students studentRepository,
	filieres filiereRepository,
	classes classRepository,
	services serviceRepository,
	internships internshipRepository,
	attendance attendanceRepository,
	logger *zap.Logger,
) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		students:    students,
		filieres:    filieres,
		classes:     classes,
		services:    services,
		internships: internships,
		attendance:  attendance,
		logger:      logger,
		now:         time.Now,
	}
}

// Stats composes the dashboard snapshot for the current day.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	students, err := s.students.List(ctx, models.StudentFilter{})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}
	stats.TotalStudents = len(students)
	for _, st := range students {
		if st.Status == models.StudentActive {
			stats.ActiveStudents++
		}
	}

	filieres, err := s.filieres.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load filieres")
	}
	stats.TotalFilieres = len(filieres)

	classes, err := s.classes.List(ctx, models.ClassFilter{})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load classes")
	}
	stats.TotalClasses = len(classes)

	services, err := s.services.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load services")
	}
	stats.TotalServices = len(services)

	today := s.now().Format("2006-01-02")

	internships, err := s.internships.List(ctx, models.InternshipFilter{})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load internships")
	}
	for _, in := range internships {
		if in.ValidationStatus == models.ValidationValidated && in.StartDate <= today && today <= in.EndDate {
			stats.OngoingInternships++
		}
	}

	records, err := s.attendance.List(ctx, models.AttendanceFilter{Date: &today})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load attendance")
	}
	for _, rec := range records {
		switch rec.Status {
		case models.AttendancePresent:
			stats.PresentToday++
		case models.AttendanceLate:
			stats.LateToday++
		default:
			stats.AbsentToday++
		}
	}

	return stats, nil
}
