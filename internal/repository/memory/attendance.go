package memory

import (
	"context"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

// AttendanceStore is the in-memory classroom attendance table view.
type AttendanceStore struct {
	s *Store
}

func (r *AttendanceStore) List(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var match func(models.Attendance) bool
	switch {
	case filter.StudentID != nil:
		id := *filter.StudentID
		match = func(a models.Attendance) bool { return a.StudentID == id }
	case filter.Date != nil:
		date := *filter.Date
		match = func(a models.Attendance) bool { return a.Date == date }
	}
	return r.s.attendance.list(match), nil
}

func (r *AttendanceStore) FindByID(ctx context.Context, id int64) (*models.Attendance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.attendance.get(id)
}

func (r *AttendanceStore) Create(ctx context.Context, a *models.Attendance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a.ID = r.s.attendance.alloc()
	r.s.attendance.put(a.ID, *a)
	return nil
}

func (r *AttendanceStore) Update(ctx context.Context, a *models.Attendance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.attendance.update(a.ID, *a)
}

func (r *AttendanceStore) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.attendance.delete(id), nil
}

// InternshipAttendanceStore is the in-memory internship attendance view.
type InternshipAttendanceStore struct {
	s *Store
}

func (r *InternshipAttendanceStore) List(ctx context.Context, filter models.InternshipAttendanceFilter) ([]models.InternshipAttendance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var match func(models.InternshipAttendance) bool
	switch {
	case filter.InternshipID != nil:
		id := *filter.InternshipID
		match = func(a models.InternshipAttendance) bool { return a.InternshipID == id }
	case filter.StudentID != nil:
		id := *filter.StudentID
		match = func(a models.InternshipAttendance) bool { return a.StudentID == id }
	case filter.Date != nil:
		date := *filter.Date
		match = func(a models.InternshipAttendance) bool { return a.Date == date }
	}
	return r.s.internshipAttendance.list(match), nil
}

func (r *InternshipAttendanceStore) FindByID(ctx context.Context, id int64) (*models.InternshipAttendance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.internshipAttendance.get(id)
}

func (r *InternshipAttendanceStore) Create(ctx context.Context, a *models.InternshipAttendance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a.ID = r.s.internshipAttendance.alloc()
	r.s.internshipAttendance.put(a.ID, *a)
	return nil
}

func (r *InternshipAttendanceStore) Update(ctx context.Context, a *models.InternshipAttendance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.internshipAttendance.update(a.ID, *a)
}

func (r *InternshipAttendanceStore) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.internshipAttendance.delete(id), nil
}
