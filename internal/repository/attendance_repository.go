package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

// AttendanceRepository manages persistence for classroom attendance.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs an AttendanceRepository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// List returns attendance records, honoring at most one equality filter.
func (r *AttendanceRepository) List(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error) {
	query := `SELECT id, student_id, date, status, remarks FROM attendance`
	args := []interface{}{}
	switch {
	case filter.StudentID != nil:
		query += ` WHERE student_id = $1`
		args = append(args, *filter.StudentID)
	case filter.Date != nil:
		query += ` WHERE date = $1`
		args = append(args, *filter.Date)
	}
	query += ` ORDER BY id`

	records := []models.Attendance{}
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return records, nil
}

// FindByID fetches an attendance record by id.
func (r *AttendanceRepository) FindByID(ctx context.Context, id int64) (*models.Attendance, error) {
	const query = `SELECT id, student_id, date, status, remarks FROM attendance WHERE id = $1`
	var a models.Attendance
	if err := r.db.GetContext(ctx, &a, query, id); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new attendance record.
func (r *AttendanceRepository) Create(ctx context.Context, a *models.Attendance) error {
	const query = `INSERT INTO attendance (student_id, date, status, remarks) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, a.StudentID, a.Date, a.Status, a.Remarks).Scan(&a.ID); err != nil {
		return fmt.Errorf("create attendance: %w", err)
	}
	return nil
}

// Update writes the full merged record back.
func (r *AttendanceRepository) Update(ctx context.Context, a *models.Attendance) error {
	const query = `UPDATE attendance SET student_id = :student_id, date = :date, status = :status, remarks = :remarks WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, a); err != nil {
		return fmt.Errorf("update attendance: %w", err)
	}
	return nil
}

// Delete removes an attendance record.
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete attendance: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete attendance: %w", err)
	}
	return affected > 0, nil
}

// InternshipAttendanceRepository manages attendance taken at clinical sites.
type InternshipAttendanceRepository struct {
	db *sqlx.DB
}

// NewInternshipAttendanceRepository constructs an InternshipAttendanceRepository.
func NewInternshipAttendanceRepository(db *sqlx.DB) *InternshipAttendanceRepository {
	return &InternshipAttendanceRepository{db: db}
}

// List returns internship attendance records, one filter at a time.
func (r *InternshipAttendanceRepository) List(ctx context.Context, filter models.InternshipAttendanceFilter) ([]models.InternshipAttendance, error) {
	query := `SELECT id, internship_id, student_id, date, status, remarks FROM internship_attendance`
	args := []interface{}{}
	switch {
	case filter.InternshipID != nil:
		query += ` WHERE internship_id = $1`
		args = append(args, *filter.InternshipID)
	case filter.StudentID != nil:
		query += ` WHERE student_id = $1`
		args = append(args, *filter.StudentID)
	case filter.Date != nil:
		query += ` WHERE date = $1`
		args = append(args, *filter.Date)
	}
	query += ` ORDER BY id`

	records := []models.InternshipAttendance{}
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("list internship attendance: %w", err)
	}
	return records, nil
}

// FindByID fetches an internship attendance record by id.
func (r *InternshipAttendanceRepository) FindByID(ctx context.Context, id int64) (*models.InternshipAttendance, error) {
	const query = `SELECT id, internship_id, student_id, date, status, remarks FROM internship_attendance WHERE id = $1`
	var a models.InternshipAttendance
	if err := r.db.GetContext(ctx, &a, query, id); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new internship attendance record.
func (r *InternshipAttendanceRepository) Create(ctx context.Context, a *models.InternshipAttendance) error {
	const query = `INSERT INTO internship_attendance (internship_id, student_id, date, status, remarks)
        VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, a.InternshipID, a.StudentID, a.Date, a.Status, a.Remarks).Scan(&a.ID); err != nil {
		return fmt.Errorf("create internship attendance: %w", err)
	}
	return nil
}

// Update writes the full merged record back.
func (r *InternshipAttendanceRepository) Update(ctx context.Context, a *models.InternshipAttendance) error {
	const query = `UPDATE internship_attendance SET internship_id = :internship_id, student_id = :student_id,
        date = :date, status = :status, remarks = :remarks WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, a); err != nil {
		return fmt.Errorf("update internship attendance: %w", err)
	}
	return nil
}

// Delete removes an internship attendance record.
func (r *InternshipAttendanceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM internship_attendance WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete internship attendance: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete internship attendance: %w", err)
	}
	return affected > 0, nil
}
