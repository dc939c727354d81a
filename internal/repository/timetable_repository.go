package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

const timetableColumns = `id, class_id, subject_id, teacher_id, room_id, day_of_week, start_time, end_time`

// TimetableRepository manages persistence for timetable slots.
type TimetableRepository struct {
	db *sqlx.DB
}

// NewTimetableRepository constructs a TimetableRepository.
func NewTimetableRepository(db *sqlx.DB) *TimetableRepository {
	return &TimetableRepository{db: db}
}

// List returns timetable slots, honoring at most one equality filter.
func (r *TimetableRepository) List(ctx context.Context, filter models.TimetableFilter) ([]models.Timetable, error) {
	query := `SELECT ` + timetableColumns + ` FROM timetables`
	args := []interface{}{}
	switch {
	case filter.ClassID != nil:
		query += ` WHERE class_id = $1`
		args = append(args, *filter.ClassID)
	case filter.TeacherID != nil:
		query += ` WHERE teacher_id = $1`
		args = append(args, *filter.TeacherID)
	case filter.DayOfWeek != nil:
		query += ` WHERE day_of_week = $1`
		args = append(args, *filter.DayOfWeek)
	}
	query += ` ORDER BY id`

	slots := []models.Timetable{}
	if err := r.db.SelectContext(ctx, &slots, query, args...); err != nil {
		return nil, fmt.Errorf("list timetables: %w", err)
	}
	return slots, nil
}

// FindByID fetches a timetable slot by id.
func (r *TimetableRepository) FindByID(ctx context.Context, id int64) (*models.Timetable, error) {
	query := `SELECT ` + timetableColumns + ` FROM timetables WHERE id = $1`
	var t models.Timetable
	if err := r.db.GetContext(ctx, &t, query, id); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a new timetable slot.
func (r *TimetableRepository) Create(ctx context.Context, t *models.Timetable) error {
	const query = `INSERT INTO timetables (class_id, subject_id, teacher_id, room_id, day_of_week, start_time, end_time)
        VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		t.ClassID, t.SubjectID, t.TeacherID, t.RoomID, t.DayOfWeek, t.StartTime, t.EndTime,
	).Scan(&t.ID); err != nil {
		return fmt.Errorf("create timetable: %w", err)
	}
	return nil
}

// Update writes the full merged record back.
func (r *TimetableRepository) Update(ctx context.Context, t *models.Timetable) error {
	const query = `UPDATE timetables SET class_id = :class_id, subject_id = :subject_id, teacher_id = :teacher_id,
        room_id = :room_id, day_of_week = :day_of_week, start_time = :start_time, end_time = :end_time WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, t); err != nil {
		return fmt.Errorf("update timetable: %w", err)
	}
	return nil
}

// Delete removes a timetable slot.
func (r *TimetableRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM timetables WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete timetable: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete timetable: %w", err)
	}
	return affected > 0, nil
}
