package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

// TeacherRepository manages persistence for teacher staff records.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// List returns all teachers.
func (r *TeacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	const query = `SELECT id, user_id, full_name, subject FROM teachers ORDER BY id`
	teachers := []models.Teacher{}
	if err := r.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// FindByID fetches a teacher by id.
func (r *TeacherRepository) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	const query = `SELECT id, user_id, full_name, subject FROM teachers WHERE id = $1`
	var t models.Teacher
	if err := r.db.GetContext(ctx, &t, query, id); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a new teacher.
func (r *TeacherRepository) Create(ctx context.Context, t *models.Teacher) error {
	const query = `INSERT INTO teachers (user_id, full_name, subject) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, t.UserID, t.FullName, t.Subject).Scan(&t.ID); err != nil {
		return fmt.Errorf("create teacher: %w", err)
	}
	return nil
}

// Update writes the full merged record back.
func (r *TeacherRepository) Update(ctx context.Context, t *models.Teacher) error {
	const query = `UPDATE teachers SET user_id = :user_id, full_name = :full_name, subject = :subject WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, t); err != nil {
		return fmt.Errorf("update teacher: %w", err)
	}
	return nil
}

// Delete removes a teacher.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete teacher: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete teacher: %w", err)
	}
	return affected > 0, nil
}
