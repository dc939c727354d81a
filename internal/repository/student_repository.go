package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

const studentColumns = `id, full_name, id_card_number, phone, address, email, filiere_id, class_id, status, documents`

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns students, optionally narrowed to one class.
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students`
	args := []interface{}{}
	if filter.ClassID != nil {
		query += ` WHERE class_id = $1`
		args = append(args, *filter.ClassID)
	}
	query += ` ORDER BY id`

	students := []models.Student{}
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// FindByID fetches a student by id.
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	var st models.Student
	if err := r.db.GetContext(ctx, &st, query, id); err != nil {
		return nil, err
	}
	return &st, nil
}

// Create inserts a new student.
func (r *StudentRepository) Create(ctx context.Context, st *models.Student) error {
	const query = `INSERT INTO students (full_name, id_card_number, phone, address, email, filiere_id, class_id, status, documents)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		st.FullName, st.IDCardNumber, st.Phone, st.Address, st.Email,
		st.FiliereID, st.ClassID, st.Status, st.Documents,
	).Scan(&st.ID); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// Update writes the full merged record back.
func (r *StudentRepository) Update(ctx context.Context, st *models.Student) error {
	const query = `UPDATE students SET full_name = :full_name, id_card_number = :id_card_number, phone = :phone,
        address = :address, email = :email, filiere_id = :filiere_id, class_id = :class_id,
        status = :status, documents = :documents WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, st); err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	return nil
}

// Delete removes a student.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete student: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete student: %w", err)
	}
	return affected > 0, nil
}
