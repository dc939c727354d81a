package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

const internshipColumns = `id, student_id, service_id, periode_de_stage_id, start_date, end_date, validation_status`

// InternshipRepository manages persistence for internship placements.
type InternshipRepository struct {
	db *sqlx.DB
}

// NewInternshipRepository constructs an InternshipRepository.
func NewInternshipRepository(db *sqlx.DB) *InternshipRepository {
	return &InternshipRepository{db: db}
}

// List returns internships, honoring at most one equality filter.
func (r *InternshipRepository) List(ctx context.Context, filter models.InternshipFilter) ([]models.Internship, error) {
	query := `SELECT ` + internshipColumns + ` FROM internships`
	args := []interface{}{}
	switch {
	case filter.StudentID != nil:
		query += ` WHERE student_id = $1`
		args = append(args, *filter.StudentID)
	case filter.ServiceID != nil:
		query += ` WHERE service_id = $1`
		args = append(args, *filter.ServiceID)
	case filter.PeriodeID != nil:
		query += ` WHERE periode_de_stage_id = $1`
		args = append(args, *filter.PeriodeID)
	}
	query += ` ORDER BY id`

	internships := []models.Internship{}
	if err := r.db.SelectContext(ctx, &internships, query, args...); err != nil {
		return nil, fmt.Errorf("list internships: %w", err)
	}
	return internships, nil
}

// FindByID fetches an internship by id.
func (r *InternshipRepository) FindByID(ctx context.Context, id int64) (*models.Internship, error) {
	query := `SELECT ` + internshipColumns + ` FROM internships WHERE id = $1`
	var i models.Internship
	if err := r.db.GetContext(ctx, &i, query, id); err != nil {
		return nil, err
	}
	return &i, nil
}

// Create inserts a new internship.
func (r *InternshipRepository) Create(ctx context.Context, i *models.Internship) error {
	const query = `INSERT INTO internships (student_id, service_id, periode_de_stage_id, start_date, end_date, validation_status)
        VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		i.StudentID, i.ServiceID, i.PeriodeDeStageID, i.StartDate, i.EndDate, i.ValidationStatus,
	).Scan(&i.ID); err != nil {
		return fmt.Errorf("create internship: %w", err)
	}
	return nil
}

// Update writes the full merged record back.
func (r *InternshipRepository) Update(ctx context.Context, i *models.Internship) error {
	const query = `UPDATE internships SET student_id = :student_id, service_id = :service_id,
        periode_de_stage_id = :periode_de_stage_id, start_date = :start_date, end_date = :end_date,
        validation_status = :validation_status WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, i); err != nil {
		return fmt.Errorf("update internship: %w", err)
	}
	return nil
}

// Delete removes an internship.
func (r *InternshipRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM internships WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete internship: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete internship: %w", err)
	}
	return affected > 0, nil
}
