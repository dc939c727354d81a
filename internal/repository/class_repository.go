package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

// ClassRepository manages persistence for class records.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository constructs a ClassRepository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// List returns classes, optionally narrowed to one filiere.
func (r *ClassRepository) List(ctx context.Context, filter models.ClassFilter) ([]models.Class, error) {
	query := `SELECT id, filiere_id, name, abbreviation FROM classes`
	args := []interface{}{}
	if filter.FiliereID != nil {
		query += ` WHERE filiere_id = $1`
		args = append(args, *filter.FiliereID)
	}
	query += ` ORDER BY id`

	classes := []models.Class{}
	if err := r.db.SelectContext(ctx, &classes, query, args...); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

// FindByID fetches a class by id.
func (r *ClassRepository) FindByID(ctx context.Context, id int64) (*models.Class, error) {
	const query = `SELECT id, filiere_id, name, abbreviation FROM classes WHERE id = $1`
	var c models.Class
	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new class.
func (r *ClassRepository) Create(ctx context.Context, c *models.Class) error {
	const query = `INSERT INTO classes (filiere_id, name, abbreviation) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, c.FiliereID, c.Name, c.Abbreviation).Scan(&c.ID); err != nil {
		return fmt.Errorf("create class: %w", err)
	}
	return nil
}

// Update writes the full merged record back.
func (r *ClassRepository) Update(ctx context.Context, c *models.Class) error {
	const query = `UPDATE classes SET filiere_id = :filiere_id, name = :name, abbreviation = :abbreviation WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return fmt.Errorf("update class: %w", err)
	}
	return nil
}

// Delete removes a class.
func (r *ClassRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete class: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete class: %w", err)
	}
	return affected > 0, nil
}
