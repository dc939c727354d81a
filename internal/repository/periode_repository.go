package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

// PeriodeRepository manages persistence for periode de stage records.
type PeriodeRepository struct {
	db *sqlx.DB
}

// NewPeriodeRepository constructs a PeriodeRepository.
func NewPeriodeRepository(db *sqlx.DB) *PeriodeRepository {
	return &PeriodeRepository{db: db}
}

// List returns all periodes.
func (r *PeriodeRepository) List(ctx context.Context) ([]models.PeriodeDeStage, error) {
	const query = `SELECT id, name, start_date, end_date FROM periode_de_stages ORDER BY id`
	periodes := []models.PeriodeDeStage{}
	if err := r.db.SelectContext(ctx, &periodes, query); err != nil {
		return nil, fmt.Errorf("list periodes: %w", err)
	}
	return periodes, nil
}

// FindByID fetches a periode by id.
func (r *PeriodeRepository) FindByID(ctx context.Context, id int64) (*models.PeriodeDeStage, error) {
	const query = `SELECT id, name, start_date, end_date FROM periode_de_stages WHERE id = $1`
	var p models.PeriodeDeStage
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new periode.
func (r *PeriodeRepository) Create(ctx context.Context, p *models.PeriodeDeStage) error {
	const query = `INSERT INTO periode_de_stages (name, start_date, end_date) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, p.Name, p.StartDate, p.EndDate).Scan(&p.ID); err != nil {
		return fmt.Errorf("create periode: %w", err)
	}
	return nil
}

// Update writes the full merged record back.
func (r *PeriodeRepository) Update(ctx context.Context, p *models.PeriodeDeStage) error {
	const query = `UPDATE periode_de_stages SET name = :name, start_date = :start_date, end_date = :end_date WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("update periode: %w", err)
	}
	return nil
}

// Delete removes a periode.
func (r *PeriodeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM periode_de_stages WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete periode: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete periode: %w", err)
	}
	return affected > 0, nil
}
