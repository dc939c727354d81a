// Package repository contains the PostgreSQL-backed persistence layer.
// Every repository mirrors a contract also satisfied by the in-memory demo
// store under repository/memory.
package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

// FiliereRepository manages persistence for filiere records.
type FiliereRepository struct {
	db *sqlx.DB
}

// NewFiliereRepository constructs a FiliereRepository.
func NewFiliereRepository(db *sqlx.DB) *FiliereRepository {
	return &FiliereRepository{db: db}
}

// List returns all filieres ordered by id.
func (r *FiliereRepository) List(ctx context.Context) ([]models.Filiere, error) {
	const query = `SELECT id, name, abbreviation, num_years FROM filieres ORDER BY id`
	filieres := []models.Filiere{}
	if err := r.db.SelectContext(ctx, &filieres, query); err != nil {
		return nil, fmt.Errorf("list filieres: %w", err)
	}
	return filieres, nil
}

// FindByID fetches a filiere by id. sql.ErrNoRows signals absence.
func (r *FiliereRepository) FindByID(ctx context.Context, id int64) (*models.Filiere, error) {
	const query = `SELECT id, name, abbreviation, num_years FROM filieres WHERE id = $1`
	var f models.Filiere
	if err := r.db.GetContext(ctx, &f, query, id); err != nil {
		return nil, err
	}
	return &f, nil
}

// Create inserts a new filiere and assigns its generated id.
func (r *FiliereRepository) Create(ctx context.Context, f *models.Filiere) error {
	const query = `INSERT INTO filieres (name, abbreviation, num_years) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, f.Name, f.Abbreviation, f.NumYears).Scan(&f.ID); err != nil {
		return fmt.Errorf("create filiere: %w", err)
	}
	return nil
}

// Update writes the full merged record back.
func (r *FiliereRepository) Update(ctx context.Context, f *models.Filiere) error {
	const query = `UPDATE filieres SET name = :name, abbreviation = :abbreviation, num_years = :num_years WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, f); err != nil {
		return fmt.Errorf("update filiere: %w", err)
	}
	return nil
}

// Delete removes a filiere. No cascade; dependent rows keep their ids.
func (r *FiliereRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM filieres WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete filiere: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete filiere: %w", err)
	}
	return affected > 0, nil
}
