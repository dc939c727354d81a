package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

// ServiceRepository manages persistence for clinical service records.
type ServiceRepository struct {
	db *sqlx.DB
}

// NewServiceRepository constructs a ServiceRepository.
func NewServiceRepository(db *sqlx.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// List returns all services.
func (r *ServiceRepository) List(ctx context.Context) ([]models.Service, error) {
	const query = `SELECT id, name, location FROM services ORDER BY id`
	services := []models.Service{}
	if err := r.db.SelectContext(ctx, &services, query); err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

// FindByID fetches a service by id.
func (r *ServiceRepository) FindByID(ctx context.Context, id int64) (*models.Service, error) {
	const query = `SELECT id, name, location FROM services WHERE id = $1`
	var svc models.Service
	if err := r.db.GetContext(ctx, &svc, query, id); err != nil {
		return nil, err
	}
	return &svc, nil
}

// Create inserts a new service.
func (r *ServiceRepository) Create(ctx context.Context, svc *models.Service) error {
	const query = `INSERT INTO services (name, location) VALUES ($1, $2) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, svc.Name, svc.Location).Scan(&svc.ID); err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	return nil
}

// Update writes the full merged record back.
func (r *ServiceRepository) Update(ctx context.Context, svc *models.Service) error {
	const query = `UPDATE services SET name = :name, location = :location WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, svc); err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// Delete removes a service.
func (r *ServiceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete service: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete service: %w", err)
	}
	return affected > 0, nil
}
