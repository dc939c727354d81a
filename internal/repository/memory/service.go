package memory

import (
	"context"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

// ServiceStore is the in-memory clinical service table view.
type ServiceStore struct {
	s *Store
}

func (r *ServiceStore) List(ctx context.Context) ([]models.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.services.list(nil), nil
}

func (r *ServiceStore) FindByID(ctx context.Context, id int64) (*models.Service, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.services.get(id)
}

func (r *ServiceStore) Create(ctx context.Context, svc *models.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	svc.ID = r.s.services.alloc()
	r.s.services.put(svc.ID, *svc)
	return nil
}

func (r *ServiceStore) Update(ctx context.Context, svc *models.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.services.update(svc.ID, *svc)
}

func (r *ServiceStore) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.services.delete(id), nil
}

// PeriodeStore is the in-memory periode de stage table view.
type PeriodeStore struct {
	s *Store
}

func (r *PeriodeStore) List(ctx context.Context) ([]models.PeriodeDeStage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.periodes.list(nil), nil
}

func (r *PeriodeStore) FindByID(ctx context.Context, id int64) (*models.PeriodeDeStage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.periodes.get(id)
}

func (r *PeriodeStore) Create(ctx context.Context, p *models.PeriodeDeStage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.periodes.alloc()
	r.s.periodes.put(p.ID, *p)
	return nil
}

func (r *PeriodeStore) Update(ctx context.Context, p *models.PeriodeDeStage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.periodes.update(p.ID, *p)
}

func (r *PeriodeStore) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.periodes.delete(id), nil
}
