package memory

import (
	"context"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

// FiliereStore is the in-memory filiere table view.
type FiliereStore struct {
	s *Store
}

func (r *FiliereStore) List(ctx context.Context) ([]models.Filiere, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.filieres.list(nil), nil
}

func (r *FiliereStore) FindByID(ctx context.Context, id int64) (*models.Filiere, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.filieres.get(id)
}

func (r *FiliereStore) Create(ctx context.Context, f *models.Filiere) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f.ID = r.s.filieres.alloc()
	r.s.filieres.put(f.ID, *f)
	return nil
}

func (r *FiliereStore) Update(ctx context.Context, f *models.Filiere) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.filieres.update(f.ID, *f)
}

func (r *FiliereStore) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.filieres.delete(id), nil
}
