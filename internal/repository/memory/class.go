package memory

import (
	"context"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

// ClassStore is the in-memory class table view.
type ClassStore struct {
	s *Store
}

func (r *ClassStore) List(ctx context.Context, filter models.ClassFilter) ([]models.Class, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var match func(models.Class) bool
	if filter.FiliereID != nil {
		id := *filter.FiliereID
		match = func(c models.Class) bool { return c.FiliereID == id }
	}
	return r.s.classes.list(match), nil
}

func (r *ClassStore) FindByID(ctx context.Context, id int64) (*models.Class, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.classes.get(id)
}

func (r *ClassStore) Create(ctx context.Context, c *models.Class) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = r.s.classes.alloc()
	r.s.classes.put(c.ID, *c)
	return nil
}

func (r *ClassStore) Update(ctx context.Context, c *models.Class) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.classes.update(c.ID, *c)
}

func (r *ClassStore) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.classes.delete(id), nil
}
