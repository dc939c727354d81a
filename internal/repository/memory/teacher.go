package memory

import (
	"context"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

// TeacherStore is the in-memory teacher table view.
type TeacherStore struct {
	s *Store
}

func (r *TeacherStore) List(ctx context.Context) ([]models.Teacher, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.teachers.list(nil), nil
}

func (r *TeacherStore) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.teachers.get(id)
}

func (r *TeacherStore) Create(ctx context.Context, t *models.Teacher) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t.ID = r.s.teachers.alloc()
	r.s.teachers.put(t.ID, *t)
	return nil
}

func (r *TeacherStore) Update(ctx context.Context, t *models.Teacher) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.teachers.update(t.ID, *t)
}

func (r *TeacherStore) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.teachers.delete(id), nil
}
