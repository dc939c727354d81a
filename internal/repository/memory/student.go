package memory

import (
	"context"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

// StudentStore is the in-memory student table view.
type StudentStore struct {
	s *Store
}

func (r *StudentStore) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var match func(models.Student) bool
	if filter.ClassID != nil {
		id := *filter.ClassID
		match = func(st models.Student) bool { return st.ClassID != nil && *st.ClassID == id }
	}
	return r.s.students.list(match), nil
}

func (r *StudentStore) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.students.get(id)
}

func (r *StudentStore) Create(ctx context.Context, st *models.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st.ID = r.s.students.alloc()
	r.s.students.put(st.ID, *st)
	return nil
}

func (r *StudentStore) Update(ctx context.Context, st *models.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.students.update(st.ID, *st)
}

func (r *StudentStore) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.students.delete(id), nil
}
