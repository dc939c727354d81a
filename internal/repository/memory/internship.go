package memory

import (
	"context"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

// InternshipStore is the in-memory internship table view.
type InternshipStore struct {
	s *Store
}

func (r *InternshipStore) List(ctx context.Context, filter models.InternshipFilter) ([]models.Internship, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var match func(models.Internship) bool
	switch {
	case filter.StudentID != nil:
		id := *filter.StudentID
		match = func(i models.Internship) bool { return i.StudentID == id }
	case filter.ServiceID != nil:
		id := *filter.ServiceID
		match = func(i models.Internship) bool { return i.ServiceID == id }
	case filter.PeriodeID != nil:
		id := *filter.PeriodeID
		match = func(i models.Internship) bool { return i.PeriodeDeStageID == id }
	}
	return r.s.internships.list(match), nil
}

func (r *InternshipStore) FindByID(ctx context.Context, id int64) (*models.Internship, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.internships.get(id)
}

func (r *InternshipStore) Create(ctx context.Context, i *models.Internship) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i.ID = r.s.internships.alloc()
	r.s.internships.put(i.ID, *i)
	return nil
}

func (r *InternshipStore) Update(ctx context.Context, i *models.Internship) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.internships.update(i.ID, *i)
}

func (r *InternshipStore) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.internships.delete(id), nil
}
