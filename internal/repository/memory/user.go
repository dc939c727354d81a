package memory

import (
	"context"
	"database/sql"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

// UserStore is the in-memory user table view.
type UserStore struct {
	s *Store
}

func (r *UserStore) List(ctx context.Context) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.users.list(nil), nil
}

func (r *UserStore) FindByID(ctx context.Context, id int64) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.users.get(id)
}

func (r *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users.list(nil) {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *UserStore) Create(ctx context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u.ID = r.s.users.alloc()
	r.s.users.put(u.ID, *u)
	return nil
}

func (r *UserStore) Update(ctx context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.users.update(u.ID, *u)
}

func (r *UserStore) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.users.delete(id), nil
}
