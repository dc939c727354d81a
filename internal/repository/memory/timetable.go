package memory

import (
	"context"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

// SubjectStore is the in-memory subject table view.
type SubjectStore struct {
	s *Store
}

func (r *SubjectStore) List(ctx context.Context) ([]models.Subject, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.subjects.list(nil), nil
}

func (r *SubjectStore) FindByID(ctx context.Context, id int64) (*models.Subject, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.subjects.get(id)
}

func (r *SubjectStore) Create(ctx context.Context, sub *models.Subject) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sub.ID = r.s.subjects.alloc()
	r.s.subjects.put(sub.ID, *sub)
	return nil
}

func (r *SubjectStore) Update(ctx context.Context, sub *models.Subject) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.subjects.update(sub.ID, *sub)
}

func (r *SubjectStore) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.subjects.delete(id), nil
}

// RoomStore is the in-memory room table view.
type RoomStore struct {
	s *Store
}

func (r *RoomStore) List(ctx context.Context) ([]models.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.rooms.list(nil), nil
}

func (r *RoomStore) FindByID(ctx context.Context, id int64) (*models.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.rooms.get(id)
}

func (r *RoomStore) Create(ctx context.Context, room *models.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	room.ID = r.s.rooms.alloc()
	r.s.rooms.put(room.ID, *room)
	return nil
}

func (r *RoomStore) Update(ctx context.Context, room *models.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.rooms.update(room.ID, *room)
}

func (r *RoomStore) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.rooms.delete(id), nil
}

// TimetableStore is the in-memory timetable table view.
type TimetableStore struct {
	s *Store
}

func (r *TimetableStore) List(ctx context.Context, filter models.TimetableFilter) ([]models.Timetable, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var match func(models.Timetable) bool
	switch {
	case filter.ClassID != nil:
		id := *filter.ClassID
		match = func(t models.Timetable) bool { return t.ClassID == id }
	case filter.TeacherID != nil:
		id := *filter.TeacherID
		match = func(t models.Timetable) bool { return t.TeacherID == id }
	case filter.DayOfWeek != nil:
		day := *filter.DayOfWeek
		match = func(t models.Timetable) bool { return t.DayOfWeek == day }
	}
	return r.s.timetables.list(match), nil
}

func (r *TimetableStore) FindByID(ctx context.Context, id int64) (*models.Timetable, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.timetables.get(id)
}

func (r *TimetableStore) Create(ctx context.Context, t *models.Timetable) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t.ID = r.s.timetables.alloc()
	r.s.timetables.put(t.ID, *t)
	return nil
}

func (r *TimetableStore) Update(ctx context.Context, t *models.Timetable) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.timetables.update(t.ID, *t)
}

func (r *TimetableStore) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.timetables.delete(id), nil
}
