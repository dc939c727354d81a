// Package memory provides the map-backed demo persistence layer. It
// satisfies the same per-entity contracts as the Postgres repositories so
// the service layer is storage-agnostic. Absent rows are reported with
// sql.ErrNoRows to keep error handling identical across both backends.
package memory

import (
	"database/sql"
	"sort"
	"sync"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

// table holds one entity's rows keyed by an auto-incrementing identifier.
// Identifiers are never reused, including after deletes.
type table[T any] struct {
	rows   map[int64]T
	nextID int64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T), nextID: 1}
}

func (t *table[T]) alloc() int64 {
	id := t.nextID
	t.nextID++
	return id
}

func (t *table[T]) get(id int64) (*T, error) {
	row, ok := t.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

func (t *table[T]) list(match func(T) bool) []T {
	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		row := t.rows[id]
		if match == nil || match(row) {
			out = append(out, row)
		}
	}
	return out
}

func (t *table[T]) put(id int64, row T) {
	t.rows[id] = row
}

func (t *table[T]) update(id int64, row T) error {
	if _, ok := t.rows[id]; !ok {
		return sql.ErrNoRows
	}
	t.rows[id] = row
	return nil
}

func (t *table[T]) delete(id int64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// Store owns every in-memory table and its counters. It is constructed
// once at process start and handed to the repositories; there is no
// package-level state.
type Store struct {
	mu sync.RWMutex

	users                *table[models.User]
	filieres             *table[models.Filiere]
	classes              *table[models.Class]
	students             *table[models.Student]
	services             *table[models.Service]
	periodes             *table[models.PeriodeDeStage]
	internships          *table[models.Internship]
	attendance           *table[models.Attendance]
	internshipAttendance *table[models.InternshipAttendance]
	teachers             *table[models.Teacher]
	subjects             *table[models.Subject]
	rooms                *table[models.Room]
	timetables           *table[models.Timetable]
}

// NewStore returns an empty demo store.
func NewStore() *Store {
	return &Store{
		users:                newTable[models.User](),
		filieres:             newTable[models.Filiere](),
		classes:              newTable[models.Class](),
		students:             newTable[models.Student](),
		services:             newTable[models.Service](),
		periodes:             newTable[models.PeriodeDeStage](),
		internships:          newTable[models.Internship](),
		attendance:           newTable[models.Attendance](),
		internshipAttendance: newTable[models.InternshipAttendance](),
		teachers:             newTable[models.Teacher](),
		subjects:             newTable[models.Subject](),
		rooms:                newTable[models.Room](),
		timetables:           newTable[models.Timetable](),
	}
}

// Per-entity views. Each exposes the CRUD contract the services consume.

func (s *Store) Users() *UserStore                 { return &UserStore{s} }
func (s *Store) Filieres() *FiliereStore           { return &FiliereStore{s} }
func (s *Store) Classes() *ClassStore              { return &ClassStore{s} }
func (s *Store) Students() *StudentStore           { return &StudentStore{s} }
func (s *Store) Services() *ServiceStore           { return &ServiceStore{s} }
func (s *Store) Periodes() *PeriodeStore           { return &PeriodeStore{s} }
func (s *Store) Internships() *InternshipStore     { return &InternshipStore{s} }
func (s *Store) Attendance() *AttendanceStore      { return &AttendanceStore{s} }
func (s *Store) InternshipAttendance() *InternshipAttendanceStore {
	return &InternshipAttendanceStore{s}
}
func (s *Store) Teachers() *TeacherStore   { return &TeacherStore{s} }
func (s *Store) Subjects() *SubjectStore   { return &SubjectStore{s} }
func (s *Store) Rooms() *RoomStore         { return &RoomStore{s} }
func (s *Store) Timetables() *TimetableStore { return &TimetableStore{s} }
