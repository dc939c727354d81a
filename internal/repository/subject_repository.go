package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

// SubjectRepository manages persistence for subject records.
type SubjectRepository struct {
	db *sqlx.DB
}

// NewSubjectRepository constructs a SubjectRepository.
func NewSubjectRepository(db *sqlx.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

func (r *SubjectRepository) List(ctx context.Context) ([]models.Subject, error) {
	subjects := []models.Subject{}
	if err := r.db.SelectContext(ctx, &subjects, `SELECT id, name FROM subjects ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

func (r *SubjectRepository) FindByID(ctx context.Context, id int64) (*models.Subject, error) {
	var sub models.Subject
	if err := r.db.GetContext(ctx, &sub, `SELECT id, name FROM subjects WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubjectRepository) Create(ctx context.Context, sub *models.Subject) error {
	if err := r.db.QueryRowxContext(ctx, `INSERT INTO subjects (name) VALUES ($1) RETURNING id`, sub.Name).Scan(&sub.ID); err != nil {
		return fmt.Errorf("create subject: %w", err)
	}
	return nil
}

func (r *SubjectRepository) Update(ctx context.Context, sub *models.Subject) error {
	if _, err := r.db.NamedExecContext(ctx, `UPDATE subjects SET name = :name WHERE id = :id`, sub); err != nil {
		return fmt.Errorf("update subject: %w", err)
	}
	return nil
}

func (r *SubjectRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete subject: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete subject: %w", err)
	}
	return affected > 0, nil
}

// RoomRepository manages persistence for room records.
type RoomRepository struct {
	db *sqlx.DB
}

// NewRoomRepository constructs a RoomRepository.
func NewRoomRepository(db *sqlx.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) List(ctx context.Context) ([]models.Room, error) {
	rooms := []models.Room{}
	if err := r.db.SelectContext(ctx, &rooms, `SELECT id, name FROM rooms ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id int64) (*models.Room, error) {
	var room models.Room
	if err := r.db.GetContext(ctx, &room, `SELECT id, name FROM rooms WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	if err := r.db.QueryRowxContext(ctx, `INSERT INTO rooms (name) VALUES ($1) RETURNING id`, room.Name).Scan(&room.ID); err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	if _, err := r.db.NamedExecContext(ctx, `UPDATE rooms SET name = :name WHERE id = :id`, room); err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete room: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete room: %w", err)
	}
	return affected > 0, nil
}
