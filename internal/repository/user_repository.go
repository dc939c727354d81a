package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

const userColumns = `id, username, password, role, full_name, email`

// UserRepository manages persistence for user accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List returns all users.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	users := []models.User{}
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// FindByID fetches a user by id.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	var u models.User
	if err := r.db.GetContext(ctx, &u, query, id); err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByUsername fetches a user by its unique username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	var u models.User
	if err := r.db.GetContext(ctx, &u, query, username); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user account.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	const query = `INSERT INTO users (username, password, role, full_name, email)
        VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, u.Username, u.PasswordHash, u.Role, u.FullName, u.Email).Scan(&u.ID); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Update writes the full merged record back.
func (r *UserRepository) Update(ctx context.Context, u *models.User) error {
	const query = `UPDATE users SET username = :username, password = :password, role = :role,
        full_name = :full_name, email = :email WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, u); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete removes a user account.
func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return affected > 0, nil
}
