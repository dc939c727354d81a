package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "password", "role", "full_name", "email"})
}

func TestUserRepositoryFindByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE username = \$1`).
		WithArgs("directrice").
		WillReturnRows(userRows().AddRow(1, "directrice", "hash", "admin", "Mme Kone", nil))

	u, err := repo.FindByUsername(context.Background(), "directrice")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, u.Role)
	assert.Equal(t, "hash", u.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByUsernameAbsent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE username = \$1`).
		WithArgs("fantome").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByUsername(context.Background(), "fantome")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO users (.+) RETURNING id`).
		WithArgs("directrice", "hash", models.RoleAdmin, "Mme Kone", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	u := &models.User{Username: "directrice", PasswordHash: "hash", Role: models.RoleAdmin, FullName: "Mme Kone"}
	require.NoError(t, repo.Create(context.Background(), u))
	assert.Equal(t, int64(5), u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
