package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func studentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "full_name", "id_card_number", "phone", "address", "email",
		"filiere_id", "class_id", "status", "documents",
	})
}

func TestStudentRepositoryList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudentRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM students ORDER BY id`).
		WillReturnRows(studentRows().
			AddRow(1, "Awa Diallo", nil, nil, nil, nil, nil, nil, "Actif", nil).
			AddRow(2, "Moussa Traore", nil, nil, nil, nil, nil, nil, "Suspendu", nil))

	students, err := repo.List(context.Background(), models.StudentFilter{})
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "Awa Diallo", students[0].FullName)
	assert.Equal(t, models.StudentSuspended, students[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryListByClass(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudentRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM students WHERE class_id = \$1 ORDER BY id`).
		WithArgs(int64(3)).
		WillReturnRows(studentRows().
			AddRow(1, "Awa Diallo", nil, nil, nil, nil, nil, 3, "Actif", nil))

	classID := int64(3)
	students, err := repo.List(context.Background(), models.StudentFilter{ClassID: &classID})
	require.NoError(t, err)
	require.Len(t, students, 1)
	require.NotNil(t, students[0].ClassID)
	assert.Equal(t, classID, *students[0].ClassID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryFindByIDAbsent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudentRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM students WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCreateAssignsID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudentRepository(db)

	mock.ExpectQuery(`INSERT INTO students (.+) RETURNING id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	st := &models.Student{FullName: "Awa Diallo", Status: models.StudentActive}
	require.NoError(t, repo.Create(context.Background(), st))
	assert.Equal(t, int64(11), st.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudentRepository(db)

	mock.ExpectExec(`DELETE FROM students WHERE id = \$1`).
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM students WHERE id = \$1`).
		WithArgs(int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), 11)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), 12)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
