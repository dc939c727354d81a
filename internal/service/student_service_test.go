package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
	appErrors "github.com/ifsi-gestion/ifsi-api/pkg/errors"
)

type mockStudentRepo struct {
	items  map[int64]*models.Student
	nextID int64
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{items: make(map[int64]*models.Student), nextID: 1}
}

func (m *mockStudentRepo) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	out := make([]models.Student, 0, len(m.items))
	for _, st := range m.items {
		if filter.ClassID != nil && (st.ClassID == nil || *st.ClassID != *filter.ClassID) {
			continue
		}
		out = append(out, *st)
	}
	return out, nil
}

func (m *mockStudentRepo) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	if st, ok := m.items[id]; ok {
		cp := *st
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockStudentRepo) Create(ctx context.Context, st *models.Student) error {
	st.ID = m.nextID
	m.nextID++
	cp := *st
	m.items[st.ID] = &cp
	return nil
}

func (m *mockStudentRepo) Update(ctx context.Context, st *models.Student) error {
	if _, ok := m.items[st.ID]; !ok {
		return sql.ErrNoRows
	}
	cp := *st
	m.items[st.ID] = &cp
	return nil
}

func (m *mockStudentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

func TestStudentServiceCreateDefaultsToActive(t *testing.T) {
	svc := NewStudentService(newMockStudentRepo(), validator.New(), zap.NewNop())

	st, err := svc.Create(context.Background(), CreateStudentRequest{FullName: "Awa Diallo"})
	require.NoError(t, err)
	assert.Equal(t, models.StudentActive, st.Status)
	assert.Nil(t, st.ClassID)
}

func TestStudentServiceCreateRejectsUnknownStatus(t *testing.T) {
	svc := NewStudentService(newMockStudentRepo(), validator.New(), zap.NewNop())

	bad := models.StudentStatus("Inscrit")
	_, err := svc.Create(context.Background(), CreateStudentRequest{FullName: "Awa Diallo", Status: &bad})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestStudentServiceUpdateMergesOnlySuppliedFields(t *testing.T) {
	repo := newMockStudentRepo()
	svc := NewStudentService(repo, validator.New(), zap.NewNop())

	phone := "0601020304"
	created, err := svc.Create(context.Background(), CreateStudentRequest{FullName: "Awa Diallo", Phone: &phone})
	require.NoError(t, err)

	status := models.StudentGraduated
	updated, err := svc.Update(context.Background(), created.ID, UpdateStudentRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.StudentGraduated, updated.Status)
	assert.Equal(t, "Awa Diallo", updated.FullName)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, phone, *updated.Phone)
}

func TestStudentServiceUpdateNotFound(t *testing.T) {
	svc := NewStudentService(newMockStudentRepo(), validator.New(), zap.NewNop())

	name := "Quelqu'un"
	_, err := svc.Update(context.Background(), 404, UpdateStudentRequest{FullName: &name})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestStudentServiceListByClass(t *testing.T) {
	repo := newMockStudentRepo()
	svc := NewStudentService(repo, validator.New(), zap.NewNop())

	classA := int64(1)
	classB := int64(2)
	_, err := svc.Create(context.Background(), CreateStudentRequest{FullName: "Awa Diallo", ClassID: &classA})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), CreateStudentRequest{FullName: "Moussa Traore", ClassID: &classB})
	require.NoError(t, err)

	students, err := svc.List(context.Background(), models.StudentFilter{ClassID: &classA})
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Awa Diallo", students[0].FullName)
}
