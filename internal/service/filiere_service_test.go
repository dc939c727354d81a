package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
	appErrors "github.com/ifsi-gestion/ifsi-api/pkg/errors"
)

type mockFiliereRepo struct {
	items   map[int64]*models.Filiere
	nextID  int64
	listErr error
}

func newMockFiliereRepo() *mockFiliereRepo {
	return &mockFiliereRepo{items: make(map[int64]*models.Filiere), nextID: 1}
}

func (m *mockFiliereRepo) List(ctx context.Context) ([]models.Filiere, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]models.Filiere, 0, len(m.items))
	for _, f := range m.items {
		out = append(out, *f)
	}
	return out, nil
}

func (m *mockFiliereRepo) FindByID(ctx context.Context, id int64) (*models.Filiere, error) {
	if f, ok := m.items[id]; ok {
		cp := *f
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockFiliereRepo) Create(ctx context.Context, f *models.Filiere) error {
	f.ID = m.nextID
	m.nextID++
	cp := *f
	m.items[f.ID] = &cp
	return nil
}

func (m *mockFiliereRepo) Update(ctx context.Context, f *models.Filiere) error {
	if _, ok := m.items[f.ID]; !ok {
		return sql.ErrNoRows
	}
	cp := *f
	m.items[f.ID] = &cp
	return nil
}

func (m *mockFiliereRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

func TestFiliereServiceCreate(t *testing.T) {
	repo := newMockFiliereRepo()
	svc := NewFiliereService(repo, validator.New(), zap.NewNop())

	f, err := svc.Create(context.Background(), CreateFiliereRequest{
		Name:         "Infirmier Polyvalent",
		Abbreviation: "IP",
		NumYears:     3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.ID)
	assert.Equal(t, "IP", f.Abbreviation)
}

func TestFiliereServiceCreateValidation(t *testing.T) {
	svc := NewFiliereService(newMockFiliereRepo(), validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateFiliereRequest{Name: "Infirmier"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, 400, appErr.Status)
}

func TestFiliereServiceUpdatePartialMerge(t *testing.T) {
	repo := newMockFiliereRepo()
	svc := NewFiliereService(repo, validator.New(), zap.NewNop())

	created, err := svc.Create(context.Background(), CreateFiliereRequest{
		Name:         "Infirmier Polyvalent",
		Abbreviation: "IP",
		NumYears:     3,
	})
	require.NoError(t, err)

	years := 4
	updated, err := svc.Update(context.Background(), created.ID, UpdateFiliereRequest{NumYears: &years})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.NumYears)
	assert.Equal(t, "Infirmier Polyvalent", updated.Name)
	assert.Equal(t, "IP", updated.Abbreviation)
}

func TestFiliereServiceGetNotFound(t *testing.T) {
	svc := NewFiliereService(newMockFiliereRepo(), validator.New(), zap.NewNop())

	_, err := svc.Get(context.Background(), 99)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, 404, appErr.Status)
}

func TestFiliereServiceDeleteNotFound(t *testing.T) {
	svc := NewFiliereService(newMockFiliereRepo(), validator.New(), zap.NewNop())

	err := svc.Delete(context.Background(), 7)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestFiliereServiceListStorageFailure(t *testing.T) {
	repo := newMockFiliereRepo()
	repo.listErr = errors.New("boom")
	svc := NewFiliereService(repo, validator.New(), zap.NewNop())

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, 500, appErrors.FromError(err).Status)
}
