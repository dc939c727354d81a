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

type mockAttendanceRepo struct {
	items  map[int64]*models.Attendance
	nextID int64
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{items: make(map[int64]*models.Attendance), nextID: 1}
}

func (m *mockAttendanceRepo) List(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error) {
	out := make([]models.Attendance, 0, len(m.items))
	for _, a := range m.items {
		switch {
		case filter.StudentID != nil:
			if a.StudentID == *filter.StudentID {
				out = append(out, *a)
			}
		case filter.Date != nil:
			if a.Date == *filter.Date {
				out = append(out, *a)
			}
		default:
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *mockAttendanceRepo) FindByID(ctx context.Context, id int64) (*models.Attendance, error) {
	if a, ok := m.items[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockAttendanceRepo) Create(ctx context.Context, a *models.Attendance) error {
	a.ID = m.nextID
	m.nextID++
	cp := *a
	m.items[a.ID] = &cp
	return nil
}

func (m *mockAttendanceRepo) Update(ctx context.Context, a *models.Attendance) error {
	if _, ok := m.items[a.ID]; !ok {
		return sql.ErrNoRows
	}
	cp := *a
	m.items[a.ID] = &cp
	return nil
}

func (m *mockAttendanceRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

func TestAttendanceServiceCreateDefaultsToAbsent(t *testing.T) {
	svc := NewAttendanceService(newMockAttendanceRepo(), validator.New(), zap.NewNop())

	a, err := svc.Create(context.Background(), CreateAttendanceRequest{StudentID: 1, Date: "2026-03-02"})
	require.NoError(t, err)
	assert.Equal(t, models.AttendanceAbsent, a.Status)
}

func TestAttendanceServiceCreateRejectsBadDate(t *testing.T) {
	svc := NewAttendanceService(newMockAttendanceRepo(), validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateAttendanceRequest{StudentID: 1, Date: "02/03/2026"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAttendanceServiceUpdateStatusOnly(t *testing.T) {
	repo := newMockAttendanceRepo()
	svc := NewAttendanceService(repo, validator.New(), zap.NewNop())

	remarks := "certificat medical"
	created, err := svc.Create(context.Background(), CreateAttendanceRequest{StudentID: 1, Date: "2026-03-02", Remarks: &remarks})
	require.NoError(t, err)

	status := models.AttendanceLate
	updated, err := svc.Update(context.Background(), created.ID, UpdateAttendanceRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.AttendanceLate, updated.Status)
	require.NotNil(t, updated.Remarks)
	assert.Equal(t, remarks, *updated.Remarks)
	assert.Equal(t, "2026-03-02", updated.Date)
}
