package memory

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

func TestFiliereStoreCreateAssignsSequentialIDs(t *testing.T) {
	store := NewStore()
	filieres := store.Filieres()
	ctx := context.Background()

	first := &models.Filiere{Name: "Infirmier Polyvalent", Abbreviation: "IP", NumYears: 3}
	second := &models.Filiere{Name: "Sage-Femme", Abbreviation: "SF", NumYears: 4}
	require.NoError(t, filieres.Create(ctx, first))
	require.NoError(t, filieres.Create(ctx, second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	loaded, err := filieres.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, *first, *loaded)
}

func TestFiliereStoreIDsNeverReused(t *testing.T) {
	store := NewStore()
	filieres := store.Filieres()
	ctx := context.Background()

	f := &models.Filiere{Name: "Infirmier Polyvalent", Abbreviation: "IP", NumYears: 3}
	require.NoError(t, filieres.Create(ctx, f))

	deleted, err := filieres.Delete(ctx, f.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	next := &models.Filiere{Name: "Sage-Femme", Abbreviation: "SF", NumYears: 4}
	require.NoError(t, filieres.Create(ctx, next))
	assert.Equal(t, int64(2), next.ID)
}

func TestFiliereStoreAbsentRowSemantics(t *testing.T) {
	store := NewStore()
	filieres := store.Filieres()
	ctx := context.Background()

	_, err := filieres.FindByID(ctx, 42)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	err = filieres.Update(ctx, &models.Filiere{ID: 42, Name: "x", Abbreviation: "x", NumYears: 1})
	assert.ErrorIs(t, err, sql.ErrNoRows)

	deleted, err := filieres.Delete(ctx, 42)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestClassStoreFilterByFiliere(t *testing.T) {
	store := NewStore()
	classes := store.Classes()
	ctx := context.Background()

	require.NoError(t, classes.Create(ctx, &models.Class{FiliereID: 1, Name: "IP1", Abbreviation: "IP1"}))
	require.NoError(t, classes.Create(ctx, &models.Class{FiliereID: 2, Name: "SF1", Abbreviation: "SF1"}))
	require.NoError(t, classes.Create(ctx, &models.Class{FiliereID: 1, Name: "IP2", Abbreviation: "IP2"}))

	all, err := classes.List(ctx, models.ClassFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "IP1", all[0].Name)

	filiereID := int64(1)
	filtered, err := classes.List(ctx, models.ClassFilter{FiliereID: &filiereID})
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, "IP1", filtered[0].Name)
	assert.Equal(t, "IP2", filtered[1].Name)
}

func TestStudentStoreUpdateIsFullRowWrite(t *testing.T) {
	store := NewStore()
	students := store.Students()
	ctx := context.Background()

	phone := "0601020304"
	st := &models.Student{FullName: "Awa Diallo", Phone: &phone, Status: models.StudentActive}
	require.NoError(t, students.Create(ctx, st))

	st.Status = models.StudentSuspended
	require.NoError(t, students.Update(ctx, st))

	loaded, err := students.FindByID(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StudentSuspended, loaded.Status)
	require.NotNil(t, loaded.Phone)
	assert.Equal(t, phone, *loaded.Phone)
}

func TestAttendanceStoreFilters(t *testing.T) {
	store := NewStore()
	attendance := store.Attendance()
	ctx := context.Background()

	require.NoError(t, attendance.Create(ctx, &models.Attendance{StudentID: 1, Date: "2026-03-02", Status: models.AttendancePresent}))
	require.NoError(t, attendance.Create(ctx, &models.Attendance{StudentID: 2, Date: "2026-03-02", Status: models.AttendanceAbsent}))
	require.NoError(t, attendance.Create(ctx, &models.Attendance{StudentID: 1, Date: "2026-03-03", Status: models.AttendanceLate}))

	studentID := int64(1)
	byStudent, err := attendance.List(ctx, models.AttendanceFilter{StudentID: &studentID})
	require.NoError(t, err)
	assert.Len(t, byStudent, 2)

	date := "2026-03-02"
	byDate, err := attendance.List(ctx, models.AttendanceFilter{Date: &date})
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	// Only the first recognized filter applies when both are present.
	both, err := attendance.List(ctx, models.AttendanceFilter{StudentID: &studentID, Date: &date})
	require.NoError(t, err)
	assert.Len(t, both, 2)
	for _, rec := range both {
		assert.Equal(t, studentID, rec.StudentID)
	}
}

func TestUserStoreFindByUsername(t *testing.T) {
	store := NewStore()
	users := store.Users()
	ctx := context.Background()

	u := &models.User{Username: "directrice", PasswordHash: "hash", Role: models.RoleAdmin, FullName: "Mme Kone"}
	require.NoError(t, users.Create(ctx, u))

	found, err := users.FindByUsername(ctx, "directrice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = users.FindByUsername(ctx, "inconnue")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestTimetableStoreFilterByDay(t *testing.T) {
	store := NewStore()
	timetables := store.Timetables()
	ctx := context.Background()

	require.NoError(t, timetables.Create(ctx, &models.Timetable{ClassID: 1, SubjectID: 1, TeacherID: 1, RoomID: 1, DayOfWeek: 1, StartTime: "08:00", EndTime: "10:00"}))
	require.NoError(t, timetables.Create(ctx, &models.Timetable{ClassID: 1, SubjectID: 2, TeacherID: 2, RoomID: 1, DayOfWeek: 2, StartTime: "08:00", EndTime: "10:00"}))

	day := 2
	slots, err := timetables.List(ctx, models.TimetableFilter{DayOfWeek: &day})
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, int64(2), slots[0].SubjectID)
}
