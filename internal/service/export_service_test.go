package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
	appErrors "github.com/ifsi-gestion/ifsi-api/pkg/errors"
)

func TestExportServiceStudentsCSV(t *testing.T) {
	students := newMockStudentRepo()
	email := "awa@example.com"
	require.NoError(t, students.Create(context.Background(), &models.Student{FullName: "Awa Diallo", Email: &email, Status: models.StudentActive}))
	require.NoError(t, students.Create(context.Background(), &models.Student{FullName: "Moussa Traore", Status: models.StudentSuspended}))

	svc := NewExportService(students, newMockAttendanceRepo(), zap.NewNop())

	file, err := svc.Students(context.Background(), FormatCSV, models.StudentFilter{})
	require.NoError(t, err)
	assert.Equal(t, "students.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"ID", "Full name", "Email", "Phone", "Status"}, records[0])
}

func TestExportServiceAttendancePDF(t *testing.T) {
	attendance := newMockAttendanceRepo()
	require.NoError(t, attendance.Create(context.Background(), &models.Attendance{StudentID: 1, Date: "2026-03-02", Status: models.AttendancePresent}))

	svc := NewExportService(newMockStudentRepo(), attendance, zap.NewNop())

	date := "2026-03-02"
	file, err := svc.Attendance(context.Background(), FormatPDF, models.AttendanceFilter{Date: &date})
	require.NoError(t, err)
	assert.Equal(t, "attendance.pdf", file.Filename)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))
}

func TestExportServiceUnknownFormat(t *testing.T) {
	svc := NewExportService(newMockStudentRepo(), newMockAttendanceRepo(), zap.NewNop())

	_, err := svc.Students(context.Background(), ExportFormat("xml"), models.StudentFilter{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
