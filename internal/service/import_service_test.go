package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
	appErrors "github.com/ifsi-gestion/ifsi-api/pkg/errors"
)

func buildWorkbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, wb.SetCellValue(sheet, cell, value))
		}
	}
	buf, err := wb.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImportServiceStudents(t *testing.T) {
	students := newMockStudentRepo()
	svc := NewImportService(students, zap.NewNop())

	buf := buildWorkbook(t, [][]string{
		{"Full name", "ID card", "Phone", "Email"},
		{"Awa Diallo", "CNI-001", "0601020304", "awa@example.com"},
		{"Moussa Traore", "", "", ""},
	})

	report, err := svc.Students(context.Background(), buf)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Created)
	assert.Equal(t, 0, report.Skipped)

	all, err := students.List(context.Background(), models.StudentFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, st := range all {
		assert.Equal(t, models.StudentActive, st.Status)
	}
}

func TestImportServiceSkipsRowsWithoutName(t *testing.T) {
	students := newMockStudentRepo()
	svc := NewImportService(students, zap.NewNop())

	buf := buildWorkbook(t, [][]string{
		{"Full name", "ID card", "Phone", "Email"},
		{"", "CNI-002", "", ""},
		{"Awa Diallo", "", "", ""},
	})

	report, err := svc.Students(context.Background(), buf)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 1, report.Skipped)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "row 2")
}

func TestImportServiceRejectsGarbage(t *testing.T) {
	svc := NewImportService(newMockStudentRepo(), zap.NewNop())

	_, err := svc.Students(context.Background(), bytes.NewReader([]byte("not an xlsx file")))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
