package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
	appErrors "github.com/ifsi-gestion/ifsi-api/pkg/errors"
)

// ImportReport summarizes one roster import run. Row numbers in Errors
// are 1-based spreadsheet rows.
type ImportReport struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// ImportService loads student rosters from xlsx workbooks. Expected
// columns: full name, id card number, phone, email. The first row is a
// header.
type ImportService struct {
	students studentRepository
	logger   *zap.Logger
}

// NewImportService constructs the roster import service.
func NewImportService(students studentRepository, logger *zap.Logger) *ImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportService{students: students, logger: logger}
}

// Students reads the first sheet of the workbook and creates one student
// per data row. Bad rows are skipped and reported, not fatal.
func (s *ImportService) Students(ctx context.Context, r io.Reader) (*ImportReport, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "file is not a readable xlsx workbook")
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "workbook has no sheets")
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read sheet")
	}

	report := &ImportReport{}
	for i, row := range rows {
		if i == 0 {
			continue
		}
		rowNum := i + 1
		fullName := cell(row, 0)
		if fullName == "" {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: missing full name", rowNum))
			continue
		}
		st := &models.Student{
			FullName: fullName,
			Status:   models.StudentActive,
		}
		if idCard := cell(row, 1); idCard != "" {
			st.IDCardNumber = &idCard
		}
		if phone := cell(row, 2); phone != "" {
			st.Phone = &phone
		}
		if email := cell(row, 3); email != "" {
			st.Email = &email
		}
		if err := s.students.Create(ctx, st); err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		report.Created++
	}

	s.logger.Info("student roster imported",
		zap.Int("created", report.Created),
		zap.Int("skipped", report.Skipped))
	return report, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
