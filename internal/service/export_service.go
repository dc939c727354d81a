package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
	appErrors "github.com/ifsi-gestion/ifsi-api/pkg/errors"
	"github.com/ifsi-gestion/ifsi-api/pkg/export"
)

type csvRenderer interface {
	Render(t export.Table) ([]byte, error)
}

type pdfRenderer interface {
	Render(t export.Table, title string) ([]byte, error)
}

// ExportFormat selects the rendered file type.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

// ExportFile is a rendered document ready to stream to the client.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders student rosters and attendance sheets as CSV or
// PDF for download. Files are generated on the fly, never stored.
type ExportService struct {
	students   studentRepository
	attendance attendanceRepository
	csv        csvRenderer
	pdf        pdfRenderer
	logger     *zap.Logger
}

// NewExportService constructs an ExportService with default renderers.
func NewExportService(students studentRepository, attendance attendanceRepository, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		students:   students,
		attendance: attendance,
		csv:        export.NewCSVExporter(),
		pdf:        export.NewPDFExporter(),
		logger:     logger,
	}
}

// Students renders the student roster, optionally narrowed to one class.
func (s *ExportService) Students(ctx context.Context, format ExportFormat, filter models.StudentFilter) (*ExportFile, error) {
	students, err := s.students.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}
	table := export.Table{
		Headers: []string{"ID", "Full name", "Email", "Phone", "Status"},
	}
	for _, st := range students {
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(st.ID, 10),
			st.FullName,
			deref(st.Email),
			deref(st.Phone),
			string(st.Status),
		})
	}
	return s.render(format, table, "Liste des etudiants", "students")
}

// Attendance renders the attendance sheet for one day or one student.
func (s *ExportService) Attendance(ctx context.Context, format ExportFormat, filter models.AttendanceFilter) (*ExportFile, error) {
	records, err := s.attendance.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load attendance")
	}
	table := export.Table{
		Headers: []string{"ID", "Student", "Date", "Status", "Remarks"},
	}
	for _, rec := range records {
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(rec.ID, 10),
			strconv.FormatInt(rec.StudentID, 10),
			rec.Date,
			string(rec.Status),
			deref(rec.Remarks),
		})
	}
	title := "Feuille de presence"
	if filter.Date != nil {
		title = fmt.Sprintf("Feuille de presence %s", *filter.Date)
	}
	return s.render(format, table, title, "attendance")
}

func (s *ExportService) render(format ExportFormat, table export.Table, title, basename string) (*ExportFile, error) {
	switch format {
	case FormatCSV:
		data, err := s.csv.Render(table)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportFile{
			Filename:    basename + ".csv",
			ContentType: "text/csv",
			Data:        data,
		}, nil
	case FormatPDF:
		data, err := s.pdf.Render(table, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportFile{
			Filename:    basename + ".pdf",
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
