package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
	"github.com/ifsi-gestion/ifsi-api/internal/service"
	"github.com/ifsi-gestion/ifsi-api/pkg/response"
)

// ExportHandler streams roster and attendance sheets as CSV or PDF.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Students godoc
// @Summary Export the student roster
// @Tags Exports
// @Param format query string false "csv or pdf" default(csv)
// @Param classId query int false "Filter by class"
// @Success 200
// @Security BearerAuth
// @Router /students/export [get]
func (h *ExportHandler) Students(c *gin.Context) {
	classID, err := QueryID(c, "classId")
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.exports.Students(c.Request.Context(), exportFormat(c), models.StudentFilter{ClassID: classID})
	if err != nil {
		response.Error(c, err)
		return
	}
	serveFile(c, file)
}

// Attendance godoc
// @Summary Export attendance records
// @Tags Exports
// @Param format query string false "csv or pdf" default(csv)
// @Param studentId query int false "Filter by student"
// @Param date query string false "Filter by day (YYYY-MM-DD)"
// @Success 200
// @Security BearerAuth
// @Router /attendance/export [get]
func (h *ExportHandler) Attendance(c *gin.Context) {
	studentID, err := QueryID(c, "studentId")
	if err != nil {
		response.Error(c, err)
		return
	}
	filter := models.AttendanceFilter{StudentID: studentID}
	if studentID == nil {
		filter.Date = QueryString(c, "date")
	}
	file, err := h.exports.Attendance(c.Request.Context(), exportFormat(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	serveFile(c, file)
}

func exportFormat(c *gin.Context) service.ExportFormat {
	return service.ExportFormat(c.DefaultQuery("format", "csv"))
}

func serveFile(c *gin.Context, file *service.ExportFile) {
	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(200, file.ContentType, file.Data)
}
