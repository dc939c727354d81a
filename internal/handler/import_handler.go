package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ifsi-gestion/ifsi-api/internal/service"
	appErrors "github.com/ifsi-gestion/ifsi-api/pkg/errors"
	"github.com/ifsi-gestion/ifsi-api/pkg/response"
)

// ImportHandler accepts xlsx roster uploads.
type ImportHandler struct {
	imports     *service.ImportService
	maxFileSize int64
}

// NewImportHandler constructs ImportHandler. maxFileSize caps the upload
// in bytes; zero disables the cap.
func NewImportHandler(imports *service.ImportService, maxFileSize int64) *ImportHandler {
	return &ImportHandler{imports: imports, maxFileSize: maxFileSize}
}

// Students godoc
// @Summary Import students from an xlsx workbook
// @Tags Imports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook with columns: full name, id card number, phone, email"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /students/import [post]
func (h *ImportHandler) Students(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "missing file field"))
		return
	}
	if h.maxFileSize > 0 && fileHeader.Size > h.maxFileSize {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "file too large"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open upload"))
		return
	}
	defer file.Close()

	report, err := h.imports.Students(c.Request.Context(), file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report)
}
