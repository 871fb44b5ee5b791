package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	importerapp "github.com/resinworks/backend/internal/application/importer"
)

const workbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WorkbookHandler handles workbook import and export endpoints
type WorkbookHandler struct {
	BaseHandler
	workbooks *importerapp.WorkbookService
}

// NewWorkbookHandler creates a new WorkbookHandler
func NewWorkbookHandler(workbooks *importerapp.WorkbookService) *WorkbookHandler {
	return &WorkbookHandler{workbooks: workbooks}
}

// RegisterRoutes registers the workbook routes
func (h *WorkbookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	workbook := rg.Group("/workbook")
	{
		workbook.POST("/import", h.Import)
		workbook.GET("/export", h.Export)
	}
}

// Import reads an uploaded xlsx workbook and creates the records it contains
func (h *WorkbookHandler) Import(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Missing or invalid credentials")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "Multipart field 'file' is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		h.BadRequest(c, "Uploaded file could not be read")
		return
	}
	defer src.Close()

	summary, err := h.workbooks.Import(c.Request.Context(), ownerID, src)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// Export streams the owner's records as an xlsx workbook
func (h *WorkbookHandler) Export(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Missing or invalid credentials")
		return
	}

	f, err := h.workbooks.Export(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("resinworks-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", workbookContentType)
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		// Headers are already sent, nothing left to do but drop the connection
		c.Abort()
	}
}
