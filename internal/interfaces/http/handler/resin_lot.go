package handler

import (
	"github.com/gin-gonic/gin"
	orderapp "github.com/resinworks/backend/internal/application/order"
	"github.com/resinworks/backend/internal/interfaces/http/dto"
)

// ResinLotHandler handles resin lot API endpoints
type ResinLotHandler struct {
	BaseHandler
	lots *orderapp.ResinLotService
}

// NewResinLotHandler creates a new ResinLotHandler
func NewResinLotHandler(lots *orderapp.ResinLotService) *ResinLotHandler {
	return &ResinLotHandler{lots: lots}
}

// RegisterRoutes registers the resin lot routes
func (h *ResinLotHandler) RegisterRoutes(rg *gin.RouterGroup) {
	lots := rg.Group("/resin-lots")
	{
		lots.POST("", h.Create)
		lots.GET("", h.List)
		lots.GET("/:id", h.GetByID)
		lots.PUT("/:id", h.Update)
		lots.DELETE("/:id", h.Delete)
	}
}

// Create creates a new resin lot
func (h *ResinLotHandler) Create(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Missing or invalid credentials")
		return
	}

	var req orderapp.CreateResinLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	lot, err := h.lots.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, lot)
}

// GetByID retrieves a resin lot by ID
func (h *ResinLotHandler) GetByID(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Missing or invalid credentials")
		return
	}

	lotID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid lot ID")
		return
	}

	lot, err := h.lots.GetByID(c.Request.Context(), ownerID, lotID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, lot)
}

// List retrieves resin lots with filtering and pagination
func (h *ResinLotHandler) List(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Missing or invalid credentials")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	filter := orderapp.ListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
		Filters:  map[string]interface{}{},
	}
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}
	if c.Query("open") == "true" {
		filter.Filters["open"] = true
	}

	result, err := h.lots.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Update updates a resin lot
func (h *ResinLotHandler) Update(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Missing or invalid credentials")
		return
	}

	lotID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid lot ID")
		return
	}

	var req orderapp.UpdateResinLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	lot, err := h.lots.Update(c.Request.Context(), ownerID, lotID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, lot)
}

// Delete deletes a resin lot
func (h *ResinLotHandler) Delete(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Missing or invalid credentials")
		return
	}

	lotID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid lot ID")
		return
	}

	if err := h.lots.Delete(c.Request.Context(), ownerID, lotID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
