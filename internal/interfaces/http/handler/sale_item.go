package handler

import (
	"github.com/gin-gonic/gin"
	orderapp "github.com/resinworks/backend/internal/application/order"
	"github.com/resinworks/backend/internal/interfaces/http/dto"
)

// SaleItemHandler handles sale item API endpoints
type SaleItemHandler struct {
	BaseHandler
	items *orderapp.SaleItemService
}

// NewSaleItemHandler creates a new SaleItemHandler
func NewSaleItemHandler(items *orderapp.SaleItemService) *SaleItemHandler {
	return &SaleItemHandler{items: items}
}

// RegisterRoutes registers the sale item routes
func (h *SaleItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/sale-items")
	{
		items.POST("", h.Create)
		items.GET("", h.List)
		items.GET("/:id", h.GetByID)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}

// Create creates a new sale item
func (h *SaleItemHandler) Create(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Missing or invalid credentials")
		return
	}

	var req orderapp.CreateSaleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	item, err := h.items.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, item)
}

// GetByID retrieves a sale item by ID
func (h *SaleItemHandler) GetByID(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Missing or invalid credentials")
		return
	}

	itemID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale item ID")
		return
	}

	item, err := h.items.GetByID(c.Request.Context(), ownerID, itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// List retrieves sale items with filtering and pagination
func (h *SaleItemHandler) List(c *gin.Context) {
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
	if location := c.Query("location"); location != "" {
		filter.Filters["location"] = location
	}
	if delivered := c.Query("delivered"); delivered != "" {
		filter.Filters["delivered"] = delivered == "true"
	}
	if clientID := c.Query("client_id"); clientID != "" {
		filter.Filters["client_id"] = clientID
	}

	result, err := h.items.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Update updates a sale item
func (h *SaleItemHandler) Update(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Missing or invalid credentials")
		return
	}

	itemID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale item ID")
		return
	}

	var req orderapp.UpdateSaleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	item, err := h.items.Update(c.Request.Context(), ownerID, itemID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// Delete deletes a sale item
func (h *SaleItemHandler) Delete(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Missing or invalid credentials")
		return
	}

	itemID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale item ID")
		return
	}

	if err := h.items.Delete(c.Request.Context(), ownerID, itemID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
