package handler

import (
	"github.com/gin-gonic/gin"
	partnerapp "github.com/resinworks/backend/internal/application/partner"
	"github.com/resinworks/backend/internal/domain/shared"
	"github.com/resinworks/backend/internal/interfaces/http/dto"
)

// ClientHandler handles client API endpoints
type ClientHandler struct {
	BaseHandler
	clients *partnerapp.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clients *partnerapp.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// RegisterRoutes registers the client routes
func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")
	{
		clients.POST("", h.Create)
		clients.GET("", h.List)
		clients.GET("/by-buyer-name", h.FindByBuyerName)
		clients.POST("/merge-duplicates", h.MergeDuplicates)
		clients.GET("/:id", h.GetByID)
		clients.PUT("/:id", h.Update)
		clients.DELETE("/:id", h.Delete)
	}
}

// Create creates a new client
func (h *ClientHandler) Create(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Missing or invalid credentials")
		return
	}

	var req partnerapp.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	client, err := h.clients.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, client)
}

// GetByID retrieves a client by ID
func (h *ClientHandler) GetByID(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Missing or invalid credentials")
		return
	}

	clientID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	client, err := h.clients.GetByID(c.Request.Context(), ownerID, clientID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, client)
}

// List retrieves clients with filtering and pagination
func (h *ClientHandler) List(c *gin.Context) {
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

	filter := shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
	}

	result, err := h.clients.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// FindByBuyerName looks up the client matching a free-text buyer name
func (h *ClientHandler) FindByBuyerName(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Missing or invalid credentials")
		return
	}

	name := c.Query("name")
	if name == "" {
		h.BadRequest(c, "Query parameter 'name' is required")
		return
	}

	client, err := h.clients.FindByBuyerName(c.Request.Context(), ownerID, name)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, client)
}

// MergeDuplicates runs one dedup pass over the owner's clients
func (h *ClientHandler) MergeDuplicates(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Missing or invalid credentials")
		return
	}

	result, err := h.clients.MergeDuplicates(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Update updates a client
func (h *ClientHandler) Update(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Missing or invalid credentials")
		return
	}

	clientID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	var req partnerapp.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	client, err := h.clients.Update(c.Request.Context(), ownerID, clientID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, client)
}

// Delete deletes a client and unlinks its sale items
func (h *ClientHandler) Delete(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Missing or invalid credentials")
		return
	}

	clientID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	if err := h.clients.Delete(c.Request.Context(), ownerID, clientID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
