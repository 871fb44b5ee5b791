package handler

import (
	"github.com/gin-gonic/gin"
	reportapp "github.com/resinworks/backend/internal/application/report"
)

// ReportHandler handles reporting API endpoints
type ReportHandler struct {
	BaseHandler
	profit *reportapp.ProfitService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(profit *reportapp.ProfitService) *ReportHandler {
	return &ReportHandler{profit: profit}
}

// RegisterRoutes registers the report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/monthly-profit", h.MonthlyProfit)
		reports.GET("/buyer-ranking", h.BuyerRanking)
	}
}

// MonthlyProfit returns the per-month profit entries for the owner
func (h *ReportHandler) MonthlyProfit(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Missing or invalid credentials")
		return
	}

	entries, err := h.profit.MonthlyProfit(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, entries)
}

// BuyerRanking returns the owner's buyers ordered by total spent
func (h *ReportHandler) BuyerRanking(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Missing or invalid credentials")
		return
	}

	ranking, err := h.profit.BuyerRanking(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ranking)
}
