package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nes268/healmate/internal/handler"
	dashboardService "github.com/nes268/healmate/internal/service/dashboard"
)

type Handler struct {
	service *dashboardService.Service
}

func NewHandler(service *dashboardService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	dash := rg.Group("/dashboard")
	{
		dash.GET("/stats", h.GetStats)
		dash.GET("/recent-activity", h.GetRecentActivity)
	}
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context(), handler.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("Server error"))
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) GetRecentActivity(c *gin.Context) {
	activities, err := h.service.GetRecentActivity(c.Request.Context(), handler.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("Server error"))
		return
	}
	c.JSON(http.StatusOK, activities)
}
