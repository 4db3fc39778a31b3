package emergency

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nes268/healmate/internal/handler"
	"github.com/nes268/healmate/internal/model"
	emergencyService "github.com/nes268/healmate/internal/service/emergency"
)

type Handler struct {
	service *emergencyService.Service
}

func NewHandler(service *emergencyService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ambulance", h.BookAmbulance)
	rg.POST("/diagnostic-van", h.BookDiagnosticVan)
}

func (h *Handler) BookAmbulance(c *gin.Context) {
	var req model.AmbulanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	booking := h.service.BookAmbulance(c.Request.Context(), handler.UserEmail(c), &req)
	c.JSON(http.StatusCreated, booking)
}

func (h *Handler) BookDiagnosticVan(c *gin.Context) {
	var req model.DiagnosticVanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	booking := h.service.BookDiagnosticVan(c.Request.Context(), handler.UserEmail(c), &req)
	c.JSON(http.StatusCreated, booking)
}
