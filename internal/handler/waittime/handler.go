package waittime

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nes268/healmate/internal/handler"
	waittimeService "github.com/nes268/healmate/internal/service/waittime"
)

type Handler struct {
	service *waittimeService.Service
}

func NewHandler(service *waittimeService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/wait-times", h.ListWaitTimes)
}

func (h *Handler) ListWaitTimes(c *gin.Context) {
	waitTimes, err := h.service.ListWaitTimes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("Server error"))
		return
	}
	c.JSON(http.StatusOK, waitTimes)
}
