package doctor

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nes268/healmate/internal/handler"
	"github.com/nes268/healmate/internal/model"
	doctorService "github.com/nes268/healmate/internal/service/doctor"
)

type Handler struct {
	service *doctorService.Service
}

func NewHandler(service *doctorService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	doctors := rg.Group("/doctors")
	{
		doctors.GET("", h.ListDoctors)
		doctors.GET("/:id", h.GetDoctor)
	}
}

func (h *Handler) ListDoctors(c *gin.Context) {
	filter := model.DoctorFilter{
		Specialty: c.Query("specialty"),
		Search:    c.Query("search"),
	}

	doctors, err := h.service.ListDoctors(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("Server error"))
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) GetDoctor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("Invalid doctor ID"))
		return
	}

	doctor, err := h.service.GetDoctor(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, doctorService.ErrNotFound) {
			c.JSON(http.StatusNotFound, handler.NewErrorResponse("Doctor not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("Server error"))
		return
	}
	c.JSON(http.StatusOK, doctor)
}
