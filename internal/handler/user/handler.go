package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nes268/healmate/internal/handler"
	"github.com/nes268/healmate/internal/model"
	userService "github.com/nes268/healmate/internal/service/user"
)

type Handler struct {
	service *userService.Service
}

func NewHandler(service *userService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	user := rg.Group("/user")
	{
		user.GET("/profile", h.GetProfile)
		user.PUT("/profile", h.UpdateProfile)
	}
}

func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context(), handler.UserID(c))
	if err != nil {
		if errors.Is(err, userService.ErrNotFound) {
			c.JSON(http.StatusNotFound, handler.NewErrorResponse("User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("Server error"))
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), handler.UserID(c), &req)
	if err != nil {
		if errors.Is(err, userService.ErrNotFound) {
			c.JSON(http.StatusNotFound, handler.NewErrorResponse("User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("Server error"))
		return
	}
	c.JSON(http.StatusOK, profile)
}
