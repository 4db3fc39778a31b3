package payment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nes268/healmate/internal/handler"
	"github.com/nes268/healmate/internal/model"
	paymentService "github.com/nes268/healmate/internal/service/payment"
)

type Handler struct {
	service *paymentService.Service
}

func NewHandler(service *paymentService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		payments.GET("", h.ListPayments)
		payments.POST("", h.CreatePayment)
	}
}

func (h *Handler) ListPayments(c *gin.Context) {
	payments, err := h.service.ListPayments(c.Request.Context(), handler.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("Server error"))
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *Handler) CreatePayment(c *gin.Context) {
	var req model.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	payment, err := h.service.CreatePayment(c.Request.Context(), handler.UserID(c), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("Server error"))
		return
	}
	c.JSON(http.StatusCreated, payment)
}
