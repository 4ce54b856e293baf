// internal/handlers/order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/craveshop/crave-backend/internal/services"
	"github.com/craveshop/crave-backend/internal/utils"
)

type OrderHandler struct {
	orderService    *services.OrderService
	whatsappService *services.WhatsAppService
}

func NewOrderHandler(orderService *services.OrderService, whatsappService *services.WhatsAppService) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		whatsappService: whatsappService,
	}
}

// POST /orders/create
//
// The response bodies here are a wire contract with the storefront:
// {success, order_id, whatsapp_url, message} on 201 and
// {success, errors: {field: [messages]}} on 400.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"errors": gin.H{
				"non_field_errors": []string{"Invalid request body."},
			},
		})
		return
	}

	order, fieldErrors, err := h.orderService.CreateOrder(&req)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"errors":  fieldErrors,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"order_id":     order.ID,
		"whatsapp_url": h.whatsappService.OrderLink(order),
		"message":      "Order created successfully",
	})
}

// GET /orders (authenticated)
func (h *OrderHandler) GetOrders(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	orders, total, err := h.orderService.ListOrders(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(orders, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /whatsapp
func (h *OrderHandler) GetWhatsAppNumber(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"whatsapp_number": h.whatsappService.Number(),
	})
}
