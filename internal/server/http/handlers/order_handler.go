package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zepcart/marketplace/internal/domain/model"
	"github.com/zepcart/marketplace/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/order/create.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, err)
		return
	}

	orders, err := h.facade.CreateOrders(c.Request.Context(), req.Submission())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("Order(s) created successfully", orders))
}

// UpdateStatus handles PATCH /api/order/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req dto.UpdateStatusRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, err)
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), identity, c.Param("id"), model.OrderStatus(req.Status), req.CancellationReason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Order status updated", order))
}

// VendorOrders handles GET /api/order/vendor.
func (h *OrderHandler) VendorOrders(c *gin.Context) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		unauthorized(c)
		return
	}

	orders, err := h.facade.VendorOrders(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Vendor Orders", nonNil(orders)))
}

// CustomerOrders handles GET /api/order/customer/:customerId.
func (h *OrderHandler) CustomerOrders(c *gin.Context) {
	orders, err := h.facade.CustomerOrders(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Customer Orders", nonNil(orders)))
}

func nonNil(orders []model.Order) []model.Order {
	if orders == nil {
		return []model.Order{}
	}
	return orders
}
