package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/nextswitchio/guestly/internal/domain"
	"github.com/nextswitchio/guestly/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateOrder(c *ginext.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	items := make([]domain.ReserveRequest, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.ReserveRequest{Tier: it.Tier, Quantity: it.Quantity})
	}

	order, err := h.orderService.Create(c.Request.Context(), req.UserID, req.EventID, items)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

func (h *Handler) GetOrder(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	order, err := h.orderService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func (h *Handler) PayOrder(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	var req dto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.orderService.Pay(c.Request.Context(), id, domain.PaymentMethod(req.Method))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func (h *Handler) GetUserOrders(c *ginext.Context) {
	userID := c.Param("id")

	orders, err := h.orderService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.ToOrderResponse(o))
	}

	c.JSON(http.StatusOK, resp)
}
