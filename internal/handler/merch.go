package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/nextswitchio/guestly/internal/domain"
	"github.com/nextswitchio/guestly/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateProduct(c *ginext.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	product, err := h.merchService.CreateProduct(c.Request.Context(), domain.CreateProductInput{
		EventID:     req.EventID,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Category:    req.Category,
		Stock:       req.Stock,
		Sizes:       req.Sizes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

func (h *Handler) ListProducts(c *ginext.Context) {
	products, err := h.merchService.ListProducts(c.Request.Context(), c.Query("event_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, dto.ToProductResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetProduct(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid product id"})
		return
	}

	product, err := h.merchService.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

func (h *Handler) MerchStats(c *ginext.Context) {
	stats, err := h.merchService.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMerchStatsResponse(stats))
}

func (h *Handler) CreateMerchOrder(c *ginext.Context) {
	var req dto.CreateMerchOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	items := make([]domain.StockRequest, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.StockRequest{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Size:      it.Size,
		})
	}

	order, err := h.merchService.Create(c.Request.Context(), req.UserID, req.EventID, items)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMerchOrderResponse(order))
}

func (h *Handler) GetMerchOrder(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	order, err := h.merchService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMerchOrderResponse(order))
}

func (h *Handler) PayMerchOrder(c *ginext.Context) {
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

	order, err := h.merchService.Pay(c.Request.Context(), id, domain.PaymentMethod(req.Method))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMerchOrderResponse(order))
}
