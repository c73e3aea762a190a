package handler

import (
	"net/http"

	"github.com/nextswitchio/guestly/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) GetWallet(c *ginext.Context) {
	userID := c.Param("id")

	wallet, err := h.walletService.EnsureWallet(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

func (h *Handler) TopUpWallet(c *ginext.Context) {
	userID := c.Param("id")

	var req dto.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	description := req.Description
	if description == "" {
		description = "Wallet top up"
	}

	balance, err := h.walletService.Credit(c.Request.Context(), userID, req.AmountCents, description)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{BalanceCents: balance})
}

func (h *Handler) GetTransactions(c *ginext.Context) {
	userID := c.Param("id")

	transactions, err := h.walletService.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		resp = append(resp, dto.ToTransactionResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetSavings(c *ginext.Context) {
	userID := c.Param("id")

	savings, err := h.walletService.GetSavings(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSavingsResponse(savings))
}

func (h *Handler) SetSavingsGoal(c *ginext.Context) {
	userID := c.Param("id")

	var req dto.SavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.walletService.SetSavingsGoal(c.Request.Context(), userID, req.GoalCents); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

func (h *Handler) AddSavings(c *ginext.Context) {
	userID := c.Param("id")

	var req dto.AddSavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.walletService.AddSavings(c.Request.Context(), userID, req.AmountCents); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}
