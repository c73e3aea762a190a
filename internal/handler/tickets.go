package handler

import (
	"net/http"

	"github.com/nextswitchio/guestly/internal/domain"
	"github.com/nextswitchio/guestly/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) SeedTiers(c *ginext.Context) {
	eventID := c.Param("id")

	var req dto.SeedTiersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	tiers := make([]domain.SeedTier, 0, len(req.Tiers))
	for _, t := range req.Tiers {
		tiers = append(tiers, domain.SeedTier{
			Name:       t.Name,
			PriceCents: t.PriceCents,
			Capacity:   t.Capacity,
		})
	}

	if err := h.inventoryService.Seed(c.Request.Context(), eventID, tiers); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"status": "seeded"})
}

func (h *Handler) GetAvailability(c *ginext.Context) {
	eventID := c.Param("id")

	availability, err := h.inventoryService.GetAvailability(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(availability))
}
