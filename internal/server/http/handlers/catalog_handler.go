package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zepcart/marketplace/internal/domain/model"
	"github.com/zepcart/marketplace/internal/server/http/dto"
)

// CatalogHandler manages product availability.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// UpdateStockStatus handles PATCH /api/catalog/:kind/products/:id/status.
func (h *CatalogHandler) UpdateStockStatus(c *gin.Context) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req dto.StockStatusRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, err)
		return
	}

	change, err := h.facade.UpdateStockStatus(c.Request.Context(), identity,
		model.BusinessType(c.Param("kind")), c.Param("id"), model.StockStatus(req.StockStatus))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Stock status updated", change))
}
