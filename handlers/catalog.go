package handlers

import (
	"net/http"

	"sewakit/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the bookable catalog.
type CatalogHandler struct {
	Svc    catalog.CatalogService
	Logger *zap.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

// GetCatalog handles GET /api/catalog. The optional query parameter narrows
// the list by name or code; only available items are ever returned.
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	query := c.Query("query")

	items, err := h.Svc.GetCatalog(query)
	if err != nil {
		h.Logger.Error("GetCatalog: failed to fetch catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to fetch catalog",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
