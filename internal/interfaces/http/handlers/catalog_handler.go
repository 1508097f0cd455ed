package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/synthspec/synthspec/internal/application/spectra"
)

// CatalogHandler serves the molecule picklist.
type CatalogHandler struct {
	svc spectra.Service
}

// NewCatalogHandler creates the handler.
func NewCatalogHandler(svc spectra.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// List handles GET /api/v1/catalog/molecules.
func (h *CatalogHandler) List(c *gin.Context) {
	respondOK(c, h.svc.ListMolecules(c.Request.Context()))
}

// Get handles GET /api/v1/catalog/molecules/:name.
func (h *CatalogHandler) Get(c *gin.Context) {
	m, err := h.svc.GetMolecule(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, m)
}
