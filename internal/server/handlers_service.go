package server

import (
	"net/http"

	"github.com/bobmcallan/advisor/internal/models"
)

// handleCatalog handles GET /api/catalog — the published advisory metadata:
// category descriptions, advisory allocation bounds, risk labels and age bands.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data":   models.NewCatalog(),
	})
}
