package server

import (
	"net/http"
)

// handleMarketQuotes handles GET /api/market/quotes?symbols=A,B — quote
// snapshots for the requested symbols, or the configured defaults when the
// parameter is absent.
func (s *Server) handleMarketQuotes(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	if s.app.MarketService == nil {
		WriteError(w, http.StatusServiceUnavailable, "market service unavailable")
		return
	}

	symbols := splitSymbols(r.URL.Query().Get("symbols"))
	if len(symbols) == 0 {
		symbols = s.app.Config.DefaultSymbols()
	}

	quotes := s.app.MarketService.GetQuotes(r.Context(), symbols)

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data": map[string]interface{}{
			"symbols": symbols,
			"quotes":  quotes,
		},
	})
}
