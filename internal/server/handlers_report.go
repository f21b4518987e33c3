package server

import (
	"net/http"

	"github.com/bobmcallan/advisor/internal/models"
)

// decodeBundle reads the advice bundle body shared by the stateless report
// and chart endpoints. Rejects bundles that were never analyzed, since the
// renderers assume a populated Analysis and Allocation.
func decodeBundle(w http.ResponseWriter, r *http.Request) (*models.Bundle, bool) {
	var bundle models.Bundle
	if !DecodeJSON(w, r, &bundle) {
		return nil, false
	}
	if bundle.Analysis.RiskCategory == "" {
		WriteError(w, http.StatusBadRequest, "bundle is not analyzed")
		return nil, false
	}
	return &bundle, true
}

// handleReportGenerate handles POST /api/reports?variant=full|summary —
// render a markdown report for the advice bundle in the request body.
func (s *Server) handleReportGenerate(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	bundle, ok := decodeBundle(w, r)
	if !ok {
		return
	}

	report, err := s.app.ReportService.Generate(r.Context(), bundle, r.URL.Query().Get("variant"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data": map[string]interface{}{
			"report": report,
		},
	})
}

// handleChartRender handles POST /api/charts/{name} — render one chart for
// the advice bundle in the request body and return it as a PNG.
func (s *Server) handleChartRender(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	name := PathParam(r, "/api/charts/", "")
	if name == "" {
		WriteError(w, http.StatusBadRequest, "chart name is required in path")
		return
	}

	bundle, ok := decodeBundle(w, r)
	if !ok {
		return
	}

	data, err := s.app.ReportService.RenderChart(r.Context(), bundle, name)
	if err != nil {
		WriteError(w, http.StatusNotFound, err.Error())
		return
	}

	WritePNG(w, data)
}
