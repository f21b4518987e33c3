package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bobmcallan/advisor/internal/interfaces"
	"github.com/bobmcallan/advisor/internal/models"
)

// profilePayload mirrors models.Profile but accepts risk_tolerance as either
// a number in [0,1] or a catalog label ("conservative", "moderate",
// "aggressive").
type profilePayload struct {
	Age            int             `json:"age"`
	AnnualIncome   float64         `json:"annual_income"`
	AnnualExpenses float64         `json:"annual_expenses"`
	Savings        float64         `json:"savings"`
	RiskTolerance  json.RawMessage `json:"risk_tolerance"`
	Goals          []models.Goal   `json:"goals"`
}

// parseRiskTolerance resolves the raw risk_tolerance value to a number.
func parseRiskTolerance(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 {
		return 0, errors.New("risk_tolerance is required")
	}

	var value float64
	if err := json.Unmarshal(raw, &value); err == nil {
		return value, nil
	}

	var label string
	if err := json.Unmarshal(raw, &label); err == nil {
		if value, ok := models.RiskLabels[strings.ToLower(strings.TrimSpace(label))]; ok {
			return value, nil
		}
		return 0, fmt.Errorf("unknown risk tolerance label %q", label)
	}

	return 0, errors.New("risk_tolerance must be a number or label")
}

// toProfile converts the payload to a models.Profile, resolving labels.
func (p *profilePayload) toProfile() (models.Profile, error) {
	tolerance, err := parseRiskTolerance(p.RiskTolerance)
	if err != nil {
		return models.Profile{}, err
	}
	return models.Profile{
		Age:            p.Age,
		AnnualIncome:   p.AnnualIncome,
		AnnualExpenses: p.AnnualExpenses,
		Savings:        p.Savings,
		RiskTolerance:  tolerance,
		Goals:          p.Goals,
	}, nil
}

// handleAdvice handles POST /api/advice — score a profile and compose advice.
// The endpoint is open and stateless; nothing is stored.
func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Profile       *profilePayload `json:"profile"`
		IncludeMarket bool            `json:"include_market"`
		Symbols       []string        `json:"symbols"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Profile == nil {
		WriteError(w, http.StatusBadRequest, "profile is required")
		return
	}

	profile, err := req.Profile.toProfile()
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	bundle, err := s.app.AdvisorService.Analyze(r.Context(), profile, interfaces.AnalyzeOptions{
		IncludeMarket: req.IncludeMarket,
		Symbols:       req.Symbols,
	})
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			WriteErrorWithCode(w, http.StatusBadRequest, verr.Error(), "invalid_profile")
			return
		}
		s.logger.Error().Err(err).Msg("Advice pipeline failed")
		WriteError(w, http.StatusInternalServerError, "failed to compose advice")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data": map[string]interface{}{
			"bundle": bundle,
			"metrics": map[string]interface{}{
				"risk_score":        bundle.Analysis.RiskScore,
				"risk_category":     bundle.Analysis.RiskCategory,
				"expected_return":   bundle.Analysis.ExpectedReturn,
				"investable_amount": bundle.Profile.InvestableAmount(),
			},
		},
	})
}
