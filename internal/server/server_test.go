package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bobmcallan/advisor/internal/app"
	"github.com/bobmcallan/advisor/internal/common"
	"github.com/bobmcallan/advisor/internal/interfaces"
	"github.com/bobmcallan/advisor/internal/models"
	"github.com/bobmcallan/advisor/internal/services/advisor"
	"github.com/bobmcallan/advisor/internal/services/market"
	"github.com/bobmcallan/advisor/internal/services/report"
	"github.com/bobmcallan/advisor/internal/storage"
)

// --- Test harness ---
//
// Tests run the full handler stack (middleware included) over a real
// BadgerHold store in a temp directory. The quote client stays nil, so
// market snapshots come back as zero quotes.

func testLogger() *common.Logger {
	return common.NewLogger("error")
}

func newTestServerWithStorage(t *testing.T) *Server {
	t.Helper()

	config := common.NewDefaultConfig()
	config.Environment = "development"
	config.Storage.Data.Path = t.TempDir()

	logger := testLogger()

	storageManager, err := storage.NewManager(logger, config)
	if err != nil {
		t.Fatalf("failed to create storage manager: %v", err)
	}
	t.Cleanup(func() { storageManager.Close() })

	marketService := market.NewService(nil, logger)
	advisorService := advisor.NewService(config, marketService, logger)
	reportService := report.NewService(logger)

	a := &app.App{
		Config:         config,
		Logger:         logger,
		Storage:        storageManager,
		MarketService:  marketService,
		AdvisorService: advisorService,
		ReportService:  reportService,
		StartupTime:    time.Now(),
	}

	return NewServer(a)
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, srv *Server, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)
	return rr
}

// decodeData unpacks the "data" object of a response envelope.
func decodeData(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope struct {
		Status string                 `json:"status"`
		Data   map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response: %v (body: %s)", err, rr.Body.String())
	}
	if envelope.Status != "ok" {
		t.Fatalf("expected status ok, got %q (body: %s)", envelope.Status, rr.Body.String())
	}
	return envelope.Data
}

// registerAccount creates an account through the API.
func registerAccount(t *testing.T, srv *Server, username, password string) {
	t.Helper()

	rr := doJSON(t, srv, http.MethodPost, "/api/auth/register", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": password,
	}, "")
	if rr.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rr.Code, rr.Body.String())
	}
}

// loginToken authenticates and returns the bearer token.
func loginToken(t *testing.T, srv *Server, username, password string) string {
	t.Helper()

	rr := doJSON(t, srv, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rr.Code, rr.Body.String())
	}

	data := decodeData(t, rr)
	token, _ := data["token"].(string)
	if token == "" {
		t.Fatal("expected token in login response")
	}
	return token
}

// analyzedBundle runs a valid profile through the advisor pipeline.
func analyzedBundle(t *testing.T, srv *Server) *models.Bundle {
	t.Helper()

	bundle, err := srv.app.AdvisorService.Analyze(context.Background(), models.Profile{
		Age:            30,
		AnnualIncome:   75000,
		AnnualExpenses: 45000,
		Savings:        25000,
		RiskTolerance:  0.7,
		Goals: []models.Goal{
			{Description: "House deposit", TargetAmount: 100000, TimeframeYears: 5},
		},
	}, interfaces.AnalyzeOptions{})
	if err != nil {
		t.Fatalf("failed to analyze profile: %v", err)
	}
	return bundle
}
