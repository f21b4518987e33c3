package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/bobmcallan/advisor/internal/models"
)

// --- Mocks ---

type stubMarket struct {
	requested []string
	quotes    map[string]models.Quote
}

func (m *stubMarket) GetQuotes(ctx context.Context, symbols []string) map[string]models.Quote {
	m.requested = symbols
	out := make(map[string]models.Quote, len(symbols))
	for _, symbol := range symbols {
		out[symbol] = m.quotes[symbol]
	}
	return out
}

func TestMarketQuotes(t *testing.T) {
	srv := newTestServerWithStorage(t)
	stub := &stubMarket{quotes: map[string]models.Quote{
		"AAPL": {CurrentPrice: 182.5, ChangePercent: 1.2, Volume: 1200},
		"MSFT": {CurrentPrice: 410.0, ChangePercent: -0.4, Volume: 900},
	}}
	srv.app.MarketService = stub

	rr := doJSON(t, srv, http.MethodGet, "/api/market/quotes?symbols=aapl,%20msft", nil, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	if len(stub.requested) != 2 || stub.requested[0] != "AAPL" || stub.requested[1] != "MSFT" {
		t.Errorf("expected normalized symbols [AAPL MSFT], got %v", stub.requested)
	}

	data := decodeData(t, rr)
	quotes, _ := data["quotes"].(map[string]interface{})
	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(quotes))
	}
	aapl, _ := quotes["AAPL"].(map[string]interface{})
	if aapl["current_price"] != 182.5 {
		t.Errorf("AAPL current_price = %v", aapl["current_price"])
	}
}

func TestMarketQuotes_DefaultSymbols(t *testing.T) {
	srv := newTestServerWithStorage(t)
	stub := &stubMarket{}
	srv.app.MarketService = stub

	rr := doJSON(t, srv, http.MethodGet, "/api/market/quotes", nil, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	defaults := srv.app.Config.DefaultSymbols()
	if len(stub.requested) != len(defaults) {
		t.Fatalf("expected %d default symbols, got %v", len(defaults), stub.requested)
	}
	for i, symbol := range defaults {
		if stub.requested[i] != symbol {
			t.Errorf("symbol %d = %q, want %q", i, stub.requested[i], symbol)
		}
	}
}

func TestMarketQuotes_NilClientYieldsZeroQuotes(t *testing.T) {
	srv := newTestServerWithStorage(t)

	rr := doJSON(t, srv, http.MethodGet, "/api/market/quotes?symbols=AAPL", nil, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	data := decodeData(t, rr)
	quotes, _ := data["quotes"].(map[string]interface{})
	aapl, _ := quotes["AAPL"].(map[string]interface{})
	if aapl == nil {
		t.Fatal("expected AAPL entry")
	}
	if aapl["current_price"] != 0.0 {
		t.Errorf("expected zero quote, got %v", aapl["current_price"])
	}
}

func TestMarketQuotes_RejectsPost(t *testing.T) {
	srv := newTestServerWithStorage(t)

	rr := doJSON(t, srv, http.MethodPost, "/api/market/quotes", nil, "")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
}
