package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	bootstrap "github.com/tbeaudouin05/payment-processors/api/bootstrap"
	config "github.com/tbeaudouin05/payment-processors/api/config"
)

func ensureConfig(t *testing.T) {
	t.Helper()
	if config.AppConfig == nil {
		cfg, err := config.LoadConfig()
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}
		config.AppConfig = cfg
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	// Use real bootstrap and services; router itself calls bootstrap.Ensure.
	ensureConfig(t)
	config.CheckNotProdDB()
	if err := bootstrap.Ensure(); err != nil {
		t.Fatalf("bootstrap ensure failed: %v", err)
	}
	h := NewRouter()
	return httptest.NewServer(h)
}

func TestCreateProcessorHTTP_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in -short mode")
	}
	ts := newTestServer(t)
	defer ts.Close()

	// Unknown owner must be rejected before any Stripe call.
	payload := map[string]any{"owner": "", "provider": "stripe", "token": "tok_visa"}
	b, _ := json.Marshal(payload)
	resp, err := http.Post(ts.URL+"/api/processors", "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing owner, got %d", resp.StatusCode)
	}
}

func TestGetProcessorHTTP_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in -short mode")
	}
	ts := newTestServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/processors/router-integration-owner/all")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 listing processors, got %d", resp.StatusCode)
	}
}
