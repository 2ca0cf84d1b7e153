package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	config "github.com/tbeaudouin05/payment-processors/api/config"
)

// Remote HTTP integration tests against a deployed gateway at INTEGRATION_BASE_URL.

func remoteBaseURL(t *testing.T) string {
	t.Helper()
	ensureConfig(t)
	if config.AppConfig.IntegrationBaseURL == "" {
		t.Skip("INTEGRATION_BASE_URL not set")
	}
	return config.AppConfig.IntegrationBaseURL
}

func TestCreateProcessorHTTP_Remote_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in -short mode")
	}
	base := remoteBaseURL(t)

	payload := map[string]any{"owner": "", "provider": "stripe"}
	b, _ := json.Marshal(payload)
	resp, err := http.Post(base+"/api/processors", "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		t.Fatalf("expected non-200 for invalid payload, got %d", resp.StatusCode)
	}
}

func TestGetDefaultProcessorHTTP_Remote_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in -short mode")
	}
	base := remoteBaseURL(t)

	resp, err := http.Get(base + "/api/processors/remote-integration-owner/default")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		t.Fatalf("expected non-200 for an owner without processors, got %d", resp.StatusCode)
	}
}
