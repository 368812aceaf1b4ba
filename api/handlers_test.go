package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthCheckHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	HealthCheckHandler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %s", contentType)
	}

	var response map[string]interface{}
	err := json.NewDecoder(resp.Body).Decode(&response)
	if err != nil {
		t.Errorf("Failed to decode response: %v", err)
	}

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}

	if response["server"] != "mcp-chunkmill-server" {
		t.Errorf("Expected server 'mcp-chunkmill-server', got %v", response["server"])
	}
}

func TestGetSplitterDefaultsHandler(t *testing.T) {
	SetDefaultChunkSize(1000)
	SetDefaultOverlap(500)

	req := httptest.NewRequest(http.MethodGet, "/defaults", nil)
	w := httptest.NewRecorder()

	GetSplitterDefaultsHandler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var response map[string]interface{}
	err := json.NewDecoder(resp.Body).Decode(&response)
	if err != nil {
		t.Errorf("Failed to decode response: %v", err)
	}

	if response["success"] != true {
		t.Error("Expected success to be true")
	}
	if response["chunk_size"] != float64(1000) {
		t.Errorf("Expected chunk_size 1000, got %v", response["chunk_size"])
	}
	if response["overlap"] != float64(500) {
		t.Errorf("Expected overlap 500, got %v", response["overlap"])
	}
}

func TestGetSplitterDefaultsHandler_MethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/defaults", nil)
	w := httptest.NewRecorder()

	GetSplitterDefaultsHandler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected status code %d, got %d", http.StatusMethodNotAllowed, resp.StatusCode)
	}
}
