package config

import (
	"path/filepath"
	"testing"
)

func TestStateRoundTrip(t *testing.T) {
	t.Setenv("ASSETOPS_CONFIG", filepath.Join(t.TempDir(), "config.json"))

	// Missing file is empty state, not an error.
	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Token != "" || s.LastView != "" {
		t.Errorf("expected empty state, got %+v", s)
	}

	if err := SaveToken("tok-123"); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	if err := SaveLastView("maintenance_focus"); err != nil {
		t.Fatalf("SaveLastView: %v", err)
	}

	tok, err := ReadToken()
	if err != nil || tok != "tok-123" {
		t.Errorf("ReadToken = %q, %v", tok, err)
	}
	if v := LastView(); v != "maintenance_focus" {
		t.Errorf("LastView = %q", v)
	}

	// Logout keeps the view preference.
	if err := ClearToken(); err != nil {
		t.Fatalf("ClearToken: %v", err)
	}
	if _, err := ReadToken(); err == nil {
		t.Error("expected error after ClearToken")
	}
	if v := LastView(); v != "maintenance_focus" {
		t.Errorf("LastView after logout = %q", v)
	}
}

func TestAPIURLOverride(t *testing.T) {
	t.Setenv("ASSETOPS_API_URL", "http://api.internal:9000")
	if got := APIURL(); got != "http://api.internal:9000" {
		t.Errorf("APIURL = %q", got)
	}
}
