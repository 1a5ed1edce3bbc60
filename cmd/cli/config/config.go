// Package config is the CLI's local state store: API URL, bearer token,
// and the last-used saved view. The view preference is deliberately
// client-side state; the server never persists it.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

const defaultAPIURL = "http://localhost:8080"

// APIURL returns the base URL for the AssetOps API.
// It can be overridden with the ASSETOPS_API_URL environment variable.
func APIURL() string {
	if v := os.Getenv("ASSETOPS_API_URL"); v != "" {
		return v
	}
	return defaultAPIURL
}

// State is what the CLI remembers between runs.
type State struct {
	Token    string `json:"token,omitempty"`
	LastView string `json:"last_view,omitempty"`
}

// path returns the config file location. ASSETOPS_CONFIG overrides it
// (used by tests).
func path() (string, error) {
	if v := os.Getenv("ASSETOPS_CONFIG"); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "assetops", "config.json"), nil
}

// Load reads the stored state. A missing file yields empty state.
func Load() (State, error) {
	p, err := path()
	if err != nil {
		return State{}, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return State{}, nil
	}
	if err != nil {
		return State{}, err
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, err
	}
	return s, nil
}

// Save writes the state, creating the directory if needed.
func Save(s State) error {
	p, err := path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o600)
}

// SaveToken stores the bearer token.
func SaveToken(token string) error {
	s, err := Load()
	if err != nil {
		return err
	}
	s.Token = token
	return Save(s)
}

// ReadToken returns the stored bearer token, or an error when not logged in.
func ReadToken() (string, error) {
	s, err := Load()
	if err != nil {
		return "", err
	}
	if s.Token == "" {
		return "", errors.New("not logged in")
	}
	return s.Token, nil
}

// ClearToken removes the stored token, keeping the rest of the state.
func ClearToken() error {
	s, err := Load()
	if err != nil {
		return err
	}
	s.Token = ""
	return Save(s)
}

// SaveLastView remembers the last saved view the user listed with.
func SaveLastView(key string) error {
	s, err := Load()
	if err != nil {
		return err
	}
	s.LastView = key
	return Save(s)
}

// LastView returns the remembered view key, empty when none.
func LastView() string {
	s, err := Load()
	if err != nil {
		return ""
	}
	return s.LastView
}
