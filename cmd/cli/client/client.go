// Package client is the thin HTTP wrapper shared by the CLI commands.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/EduardoVisconti/AssetOps/cmd/cli/config"
)

// Do performs an authenticated JSON request against the API. payload may
// be nil; out may be nil when the response body is not needed.
func Do(method, path string, payload any, out any) error {
	token, err := config.ReadToken()
	if err != nil {
		return fmt.Errorf("please login first (assetops auth login)")
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, config.APIURL()+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return err
		}
	}
	return nil
}

// Get fetches path into out.
func Get(path string, out any) error {
	return Do(http.MethodGet, path, nil, out)
}

// PrintJSON renders v as indented JSON to stdout.
func PrintJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}
