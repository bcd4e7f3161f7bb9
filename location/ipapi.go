// Copyright 2026 The LocProof Authors
// SPDX-License-Identifier: Apache-2.0

package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// IPAPIURL is the default endpoint of the ip-api.com service. The free tier
// is HTTP only; the paid endpoints also speak HTTPS.
const IPAPIURL = "http://ip-api.com/json"

// IPAPIClient resolves the current position from ip-api.com, a second
// keyless IP-geolocation service usable as a fallback when ipinfo.io is
// unreachable or rate limited.
type IPAPIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewIPAPIClient creates an ip-api.com provider. A nil httpClient falls back
// to a default-configured one.
func NewIPAPIClient(httpClient *http.Client) *IPAPIClient {
	if httpClient == nil {
		httpClient = NewHTTPClient(nil)
	}

	return &IPAPIClient{
		baseURL:    IPAPIURL,
		httpClient: httpClient,
	}
}

type ipAPIResponse struct {
	Status  string  `json:"status"` // "success" or "fail"
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// CurrentLocation implements Provider.
func (c *IPAPIClient) CurrentLocation(ctx context.Context) (Coordinate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return Coordinate{}, fmt.Errorf("building ip-api request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Coordinate{}, fmt.Errorf("ip-api request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinate{}, fmt.Errorf("ip-api returned status %d", resp.StatusCode)
	}

	var payload ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Coordinate{}, fmt.Errorf("decoding ip-api response: %w", err)
	}

	if payload.Status != "success" {
		return Coordinate{}, fmt.Errorf("ip-api lookup failed: %s", payload.Message)
	}

	return Coordinate{Lat: payload.Lat, Lon: payload.Lon}, nil
}
