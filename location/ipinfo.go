// Copyright 2026 The LocProof Authors
// SPDX-License-Identifier: Apache-2.0

package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// IPInfoURL is the default endpoint of the ipinfo.io service.
const IPInfoURL = "https://ipinfo.io/json"

// IPInfoClient resolves the current position from ipinfo.io, which
// geolocates the caller's public IP address. No API key is required for the
// anonymous tier.
type IPInfoClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewIPInfoClient creates an ipinfo.io provider. A nil httpClient falls back
// to a default-configured one.
func NewIPInfoClient(httpClient *http.Client) *IPInfoClient {
	if httpClient == nil {
		httpClient = NewHTTPClient(nil)
	}

	return &IPInfoClient{
		baseURL:    IPInfoURL,
		httpClient: httpClient,
	}
}

// ipInfoResponse is the subset of the ipinfo.io payload we consume. The
// position comes as a single "lat,lon" string.
type ipInfoResponse struct {
	Loc string `json:"loc"`
}

// CurrentLocation implements Provider.
func (c *IPInfoClient) CurrentLocation(ctx context.Context) (Coordinate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return Coordinate{}, fmt.Errorf("building ipinfo request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Coordinate{}, fmt.Errorf("ipinfo request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinate{}, fmt.Errorf("ipinfo returned status %d", resp.StatusCode)
	}

	var payload ipInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Coordinate{}, fmt.Errorf("decoding ipinfo response: %w", err)
	}

	return parseLoc(payload.Loc)
}

// parseLoc splits ipinfo's "latitude,longitude" string.
func parseLoc(loc string) (Coordinate, error) {
	parts := strings.Split(loc, ",")
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("invalid location format: %q", loc)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid latitude in %q: %w", loc, err)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid longitude in %q: %w", loc, err)
	}

	return Coordinate{Lat: lat, Lon: lon}, nil
}
