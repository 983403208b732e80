// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

// Package geocode resolves coordinates and addresses to Census Bureau
// geographies. The Census geocoder is free, unauthenticated, and
// covers every US address, which makes it the government-side
// counterpart to the commercial civic API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/coletl/vote-simplified-us/civic"
	"github.com/coletl/vote-simplified-us/spatial"
	"github.com/coletl/vote-simplified-us/utils/httputils"
)

const (
	// BaseURL of the Census Bureau geocoding service.
	BaseURL = "https://geocoding.geo.census.gov/geocoder"

	// Benchmark and Vintage pin the address locator and geography
	// release the service answers from.
	Benchmark = "Public_AR_Current"
	Vintage   = "Current_Current"
)

// Geography is a single Census geography: a state, county,
// incorporated place, or district. Only the display fields are kept.
type Geography struct {
	Name     string `json:"NAME"`
	GeoID    string `json:"GEOID"`
	State    string `json:"STUSAB"`
	Basename string `json:"BASENAME"`
}

// Geographies maps a Census layer name ("States", "Counties",
// "Incorporated Places", ...) to its matching geographies.
type Geographies map[string][]Geography

// Layer names used when recovering a coarse address.
const (
	layerStates   = "States"
	layerCounties = "Counties"
	layerPlaces   = "Incorporated Places"
)

// Client is a read-only client for the Census geocoder.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Census geocoder client. A nil httpClient gets
// the package default.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = httputils.NewClient(httputils.ClientOptions{})
	}

	return &Client{
		baseURL: BaseURL,
		client:  httpClient,
	}
}

type coordinatesResponse struct {
	Result struct {
		Geographies Geographies `json:"geographies"`
	} `json:"result"`
}

type addressResponse struct {
	Result struct {
		AddressMatches []struct {
			MatchedAddress string      `json:"matchedAddress"`
			Geographies    Geographies `json:"geographies"`
		} `json:"addressMatches"`
	} `json:"result"`
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("benchmark", Benchmark)
	params.Set("vintage", Vintage)
	params.Set("format", "json")

	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("building census request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("census request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &httputils.StatusError{Service: "census geocoder", Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding census response: %w", err)
	}

	return nil
}

// GeographiesByCoordinates reverse-geocodes a point to the Census
// geographies that contain it. The service takes x=longitude and
// y=latitude, in that order.
func (c *Client) GeographiesByCoordinates(ctx context.Context, p spatial.Point) (Geographies, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("coordinates out of range: %s", p)
	}

	params := url.Values{}
	params.Set("x", strconv.FormatFloat(p.Lng, 'f', 6, 64))
	params.Set("y", strconv.FormatFloat(p.Lat, 'f', 6, 64))

	var out coordinatesResponse
	if err := c.get(ctx, "/geographies/coordinates", params, &out); err != nil {
		return nil, err
	}

	return out.Result.Geographies, nil
}

// GeographiesByAddress forward-geocodes a one-line address. A nil map
// with a nil error means the service could not match the address.
func (c *Client) GeographiesByAddress(ctx context.Context, address string) (Geographies, error) {
	params := url.Values{}
	params.Set("address", address)

	var out addressResponse
	if err := c.get(ctx, "/geographies/onelineaddress", params, &out); err != nil {
		return nil, err
	}

	if len(out.Result.AddressMatches) == 0 {
		return nil, nil
	}

	return out.Result.AddressMatches[0].Geographies, nil
}

// RecoverAddress rebuilds a coarse, street-free address from reverse
// geocoded geographies: city and state when an incorporated place
// matched, otherwise county and state. The result carries no personal
// data and is safe to hand to the civic API.
func RecoverAddress(g Geographies) civic.AddressInput {
	var addr civic.AddressInput

	if states := g[layerStates]; len(states) > 0 {
		addr.State = states[0].State
		if addr.State == "" {
			addr.State = states[0].Name
		}
	}

	if places := g[layerPlaces]; len(places) > 0 {
		addr.City = places[0].Basename
		if addr.City == "" {
			addr.City = places[0].Name
		}
	} else if counties := g[layerCounties]; len(counties) > 0 {
		addr.City = counties[0].Name
	}

	return addr
}
