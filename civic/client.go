// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package civic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/coletl/vote-simplified-us/utils/httputils"
)

// BaseURL of the Google Civic Information API.
const BaseURL = "https://civicinfo.googleapis.com/civicinfo/v2"

// Client is a read-only client for the civic API. All three endpoints
// it uses are unauthenticated, keyed HTTP GETs.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a civic API client. A nil httpClient gets the
// package default (10 second timeout, User-Agent header).
func NewClient(apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = httputils.NewClient(httputils.ClientOptions{})
	}

	return &Client{
		baseURL: BaseURL,
		apiKey:  apiKey,
		client:  httpClient,
	}
}

// A 4xx from the civic API means "nothing known for this query", not a
// failed call. 5xx and 429 are upstream failures and surface as
// StatusError for classification at the orchestrator boundary.
func noData(status int) bool {
	return status >= 400 && status < 500 && status != http.StatusTooManyRequests
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) (found bool, err error) {
	params.Set("key", c.apiKey)

	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return false, fmt.Errorf("building civic request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("civic request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if noData(resp.StatusCode) {
			return false, nil
		}

		return false, &httputils.StatusError{Service: "civic api", Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("decoding civic response: %w", err)
	}

	return true, nil
}

type electionsListResponse struct {
	Kind      string         `json:"kind"`
	Elections []ElectionInfo `json:"elections"`
}

// Elections lists the elections the civic API currently knows about.
// An empty or missing list is not an error.
func (c *Client) Elections(ctx context.Context) ([]ElectionInfo, error) {
	var out electionsListResponse

	found, err := c.get(ctx, "/elections", url.Values{}, &out)
	if err != nil || !found {
		return nil, err
	}

	return out.Elections, nil
}

type representativeResponse struct {
	Divisions map[string]Division `json:"divisions"`
}

// DivisionsByAddress resolves an address to the OCD divisions it
// belongs to, via the representatives endpoint. A nil map with a nil
// error means the API had no data for the address.
func (c *Client) DivisionsByAddress(ctx context.Context, address string) (map[string]Division, error) {
	params := url.Values{}
	params.Set("address", address)

	var out representativeResponse

	found, err := c.get(ctx, "/representatives", params, &out)
	if err != nil || !found {
		return nil, err
	}

	return out.Divisions, nil
}

// VoterInfo fetches ballot, polling place, and contest data for an
// address. When electionID is empty the API answers for the next
// election. A nil response with a nil error means no voter information
// is available for this address/election combination.
func (c *Client) VoterInfo(ctx context.Context, address, electionID string) (*VoterInfoResponse, error) {
	params := url.Values{}
	params.Set("address", address)

	if electionID != "" {
		params.Set("electionId", electionID)
	}

	var out VoterInfoResponse

	found, err := c.get(ctx, "/voterinfo", params, &out)
	if err != nil || !found {
		return nil, err
	}

	return &out, nil
}
