// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coletl/vote-simplified-us/spatial"
	"github.com/coletl/vote-simplified-us/utils/httputils"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client())
	c.baseURL = srv.URL

	return c
}

func TestGeographiesByCoordinates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geographies/coordinates", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "-122.330000", q.Get("x"))
		assert.Equal(t, "47.610000", q.Get("y"))
		assert.Equal(t, Benchmark, q.Get("benchmark"))
		assert.Equal(t, Vintage, q.Get("vintage"))
		assert.Equal(t, "json", q.Get("format"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"result": {
				"geographies": {
					"States": [{"NAME": "Washington", "GEOID": "53", "STUSAB": "WA"}],
					"Counties": [{"NAME": "King County", "GEOID": "53033"}],
					"Incorporated Places": [{"NAME": "Seattle city", "BASENAME": "Seattle", "GEOID": "5363000"}]
				}
			}
		}`))
	})

	geos, err := c.GeographiesByCoordinates(context.Background(), spatial.Point{Lat: 47.61, Lng: -122.33})
	require.NoError(t, err)

	require.Len(t, geos["States"], 1)
	assert.Equal(t, "WA", geos["States"][0].State)
	assert.Equal(t, "King County", geos["Counties"][0].Name)
}

func TestGeographiesByCoordinatesRejectsInvalidPoint(t *testing.T) {
	c := NewClient(nil)

	_, err := c.GeographiesByCoordinates(context.Background(), spatial.Point{Lat: 95, Lng: 0})
	require.Error(t, err)
}

func TestGeographiesByCoordinatesUpstreamFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})

	_, err := c.GeographiesByCoordinates(context.Background(), spatial.Point{Lat: 47.61, Lng: -122.33})
	require.Error(t, err)

	var statusErr *httputils.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
}

func TestGeographiesByAddress(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geographies/onelineaddress", r.URL.Path)
		assert.Equal(t, "123 Main St, Seattle, WA 98101", r.URL.Query().Get("address"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"result": {
				"addressMatches": [
					{
						"matchedAddress": "123 MAIN ST, SEATTLE, WA, 98101",
						"geographies": {
							"States": [{"NAME": "Washington", "STUSAB": "WA"}]
						}
					}
				]
			}
		}`))
	})

	geos, err := c.GeographiesByAddress(context.Background(), "123 Main St, Seattle, WA 98101")
	require.NoError(t, err)
	require.NotNil(t, geos)
	assert.Equal(t, "Washington", geos["States"][0].Name)
}

func TestGeographiesByAddressNoMatch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result": {"addressMatches": []}}`))
	})

	geos, err := c.GeographiesByAddress(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Nil(t, geos)
}

func TestRecoverAddress(t *testing.T) {
	tests := []struct {
		name     string
		geos     Geographies
		wantCity string
		wantSt   string
	}{
		{
			name: "place and state",
			geos: Geographies{
				"States":              {{Name: "Washington", State: "WA"}},
				"Counties":            {{Name: "King County"}},
				"Incorporated Places": {{Name: "Seattle city", Basename: "Seattle"}},
			},
			wantCity: "Seattle",
			wantSt:   "WA",
		},
		{
			name: "county fallback outside any place",
			geos: Geographies{
				"States":   {{Name: "Washington", State: "WA"}},
				"Counties": {{Name: "King County"}},
			},
			wantCity: "King County",
			wantSt:   "WA",
		},
		{
			name: "state name when no abbreviation",
			geos: Geographies{
				"States": {{Name: "Washington"}},
			},
			wantCity: "",
			wantSt:   "Washington",
		},
		{
			name:     "empty geographies",
			geos:     Geographies{},
			wantCity: "",
			wantSt:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := RecoverAddress(tt.geos)

			assert.Equal(t, tt.wantCity, addr.City)
			assert.Equal(t, tt.wantSt, addr.State)
			assert.Empty(t, addr.Street)
			assert.Empty(t, addr.Zip)
		})
	}
}
