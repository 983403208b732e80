// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package districts

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coletl/vote-simplified-us/civic"
)

type fakeCivicInfo struct {
	fakeCivic
	elections []civic.ElectionInfo
	voterInfo *civic.VoterInfoResponse
	infoErr   error
}

func (f *fakeCivicInfo) Elections(_ context.Context) ([]civic.ElectionInfo, error) {
	return f.elections, f.infoErr
}

func (f *fakeCivicInfo) VoterInfo(_ context.Context, _, _ string) (*civic.VoterInfoResponse, error) {
	return f.voterInfo, f.infoErr
}

func setupServerTest(t *testing.T, api *fakeCivicInfo) (*gin.Engine, *MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := NewMemoryStore()
	svc := NewService(ServiceOptions{Civic: api, Store: store})
	srv := NewServer(svc, api, nil)

	return srv.Router(), store
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupServerTest(t, &fakeCivicInfo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLookupEndpoint(t *testing.T) {
	api := &fakeCivicInfo{fakeCivic: fakeCivic{divisions: seattleDivisions}}
	router, store := setupServerTest(t, api)

	body, _ := json.Marshal(civic.AddressInput{
		Street: "123 Main St",
		City:   "Seattle",
		State:  "WA",
		Zip:    "98101",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/districts/lookup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "u1")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Found     bool                 `json:"found"`
		Districts civic.DistrictRecord `json:"districts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Found)
	assert.Equal(t, "Seattle", resp.Districts.Municipal)

	_, found, err := store.Load("u1")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestLookupEndpointValidation(t *testing.T) {
	router, _ := setupServerTest(t, &fakeCivicInfo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/districts/lookup", strings.NewReader(`{"state": "WA"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLookupEndpointNoDivisions(t *testing.T) {
	router, _ := setupServerTest(t, &fakeCivicInfo{})

	body, _ := json.Marshal(civic.AddressInput{Street: "1 Nowhere Rd", City: "Ghost Town", State: "NV"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/districts/lookup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestLookupEndpointIssuesSessionCookie(t *testing.T) {
	api := &fakeCivicInfo{fakeCivic: fakeCivic{divisions: seattleDivisions}}
	router, _ := setupServerTest(t, api)

	body, _ := json.Marshal(civic.AddressInput{Street: "123 Main St", City: "Seattle", State: "WA"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/districts/lookup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, sessionCookie, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestGeolocateEndpointWithoutProvider(t *testing.T) {
	router, _ := setupServerTest(t, &fakeCivicInfo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/districts/geolocate", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestGetDistrictsEndpoint(t *testing.T) {
	router, store := setupServerTest(t, &fakeCivicInfo{})

	rec := civic.DistrictRecord{State: "Washington", Municipal: "Seattle"}
	require.NoError(t, store.Save("u1", rec))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/districts", nil)
	req.Header.Set("X-User-ID", "u1")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"found":true`)
	assert.Contains(t, w.Body.String(), "Seattle")
}

func TestGetDistrictsEndpointEmpty(t *testing.T) {
	router, _ := setupServerTest(t, &fakeCivicInfo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/districts", nil)
	req.Header.Set("X-User-ID", "nobody")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"found":false`)
}

func TestElectionsEndpoint(t *testing.T) {
	api := &fakeCivicInfo{elections: []civic.ElectionInfo{
		{ID: "8000", Name: "Washington State General", ElectionDay: "2026-11-03"},
	}}
	router, _ := setupServerTest(t, api)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/elections", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Washington State General")
}

func TestVoterInfoEndpoint(t *testing.T) {
	api := &fakeCivicInfo{voterInfo: &civic.VoterInfoResponse{
		Election: civic.ElectionInfo{ID: "8000", Name: "Washington State General", ElectionDay: "2026-11-03"},
	}}
	router, _ := setupServerTest(t, api)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/voterinfo?address=Seattle,+WA", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "November 3, 2026")
}

func TestVoterInfoEndpointUsesStoredDistricts(t *testing.T) {
	api := &fakeCivicInfo{voterInfo: &civic.VoterInfoResponse{
		Election: civic.ElectionInfo{ID: "8000", Name: "Washington State General", ElectionDay: "2026-11-03"},
	}}
	router, store := setupServerTest(t, api)

	require.NoError(t, store.Save("u1", civic.DistrictRecord{State: "Washington", Municipal: "Seattle"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/voterinfo", nil)
	req.Header.Set("X-User-ID", "u1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVoterInfoEndpointRequiresSomeAddress(t *testing.T) {
	router, _ := setupServerTest(t, &fakeCivicInfo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/voterinfo", nil)
	req.Header.Set("X-User-ID", "nobody")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVoterInfoEndpointReportsStoreErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	api := &fakeCivicInfo{}
	svc := NewService(ServiceOptions{Civic: api, Store: failingStore{}})
	router := NewServer(svc, api, nil).Router()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/voterinfo", nil)
	req.Header.Set("X-User-ID", "u1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "address query parameter is required")
}

func TestRegistrationEndpoint(t *testing.T) {
	router, _ := setupServerTest(t, &fakeCivicInfo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/registration/wa", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Washington")
	assert.Contains(t, w.Body.String(), "votewa.gov")
}

func TestRegistrationEndpointUnknownState(t *testing.T) {
	router, _ := setupServerTest(t, &fakeCivicInfo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/registration/zz", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegistrationListEndpoint(t *testing.T) {
	router, _ := setupServerTest(t, &fakeCivicInfo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/registration", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		States []struct {
			Code string `json:"code"`
		} `json:"states"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.States, 56)
}
