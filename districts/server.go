// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package districts

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coletl/vote-simplified-us/civic"
	"github.com/coletl/vote-simplified-us/directory"
)

// CivicInfo extends CivicAPI with the election and ballot endpoints
// the HTTP surface exposes.
type CivicInfo interface {
	CivicAPI
	Elections(ctx context.Context) ([]civic.ElectionInfo, error)
	VoterInfo(ctx context.Context, address, electionID string) (*civic.VoterInfoResponse, error)
}

// Server is the HTTP surface: district lookups, stored districts,
// elections, voter info, and the registration directory.
type Server struct {
	svc   *Service
	civic CivicInfo
	dir   *directory.Resolver
}

func NewServer(svc *Service, civicClient CivicInfo, dir *directory.Resolver) *Server {
	if dir == nil {
		dir = directory.NewResolver(nil)
	}

	return &Server{
		svc:   svc,
		civic: civicClient,
		dir:   dir,
	}
}

const sessionCookie = "vs_session"

// userID identifies the caller: an explicit X-User-ID header wins,
// otherwise an anonymous session cookie is issued on first contact.
func userID(ctx *gin.Context) string {
	if id := ctx.GetHeader("X-User-ID"); id != "" {
		return id
	}

	if id, err := ctx.Cookie(sessionCookie); err == nil && id != "" {
		return id
	}

	id := uuid.NewString()
	ctx.SetCookie(sessionCookie, id, 60*60*24*365, "/", "", false, true)

	return id
}

// writeLookupError maps lookup failure classes to HTTP statuses.
func writeLookupError(ctx *gin.Context, err error) {
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	status := http.StatusInternalServerError

	switch lookupErr.Kind {
	case KindValidation:
		status = http.StatusBadRequest
	case KindPermissionDenied:
		status = http.StatusForbidden
	case KindUnsupportedPlatform:
		status = http.StatusNotImplemented
	case KindLookupFailure:
		status = http.StatusBadGateway
	}

	ctx.JSON(status, gin.H{"error": lookupErr.Message})
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", s.health)
	r.POST("/api/districts/lookup", s.lookupDistricts)
	r.POST("/api/districts/geolocate", s.geolocateDistricts)
	r.GET("/api/districts", s.getDistricts)
	r.GET("/api/elections", s.listElections)
	r.GET("/api/voterinfo", s.getVoterInfo)
	r.GET("/api/registration", s.listRegistration)
	r.GET("/api/registration/:state", s.getRegistration)

	return r
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	return s.Router().Run(addr)
}

func (s *Server) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) lookupDistricts(ctx *gin.Context) {
	var addr civic.AddressInput
	if err := ctx.ShouldBindJSON(&addr); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})

		return
	}

	rec, err := s.svc.LookupByAddress(ctx.Request.Context(), userID(ctx), addr)
	if err != nil {
		writeLookupError(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"found": true, "districts": rec})
}

func (s *Server) geolocateDistricts(ctx *gin.Context) {
	rec, err := s.svc.LookupByGeolocation(ctx.Request.Context(), userID(ctx))
	if err != nil {
		writeLookupError(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"found": true, "districts": rec})
}

func (s *Server) getDistricts(ctx *gin.Context) {
	rec, found, err := s.svc.Districts(ctx.Request.Context(), userID(ctx))
	if err != nil {
		writeLookupError(ctx, err)

		return
	}

	if !found {
		ctx.JSON(http.StatusOK, gin.H{"found": false})

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"found": true, "districts": rec})
}

func (s *Server) listElections(ctx *gin.Context) {
	elections, err := s.civic.Elections(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "could not list elections"})

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"elections": elections})
}

func (s *Server) getVoterInfo(ctx *gin.Context) {
	address := ctx.Query("address")

	// Without an explicit address, fall back to the caller's stored
	// districts. That keeps street addresses out of this endpoint
	// entirely.
	if address == "" {
		rec, found, err := s.svc.Districts(ctx.Request.Context(), userID(ctx))
		if err != nil {
			writeLookupError(ctx, err)

			return
		}

		if !found {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "address query parameter is required"})

			return
		}

		address = rec.DisplayAddress()
	}

	info, err := s.civic.VoterInfo(ctx.Request.Context(), address, ctx.Query("electionId"))
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "voter information lookup failed"})

		return
	}

	if info == nil {
		ctx.JSON(http.StatusOK, gin.H{"found": false})

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"found": true, "voter_info": civic.SummarizeVoterInfo(info)})
}

func (s *Server) listRegistration(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"states": s.dir.States()})
}

func (s *Server) getRegistration(ctx *gin.Context) {
	info, ok := s.dir.Resolve(ctx.Param("state"))
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "unknown state code"})

		return
	}

	ctx.JSON(http.StatusOK, info)
}
