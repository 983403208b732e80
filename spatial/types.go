// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import (
	"fmt"

	"github.com/uber/h3-go/v4"
)

// Point represents a geographical point with latitude and longitude.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String formats the point the way upstream geocoders accept it,
// latitude first.
func (p Point) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lng)
}

// Valid reports whether the point lies within global coordinate bounds.
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// CoarsenResolution is the H3 resolution used to blur device positions.
// Resolution 8 cells average ~0.7 km², so the exact position never
// leaves the process while the cell centroid still resolves to the
// same electoral districts.
const CoarsenResolution = 8

// Coarsen snaps a point to the centroid of its H3 cell at
// CoarsenResolution. The input point is returned unchanged when the
// conversion fails (out-of-range coordinates).
func Coarsen(p Point) Point {
	if !p.Valid() {
		return p
	}

	cell, err := h3.LatLngToCell(h3.NewLatLng(p.Lat, p.Lng), CoarsenResolution)
	if err != nil {
		return p
	}

	center, err := h3.CellToLatLng(cell)
	if err != nil {
		return p
	}

	return Point{Lat: center.Lat, Lng: center.Lng}
}
