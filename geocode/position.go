// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	"context"
	"errors"

	"github.com/coletl/vote-simplified-us/spatial"
)

var (
	// ErrPermissionDenied means the user refused to share their
	// position.
	ErrPermissionDenied = errors.New("position permission denied")

	// ErrUnavailable means no position provider exists on this
	// platform or the provider could not produce a fix.
	ErrUnavailable = errors.New("position unavailable")
)

// PositionSource yields the device's current position. Server
// deployments have none; CLI runs can supply a static one.
type PositionSource interface {
	Current(ctx context.Context) (spatial.Point, error)
}

// StaticPosition is a PositionSource pinned to a fixed point, fed from
// flags or configuration.
type StaticPosition spatial.Point

func (s StaticPosition) Current(ctx context.Context) (spatial.Point, error) {
	p := spatial.Point(s)
	if !p.Valid() {
		return spatial.Point{}, ErrUnavailable
	}

	return p, nil
}

// NoPosition is a PositionSource for platforms without location
// support. Current always fails with ErrUnavailable.
type NoPosition struct{}

func (NoPosition) Current(ctx context.Context) (spatial.Point, error) {
	return spatial.Point{}, ErrUnavailable
}
