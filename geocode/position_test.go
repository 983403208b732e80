// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	"context"
	"errors"
	"testing"

	"github.com/coletl/vote-simplified-us/spatial"
)

func TestStaticPositionCurrent(t *testing.T) {
	src := StaticPosition{Lat: 47.61, Lng: -122.33}

	got, err := src.Current(context.Background())
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}

	if got != (spatial.Point{Lat: 47.61, Lng: -122.33}) {
		t.Errorf("Current() = %v", got)
	}
}

func TestStaticPositionOutOfRange(t *testing.T) {
	src := StaticPosition{Lat: 200, Lng: 0}

	_, err := src.Current(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Current() error = %v, want ErrUnavailable", err)
	}
}

func TestNoPosition(t *testing.T) {
	_, err := NoPosition{}.Current(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Current() error = %v, want ErrUnavailable", err)
	}
}
