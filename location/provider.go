// Copyright 2026 The LocProof Authors
// SPDX-License-Identifier: Apache-2.0

// Package location resolves the machine's current geographic position from
// IP-geolocation services.
package location

import (
	"context"
	"errors"
	"fmt"
)

// Coordinate is a WGS84 position.
type Coordinate struct {
	Lat float64
	Lon float64
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.5f,%.5f", c.Lat, c.Lon)
}

// Provider supplies the current position, typically over the network. The
// lookup is the only blocking step of an attestation run; ctx carries its
// deadline.
type Provider interface {
	CurrentLocation(ctx context.Context) (Coordinate, error)
}

// ErrNoProviders is returned by a Fallback with an empty provider list.
var ErrNoProviders = errors.New("no location providers configured")

// Fallback is a Provider that tries each wrapped provider in order and
// returns the first successful result.
type Fallback []Provider

// CurrentLocation implements Provider.
func (f Fallback) CurrentLocation(ctx context.Context) (Coordinate, error) {
	if len(f) == 0 {
		return Coordinate{}, ErrNoProviders
	}

	var errs []error

	for _, p := range f {
		coord, err := p.CurrentLocation(ctx)
		if err == nil {
			return coord, nil
		}

		errs = append(errs, err)

		if ctx.Err() != nil {
			break
		}
	}

	return Coordinate{}, fmt.Errorf("all providers failed: %w", errors.Join(errs...))
}

// Static is a Provider that always returns a fixed coordinate. Useful for
// tests and for signing a known position without a network lookup.
type Static Coordinate

// CurrentLocation implements Provider.
func (s Static) CurrentLocation(context.Context) (Coordinate, error) {
	return Coordinate(s), nil
}
