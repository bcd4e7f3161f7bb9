// Copyright 2026 The LocProof Authors
// SPDX-License-Identifier: Apache-2.0

// Package geohash implements the standard interleaved-bit geohash encoding.
//
// Geohashes produced here are wire-visible: they are the exact string that
// gets canonicalized, hashed and signed, so the bit packing must match the
// published algorithm character for character. Any standard decoder must be
// able to consume them.
package geohash

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Alphabet is the standard geohash base-32 alphabet. Note the absence of
// "a", "i", "l" and "o".
const Alphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

// MinPrecision and MaxPrecision bound the accepted geohash lengths.
const (
	MinPrecision = 1
	MaxPrecision = 12
)

// Common errors returned by the package.
var (
	ErrInvalidCoordinate = errors.New("coordinate out of range")
	ErrInvalidPrecision  = errors.New("precision out of range")
	ErrInvalidGeohash    = errors.New("invalid geohash")
)

// Encode returns the geohash of (lat, lon) with the given precision, the
// number of characters of the result.
//
// The algorithm repeatedly bisects the longitude range [-180,180] and the
// latitude range [-90,90], longitude bit first, emitting one bit per
// bisection until 5×precision bits are accumulated, then maps each 5-bit
// group through Alphabet. Purely a function of its inputs.
func Encode(lat, lon float64, precision int) (string, error) {
	if precision < MinPrecision || precision > MaxPrecision {
		return "", fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidPrecision, precision, MinPrecision, MaxPrecision)
	}

	if err := validate(lat, lon); err != nil {
		return "", err
	}

	latMin, latMax := -90.0, 90.0
	lonMin, lonMax := -180.0, 180.0

	var sb strings.Builder

	var ch, bit int

	evenBit := true // longitude first

	for sb.Len() < precision {
		if evenBit {
			mid := (lonMin + lonMax) / 2
			if lon >= mid {
				ch = ch<<1 | 1
				lonMin = mid
			} else {
				ch <<= 1
				lonMax = mid
			}
		} else {
			mid := (latMin + latMax) / 2
			if lat >= mid {
				ch = ch<<1 | 1
				latMin = mid
			} else {
				ch <<= 1
				latMax = mid
			}
		}

		evenBit = !evenBit

		bit++
		if bit == 5 {
			sb.WriteByte(Alphabet[ch])
			bit, ch = 0, 0
		}
	}

	return sb.String(), nil
}

func validate(lat, lon float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v not in [-90, 90]", ErrInvalidCoordinate, lat)
	}

	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude %v not in [-180, 180]", ErrInvalidCoordinate, lon)
	}

	return nil
}

// Box is the bounding box covered by a geohash.
type Box struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// Center returns the center point of the box.
func (b Box) Center() (lat, lon float64) {
	return (b.MinLat + b.MaxLat) / 2, (b.MinLon + b.MaxLon) / 2
}

const earthRadius = 6371e3 // meters

// haversine is the great-circle distance between two points, in meters.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// Dimensions returns the approximate extent of the box in meters:
// north-south height and east-west width measured at the box's center
// latitude. Useful to communicate what area a geohash actually claims.
func (b Box) Dimensions() (height, width float64) {
	centerLat := (b.MinLat + b.MaxLat) / 2

	height = haversine(b.MinLat, b.MinLon, b.MaxLat, b.MinLon)
	width = haversine(centerLat, b.MinLon, centerLat, b.MaxLon)

	return height, width
}

// Decode returns the bounding box a geohash designates. It is the inverse of
// Encode up to the precision of the hash: for any valid geohash g,
// Encode(Decode(g).Center(), len(g)) == g.
func Decode(s string) (Box, error) {
	if len(s) < MinPrecision || len(s) > MaxPrecision {
		return Box{}, fmt.Errorf("%w: length %d not in [%d, %d]", ErrInvalidGeohash, len(s), MinPrecision, MaxPrecision)
	}

	box := Box{MinLat: -90, MaxLat: 90, MinLon: -180, MaxLon: 180}
	evenBit := true

	for i := 0; i < len(s); i++ {
		ch := strings.IndexByte(Alphabet, s[i])
		if ch < 0 {
			return Box{}, fmt.Errorf("%w: character %q at position %d", ErrInvalidGeohash, s[i], i)
		}

		for mask := 1 << 4; mask != 0; mask >>= 1 {
			if evenBit {
				mid := (box.MinLon + box.MaxLon) / 2
				if ch&mask != 0 {
					box.MinLon = mid
				} else {
					box.MaxLon = mid
				}
			} else {
				mid := (box.MinLat + box.MaxLat) / 2
				if ch&mask != 0 {
					box.MinLat = mid
				} else {
					box.MaxLat = mid
				}
			}

			evenBit = !evenBit
		}
	}

	return box, nil
}

// Valid reports whether s is a well-formed geohash: a string of
// [MinPrecision, MaxPrecision] characters drawn from Alphabet.
func Valid(s string) bool {
	_, err := Decode(s)

	return err == nil
}
