// Copyright 2026 The LocProof Authors
// SPDX-License-Identifier: Apache-2.0

// Package attest implements the location-to-signature pipeline: a geohash
// claim is canonically encoded, hashed with Blake2b-256 and signed with
// Ed25519, producing an attestation any holder of the public key can verify.
package attest

import (
	"context"
	"fmt"

	"github.com/locproof/locproof/geohash"
	"github.com/locproof/locproof/location"
)

// Attestation is the all-or-nothing result of a run: the geohash that was
// signed and its detached signature. No partial result is ever produced.
type Attestation struct {
	Geohash   string    `json:"geohash"`
	Signature Signature `json:"signature"`
}

// Attestor composes the pipeline stages. It depends only on the Provider and
// Hasher capabilities, never on a concrete implementation, so both can be
// substituted in tests.
type Attestor struct {
	Provider location.Provider
	Hasher   Hasher
}

// Attest acquires the current position, encodes it as a geohash with the
// given precision and signs it with priv.
//
// The precision is validated before the network lookup so an invalid call
// never spends a request. The raw key is not retained: it is used for the
// single Sign call and goes out of scope with the stack frame.
func (a *Attestor) Attest(ctx context.Context, priv Key, precision int) (Attestation, error) {
	if precision < geohash.MinPrecision || precision > geohash.MaxPrecision {
		return Attestation{}, &Error{
			Kind:    ErrorKindInvalidPrecision,
			Message: fmt.Sprintf("accuracy must be between %d and %d, got %d", geohash.MinPrecision, geohash.MaxPrecision, precision),
		}
	}

	coord, err := a.Provider.CurrentLocation(ctx)
	if err != nil {
		return Attestation{}, &Error{
			Kind:    ErrorKindLocationUnavailable,
			Message: "looking up current location",
			Err:     err,
		}
	}

	hash, err := a.hash(coord, precision)
	if err != nil {
		return Attestation{}, err
	}

	return Attestation{
		Geohash:   hash.geohash,
		Signature: Sign(priv, hash.digest[:]),
	}, nil
}

type hashed struct {
	geohash string
	digest  [DigestSize]byte
}

func (a *Attestor) hash(coord location.Coordinate, precision int) (hashed, error) {
	g, err := geohash.Encode(coord.Lat, coord.Lon, precision)
	if err != nil {
		return hashed{}, &Error{
			Kind:    Kind(err),
			Message: "encoding geohash",
			Err:     err,
		}
	}

	return hashed{geohash: g, digest: a.hasher().Hash(CanonicalPayload(g))}, nil
}

func (a *Attestor) hasher() Hasher {
	if a.Hasher == nil {
		return Blake2b256{}
	}

	return a.Hasher
}

// VerifyClaim reports whether sig is a valid attestation of the claimed
// geohash under pub, using the given hasher (nil means the default
// Blake2b-256). Malformed claims verify false; the error reports only
// structurally invalid geohash strings so callers can distinguish "forged"
// from "not a geohash".
func VerifyClaim(pub Key, claimed string, sig Signature, hasher Hasher) (bool, error) {
	if !geohash.Valid(claimed) {
		return false, fmt.Errorf("%w: %q", geohash.ErrInvalidGeohash, claimed)
	}

	if hasher == nil {
		hasher = Blake2b256{}
	}

	digest := hasher.Hash(CanonicalPayload(claimed))

	return Verify(pub, digest[:], sig), nil
}
