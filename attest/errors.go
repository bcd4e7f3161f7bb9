// Copyright 2026 The LocProof Authors
// SPDX-License-Identifier: Apache-2.0

package attest

import (
	"errors"
	"fmt"

	"github.com/locproof/locproof/geohash"
)

// ErrorKind classifies attestation failures.
type ErrorKind int

const (
	// ErrorKindUnknown unclassified failure.
	ErrorKindUnknown ErrorKind = iota
	// ErrorKindInvalidCoordinate latitude or longitude out of range.
	ErrorKindInvalidCoordinate
	// ErrorKindInvalidPrecision precision outside [1, 12].
	ErrorKindInvalidPrecision
	// ErrorKindInvalidKey key bytes do not decode to a valid signing key.
	ErrorKindInvalidKey
	// ErrorKindMissingKey no key supplied via flag or environment.
	ErrorKindMissingKey
	// ErrorKindLocationUnavailable lookup failed or returned unparsable data.
	ErrorKindLocationUnavailable
	// ErrorKindRandomnessUnavailable the platform entropy source failed.
	ErrorKindRandomnessUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindInvalidCoordinate:
		return "InvalidCoordinate"
	case ErrorKindInvalidPrecision:
		return "InvalidPrecision"
	case ErrorKindInvalidKey:
		return "InvalidKey"
	case ErrorKindMissingKey:
		return "MissingKey"
	case ErrorKindLocationUnavailable:
		return "LocationUnavailable"
	case ErrorKindRandomnessUnavailable:
		return "RandomnessUnavailable"
	default:
		return "Unknown"
	}
}

// Error is a classified attestation failure. Every pipeline stage surfaces a
// distinguishable kind; none are retried here and no stage substitutes a
// default for invalid input.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Kind extracts the classification of err, mapping the geohash package's
// sentinel errors onto the taxonomy. Unclassifiable errors report
// ErrorKindUnknown.
func Kind(err error) ErrorKind {
	var aerr *Error
	if errors.As(err, &aerr) {
		return aerr.Kind
	}

	switch {
	case errors.Is(err, geohash.ErrInvalidCoordinate):
		return ErrorKindInvalidCoordinate
	case errors.Is(err, geohash.ErrInvalidPrecision):
		return ErrorKindInvalidPrecision
	default:
		return ErrorKindUnknown
	}
}

// IsMissingKey reports whether err means no key was supplied at all.
func IsMissingKey(err error) bool {
	return Kind(err) == ErrorKindMissingKey
}

// IsInvalidKey reports whether err means the supplied key did not decode.
func IsInvalidKey(err error) bool {
	return Kind(err) == ErrorKindInvalidKey
}

// IsLocationUnavailable reports whether err came from the location lookup.
func IsLocationUnavailable(err error) bool {
	return Kind(err) == ErrorKindLocationUnavailable
}
