// Copyright 2026 The LocProof Authors
// SPDX-License-Identifier: Apache-2.0

package attest

// CanonicalPayload returns the byte sequence that gets hashed and signed for
// a geohash claim.
//
// The payload is exactly the ASCII bytes of the geohash string: no length
// prefix, no padding, no terminator. The geohash alphabet is a subset of
// ASCII, so this is also its UTF-8 encoding. This contract is wire-visible:
// verifiers in other implementations must build the identical byte sequence,
// so it must never change.
func CanonicalPayload(geohash string) []byte {
	return []byte(geohash)
}
