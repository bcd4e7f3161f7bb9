// Copyright 2026 The LocProof Authors
// SPDX-License-Identifier: Apache-2.0

package attest

import (
	"golang.org/x/crypto/blake2b"
)

// DigestSize is the byte length of every digest produced by a Hasher.
const DigestSize = 32

// Hasher turns a canonical payload into the fixed-size digest that gets
// signed. Implementations must be pure: same bytes in, same digest out, no
// failure modes for any input length.
type Hasher interface {
	Hash(payload []byte) [DigestSize]byte
}

// Blake2b256 is the default Hasher: unkeyed Blake2b with a 256-bit digest.
//
// The algorithm identity is part of the verification contract: a verifier
// must hash the canonical payload with Blake2b-256 before checking the
// signature. It is fixed here and never silently changed.
type Blake2b256 struct{}

// Hash computes the Blake2b-256 digest of payload.
func (Blake2b256) Hash(payload []byte) [DigestSize]byte {
	return blake2b.Sum256(payload)
}
