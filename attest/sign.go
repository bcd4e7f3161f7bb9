// Copyright 2026 The LocProof Authors
// SPDX-License-Identifier: Apache-2.0

package attest

import (
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"io"
)

// Key sizes of the Ed25519 scheme. A private key is the 32-byte seed; a
// public key is the 32-byte compressed point encoding.
const (
	KeySize       = 32
	SignatureSize = 64
)

// Key is a 32-byte Ed25519 key, private (seed) or public (point) depending on
// context. The private form is sensitive: it must never be logged or
// transmitted.
type Key [KeySize]byte

// Signature is a detached 64-byte Ed25519 signature.
//
// Its JSON form is the array of the 64 unsigned byte values, e.g.
// [12,250,0,…]. That form, not base64 and not hex, is the documented output
// contract of the run command, kept deliberately trivial for downstream
// tooling to parse.
type Signature [SignatureSize]byte

// MarshalJSON encodes the signature as a JSON array of byte values.
func (s Signature) MarshalJSON() ([]byte, error) {
	values := make([]uint16, SignatureSize)
	for i, b := range s {
		values[i] = uint16(b)
	}

	return json.Marshal(values)
}

// UnmarshalJSON decodes a JSON array of exactly 64 byte values.
func (s *Signature) UnmarshalJSON(data []byte) error {
	var values []uint16
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("signature must be a JSON array of byte values: %w", err)
	}

	if len(values) != SignatureSize {
		return fmt.Errorf("signature must have %d byte values, got %d", SignatureSize, len(values))
	}

	for i, v := range values {
		if v > 0xff {
			return fmt.Errorf("signature value %d at index %d exceeds a byte", v, i)
		}

		s[i] = byte(v)
	}

	return nil
}

// KeyPair is a freshly generated signing key pair.
type KeyPair struct {
	Private Key
	Public  Key
}

// Sign produces the deterministic Ed25519 signature of message under priv.
// Ed25519 derives its nonce from the key and message, so the same inputs
// always yield the same signature bytes. Key validity is enforced when the
// key is decoded (ParseKey); every 32-byte seed is a usable signing key, so
// signing itself is total.
func Sign(priv Key, message []byte) Signature {
	signer := ed25519.NewKeyFromSeed(priv[:])

	var sig Signature
	copy(sig[:], ed25519.Sign(signer, message))

	return sig
}

// Verify reports whether sig is a valid signature of message under pub.
// It is total: malformed input verifies false, it never fails or panics.
func Verify(pub Key, message []byte, sig Signature) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), message, sig[:])
}

// GenerateKey draws a fresh Ed25519 key pair from entropy. Callers pass
// crypto/rand.Reader; tests may pass a deterministic reader. This is the only
// source of non-determinism in the signing core.
func GenerateKey(entropy io.Reader) (KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(entropy)
	if err != nil {
		return KeyPair{}, &Error{
			Kind:    ErrorKindRandomnessUnavailable,
			Message: "generating key pair",
			Err:     err,
		}
	}

	var pair KeyPair
	copy(pair.Private[:], priv.Seed())
	copy(pair.Public[:], pub)

	return pair, nil
}

// PublicKey derives the public key paired with the private seed priv.
func PublicKey(priv Key) Key {
	signer := ed25519.NewKeyFromSeed(priv[:])

	var pub Key
	copy(pub[:], signer.Public().(ed25519.PublicKey))

	return pub
}
