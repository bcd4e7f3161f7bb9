// Copyright 2026 The LocProof Authors
// SPDX-License-Identifier: Apache-2.0

package attest

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// EnvKey is the environment variable consulted for the signing key when the
// --key flag is not set.
const EnvKey = "LOCPROOF_KEY"

// ParseKey decodes a 32-byte key from a hex string, with or without a "0x"
// prefix. The string must be exactly 64 hex characters; leading zero bytes
// are significant and must be present.
func ParseKey(s string) (Key, error) {
	var key Key

	trimmed := strings.TrimPrefix(s, "0x")
	if len(trimmed) != KeySize*2 {
		return key, &Error{
			Kind:    ErrorKindInvalidKey,
			Message: fmt.Sprintf("key must be %d hex characters, got %d", KeySize*2, len(trimmed)),
		}
	}

	if _, err := hex.Decode(key[:], []byte(trimmed)); err != nil {
		return key, &Error{
			Kind:    ErrorKindInvalidKey,
			Message: "decoding hex key",
			Err:     err,
		}
	}

	return key, nil
}

// KeyFromSources resolves the signing key from the flag value or, when the
// flag is empty, from the environment value. It is called once at the command
// boundary; the key is then passed down explicitly, nothing reads the
// environment mid-pipeline.
func KeyFromSources(flagValue, envValue string) (Key, error) {
	switch {
	case flagValue != "":
		return ParseKey(flagValue)
	case envValue != "":
		return ParseKey(envValue)
	default:
		return Key{}, &Error{
			Kind:    ErrorKindMissingKey,
			Message: fmt.Sprintf("no key given: set --key or the %s environment variable", EnvKey),
		}
	}
}

// Hex returns the canonical hex encoding of the key: "0x" followed by 64
// lowercase hex characters, zero-padded, bytes in their natural (big-endian)
// order. Both generate output lines use this form so keys exchange cleanly
// between implementations.
func (k Key) Hex() string {
	return "0x" + hex.EncodeToString(k[:])
}
