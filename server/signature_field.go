// Copyright 2026 The LocProof Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/locproof/locproof/attest"
)

// signatureField accepts a signature either as the JSON byte-array form the
// run command emits, or as a hex string with optional "0x" prefix. It tracks
// presence itself instead of a `binding:"required"` tag: the validator's
// required check rejects the zero struct, which would turn the all-zero
// signature (well formed, merely invalid) into a 400 instead of valid=false.
type signatureField struct {
	value attest.Signature
	set   bool
}

func (f *signatureField) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		if err := f.fromHex(s); err != nil {
			return err
		}

		f.set = true

		return nil
	}

	if err := json.Unmarshal(data, &f.value); err != nil {
		return err
	}

	f.set = true

	return nil
}

func (f *signatureField) fromHex(s string) error {
	trimmed := strings.TrimPrefix(s, "0x")
	if len(trimmed) != attest.SignatureSize*2 {
		return fmt.Errorf("signature must be %d hex characters, got %d", attest.SignatureSize*2, len(trimmed))
	}

	if _, err := hex.Decode(f.value[:], []byte(trimmed)); err != nil {
		return fmt.Errorf("decoding hex signature: %w", err)
	}

	return nil
}
