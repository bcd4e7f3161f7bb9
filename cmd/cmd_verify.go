// Copyright 2026 The LocProof Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/locproof/locproof/attest"
)

type verifyOptions struct {
	Public    string
	Geohash   string
	Signature string
}

var verifyOpts = &verifyOptions{}

var errClaimInvalid = errors.New("signature is invalid for the claimed geohash")

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check a location proof against a public key",
	Long: `
Verifies that a signature was produced over the given geohash by the holder
of the given public key. The signature is accepted as hex or as the JSON
byte-array form that run emits. Exits 0 when the proof is valid.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		pub, err := attest.ParseKey(verifyOpts.Public)
		if err != nil {
			return err
		}

		sig, err := parseSignature(verifyOpts.Signature)
		if err != nil {
			return err
		}

		cmd.SilenceUsage = true

		valid, err := attest.VerifyClaim(pub, verifyOpts.Geohash, sig, nil)
		if err != nil {
			return err
		}

		if !valid {
			return errClaimInvalid
		}

		fmt.Println("valid")

		return nil
	},
}

// parseSignature accepts either a hex string (0x optional) or the JSON array
// of byte values that run prints.
func parseSignature(s string) (attest.Signature, error) {
	var sig attest.Signature

	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal([]byte(trimmed), &sig); err != nil {
			return sig, fmt.Errorf("parsing signature array: %w", err)
		}

		return sig, nil
	}

	trimmed = strings.TrimPrefix(trimmed, "0x")
	if len(trimmed) != attest.SignatureSize*2 {
		return sig, fmt.Errorf("signature must be %d hex characters, got %d", attest.SignatureSize*2, len(trimmed))
	}

	if _, err := hex.Decode(sig[:], []byte(trimmed)); err != nil {
		return sig, fmt.Errorf("decoding hex signature: %w", err)
	}

	return sig, nil
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyOpts.Public, "public", "", "hex public key of the signer")
	verifyCmd.Flags().StringVar(&verifyOpts.Geohash, "geohash", "", "claimed geohash")
	verifyCmd.Flags().StringVar(&verifyOpts.Signature, "signature", "", "signature as hex or JSON byte array")

	_ = verifyCmd.MarkFlagRequired("public")
	_ = verifyCmd.MarkFlagRequired("geohash")
	_ = verifyCmd.MarkFlagRequired("signature")
}
