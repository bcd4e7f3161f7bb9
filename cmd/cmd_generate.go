// Copyright 2026 The LocProof Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/locproof/locproof/attest"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new Ed25519 signing key pair",
	Long: `
Generates a fresh key pair and prints both halves as 0x-prefixed, zero-padded
hex. The Private line is the signing key: keep it secret. The Public line is
what verifiers need.
`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		pair, err := attest.GenerateKey(rand.Reader)
		if err != nil {
			return fmt.Errorf("generating key pair: %w", err)
		}

		if isatty.IsTerminal(os.Stdout.Fd()) {
			fmt.Fprintln(os.Stderr, "The private key is about to be shown on this terminal; make sure nobody is watching.")
		}

		fmt.Printf("Private=%s\nPublic=%s\n", pair.Private.Hex(), pair.Public.Hex())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
