// Copyright 2026 The LocProof Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/locproof/locproof/attest"
	"github.com/locproof/locproof/location"
)

type runOptions struct {
	Key       string
	Accuracy  int
	Provider  string
	Timeout   time.Duration
	Retries   uint64
	HTTPTrace bool

	// provider, when non-nil, replaces the chain built from the flags. Tests
	// inject a stub here to observe whether a lookup happens at all.
	provider location.Provider
}

var runOpts = &runOptions{}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Sign the current location and print the signature",
	Long: `
Looks up the machine's position by IP geolocation, encodes it as a geohash of
--accuracy characters, and signs it. On success the signature is written to
stdout as a JSON array of its 64 byte values and nothing else, so the output
can be piped straight into other tooling.

The signing key comes from --key or, when the flag is absent, from the
` + attest.EnvKey + ` environment variable.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true

		return runAttestation(cmd.Context(), runOpts, os.Stdout)
	},
}

// runAttestation resolves the key, builds the provider chain and executes the
// pipeline. The key is resolved first: a missing or malformed key must fail
// before any network request is made.
func runAttestation(ctx context.Context, opts *runOptions, out io.Writer) error {
	key, err := attest.KeyFromSources(opts.Key, os.Getenv(attest.EnvKey))
	if err != nil {
		return err
	}

	provider := opts.provider
	if provider == nil {
		built, err := buildProvider(opts)
		if err != nil {
			return err
		}

		provider = built
	}

	attestor := &attest.Attestor{Provider: provider}

	att, err := attestor.Attest(ctx, key, opts.Accuracy)
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(att.Signature)
	if err != nil {
		return fmt.Errorf("encoding signature: %w", err)
	}

	fmt.Fprintln(out, string(encoded))

	return nil
}

func buildProvider(opts *runOptions) (location.Provider, error) {
	httpClient := location.NewHTTPClient(&location.ClientOptions{
		UserAgent:       fmt.Sprintf("locproof/%s (+https://github.com/locproof/locproof)", Version),
		Timeout:         opts.Timeout,
		EnableHTTPTrace: opts.HTTPTrace,
	})

	var provider location.Provider

	switch opts.Provider {
	case "ipinfo":
		provider = location.NewIPInfoClient(httpClient)
	case "ip-api":
		provider = location.NewIPAPIClient(httpClient)
	case "auto":
		provider = location.Fallback{
			location.NewIPInfoClient(httpClient),
			location.NewIPAPIClient(httpClient),
		}
	default:
		return nil, fmt.Errorf("unknown provider %q (want ipinfo, ip-api or auto)", opts.Provider)
	}

	return location.WithRetry(provider, opts.Retries), nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(
		&runOpts.Key, "key", "",
		"hex private key, with or without 0x prefix (default: $"+attest.EnvKey+")")
	runCmd.Flags().IntVar(
		&runOpts.Accuracy, "accuracy", 6,
		"geohash accuracy in characters, 1-12 (6 ≈ neighborhood, 8 ≈ street)")
	runCmd.Flags().StringVar(
		&runOpts.Provider, "provider", "auto",
		"geolocation service: ipinfo, ip-api, or auto to try both")
	runCmd.Flags().DurationVar(
		&runOpts.Timeout, "timeout", 10*time.Second,
		"timeout for each location lookup")
	runCmd.Flags().Uint64Var(
		&runOpts.Retries, "retries", 1,
		"total lookup attempts before giving up")
	runCmd.Flags().BoolVar(
		&runOpts.HTTPTrace, "http-trace", false,
		"dump location lookup requests and responses to stderr")
}
