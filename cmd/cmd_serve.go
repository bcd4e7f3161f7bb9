// Copyright 2026 The LocProof Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/locproof/locproof/attest"
	"github.com/locproof/locproof/location"
	"github.com/locproof/locproof/server"
)

type serveOptions struct {
	Addr    string
	Key     string
	Timeout time.Duration
}

var serveOpts = &serveOptions{}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the attestation HTTP service",
	Long: `
Serves proof verification over HTTP, and proof creation as well when a
signing key is supplied via --key or the ` + attest.EnvKey + ` environment
variable. Without a key the service only verifies.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true

		httpClient := location.NewHTTPClient(&location.ClientOptions{
			UserAgent: fmt.Sprintf("locproof/%s (+https://github.com/locproof/locproof)", Version),
			Timeout:   serveOpts.Timeout,
		})
		provider := location.Fallback{
			location.NewIPInfoClient(httpClient),
			location.NewIPAPIClient(httpClient),
		}

		var srv *server.Server

		key, err := attest.KeyFromSources(serveOpts.Key, os.Getenv(attest.EnvKey))

		switch {
		case err == nil:
			srv = server.NewSigning(provider, key)

			log.Printf("serving with signing key, public key %s", attest.PublicKey(key).Hex())
		case attest.IsMissingKey(err):
			srv = server.New(provider)

			log.Print("no signing key configured, serving verification only")
		default:
			return err
		}

		log.Printf("listening on %s", serveOpts.Addr)

		return srv.Run(serveOpts.Addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveOpts.Addr, "addr", "localhost:8080", "address to listen on")
	serveCmd.Flags().StringVar(&serveOpts.Key, "key", "", "hex private key for the attest endpoint (default: $"+attest.EnvKey+")")
	serveCmd.Flags().DurationVar(&serveOpts.Timeout, "timeout", 10*time.Second, "timeout for each location lookup")
}
