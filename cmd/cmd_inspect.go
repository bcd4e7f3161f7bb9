// Copyright 2026 The LocProof Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uber/h3-go/v4"

	"github.com/locproof/locproof/geohash"
)

// h3ResolutionFor maps a geohash length to an H3 resolution of comparable
// cell size, clamped to H3's 0-15 range.
func h3ResolutionFor(precision int) int {
	// geohash cells shrink by a factor of 32 per character, H3 cells by ~7
	// per resolution step; 5/3 ≈ log7(32) keeps areas in the same ballpark
	res := precision * 5 / 3
	if res > 15 {
		res = 15
	}

	return res
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <geohash>",
	Short: "Decode a geohash and show the area it claims",
	Long: `
Decodes a geohash and prints its bounding box, center point and the H3 cell
of comparable size containing the center. Useful to eyeball what area a
location proof actually covers before trusting it.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		box, err := geohash.Decode(args[0])
		if err != nil {
			return err
		}

		cmd.SilenceUsage = true

		lat, lon := box.Center()

		cell, err := h3.LatLngToCell(h3.NewLatLng(lat, lon), h3ResolutionFor(len(args[0])))
		if err != nil {
			return fmt.Errorf("computing h3 cell: %w", err)
		}

		height, width := box.Dimensions()

		fmt.Printf("geohash:   %s (%d characters)\n", args[0], len(args[0]))
		fmt.Printf("center:    %.6f, %.6f\n", lat, lon)
		fmt.Printf("latitude:  [%.6f, %.6f]\n", box.MinLat, box.MaxLat)
		fmt.Printf("longitude: [%.6f, %.6f]\n", box.MinLon, box.MaxLon)
		fmt.Printf("area:      ~%.0f m × %.0f m\n", height, width)
		fmt.Printf("h3 cell:   %s (res %d)\n", cell, h3ResolutionFor(len(args[0])))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
