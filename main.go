// Copyright 2026 The LocProof Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/locproof/locproof/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
