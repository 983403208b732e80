// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/coletl/vote-simplified-us/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
