// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})

	// Local development keeps the civic API key in a .env file.
	_ = godotenv.Load()
}

var rootCmd = &cobra.Command{
	Use:   "votesimple",
	Short: "US electoral district and voter information lookups",
	Long: `
votesimple resolves US street addresses and coordinates to their
electoral districts, keeps the resulting district records per user,
and serves election, ballot, and voter registration information.

Addresses are used for lookups only and are never stored.
`,
}

var Version = "dev"

func Execute(version string) {
	Version = version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
