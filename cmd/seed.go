// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	_ "github.com/duckdb/duckdb-go/v2" // register duckdb driver
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/coletl/vote-simplified-us/directory"
	"github.com/coletl/vote-simplified-us/districts"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the database and load the registration directory",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return seedDatabase(serveOpts.DbPath)
		},
	}
}

func init() {
	rootCmd.AddCommand(newSeedCmd())
}

func seedDatabase(dbPath string) error {
	db, err := openDatabase(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := districts.NewRepository(db).CreateSchema(); err != nil {
		return fmt.Errorf("creating districts schema: %w", err)
	}

	dirRepo := directory.NewRepository(db)
	if err := dirRepo.CreateSchema(); err != nil {
		return fmt.Errorf("creating directory schema: %w", err)
	}

	entries := directory.All()

	var bar *progressbar.ProgressBar
	if isatty.IsTerminal(os.Stderr.Fd()) {
		bar = progressbar.NewOptions(len(entries),
			progressbar.OptionSetDescription("Seeding registration directory"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	for _, info := range entries {
		if err := dirRepo.Save(info); err != nil {
			return fmt.Errorf("seeding %s: %w", info.Code, err)
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	fmt.Printf("Database seeded with %d registration entries.\n", len(entries))

	return nil
}
