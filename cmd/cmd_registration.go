// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2" // register duckdb driver
	"github.com/spf13/cobra"

	"github.com/coletl/vote-simplified-us/directory"
)

var registrationCmd = &cobra.Command{
	Use:   "registration [state]",
	Short: "Show voter registration information for a state",
	Long: `
Shows the official registration site, registration deadline, absentee
deadline, and early voting window for a state or territory. Without an
argument, lists every known state.
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		resolver := registrationResolver()

		if len(args) == 0 {
			for _, info := range resolver.States() {
				fmt.Printf("%-4s %s\n", info.Code, info.Name)
			}

			return nil
		}

		info, ok := resolver.Resolve(args[0])
		if !ok {
			return fmt.Errorf("unknown state code: %s", args[0])
		}

		fmt.Printf("%s (%s)\n", info.Name, info.Code)
		fmt.Printf("  Register:          %s\n", info.RegistrationURL)
		fmt.Printf("  Deadline:          %s\n", info.Deadline)
		fmt.Printf("  Absentee deadline: %s\n", info.AbsenteeDeadline)
		fmt.Printf("  Early voting:      %s\n", info.EarlyVoting)

		if info.StatusURL != "" {
			fmt.Printf("  Check status:      %s\n", info.StatusURL)
		}

		return nil
	},
}

// registrationResolver tries the database first so corrected entries
// win, and quietly runs from the embedded table when there is none.
func registrationResolver() *directory.Resolver {
	db, err := openDatabase(serveOpts.DbPath)
	if err != nil {
		return directory.NewResolver(nil)
	}

	repo := directory.NewRepository(db)
	if err := repo.CreateSchema(); err != nil {
		db.Close()

		return directory.NewResolver(nil)
	}

	return directory.NewResolver(repo)
}

func init() {
	rootCmd.AddCommand(registrationCmd)
}
