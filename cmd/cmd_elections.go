// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coletl/vote-simplified-us/civic"
)

var electionsCmd = &cobra.Command{
	Use:   "elections",
	Short: "List the elections the civic API knows about",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newCivicClient(cmd)
		if err != nil {
			return err
		}

		elections, err := client.Elections(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing elections: %w", err)
		}

		if len(elections) == 0 {
			fmt.Println("No upcoming elections.")

			return nil
		}

		for _, e := range elections {
			fmt.Printf("%-8s %-12s %s\n", e.ID, e.ElectionDay, e.Name)
		}

		return nil
	},
}

type voterInfoOptions struct {
	Address    string
	ElectionID string
}

var voterInfoOpts = &voterInfoOptions{}

var voterInfoCmd = &cobra.Command{
	Use:   "voterinfo",
	Short: "Show ballot and polling place information for an address",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if voterInfoOpts.Address == "" {
			return fmt.Errorf("--address is required")
		}

		client, err := newCivicClient(cmd)
		if err != nil {
			return err
		}

		info, err := client.VoterInfo(cmd.Context(), voterInfoOpts.Address, voterInfoOpts.ElectionID)
		if err != nil {
			return fmt.Errorf("fetching voter information: %w", err)
		}

		if info == nil {
			fmt.Println("No voter information available for this address.")

			return nil
		}

		out, err := json.MarshalIndent(civic.SummarizeVoterInfo(info), "", "  ")
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(os.Stdout, string(out))

		return err
	},
}

func init() {
	rootCmd.AddCommand(electionsCmd)
	rootCmd.AddCommand(voterInfoCmd)

	voterInfoCmd.Flags().StringVar(&voterInfoOpts.Address, "address", "", "One-line address to look up")
	voterInfoCmd.Flags().StringVar(&voterInfoOpts.ElectionID, "election", "", "Election id (defaults to the next election)")
}
