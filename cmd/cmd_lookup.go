// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	_ "github.com/duckdb/duckdb-go/v2" // register duckdb driver
	"github.com/spf13/cobra"

	"github.com/coletl/vote-simplified-us/civic"
	"github.com/coletl/vote-simplified-us/districts"
	"github.com/coletl/vote-simplified-us/geocode"
)

type lookupOptions struct {
	Street string
	City   string
	State  string
	Zip    string
	Lat    float64
	Lng    float64
	User   string
	Save   bool
}

var lookupOpts = &lookupOptions{}

func lookupService(cmd *cobra.Command) (*districts.Service, func(), error) {
	civicClient, err := newCivicClient(cmd)
	if err != nil {
		return nil, nil, err
	}

	opts := districts.ServiceOptions{
		Civic:    civicClient,
		Geocoder: geocode.NewClient(nil),
	}

	cleanup := func() {}

	if lookupOpts.Save {
		db, err := openDatabase(serveOpts.DbPath)
		if err != nil {
			return nil, nil, err
		}

		repo := districts.NewRepository(db)
		if err := repo.CreateSchema(); err != nil {
			db.Close()

			return nil, nil, fmt.Errorf("creating districts schema: %w", err)
		}

		opts.Repo = repo
		opts.Store = districts.NewFileStore(serveOpts.DbPath)
		cleanup = func() { db.Close() }
	}

	if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lng") {
		opts.Position = geocode.StaticPosition{Lat: lookupOpts.Lat, Lng: lookupOpts.Lng}
	}

	return districts.NewService(opts), cleanup, nil
}

func printRecord(rec civic.DistrictRecord) error {
	if rec.Empty() {
		fmt.Println("No district information found.")

		return nil
	}

	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(os.Stdout, string(out))

	return err
}

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Resolve an address or position to its electoral districts",
	Long: `
Resolves a street address (--street, --city, --state, --zip) or a
position (--lat, --lng) to its electoral districts and prints the
record. With --save the record is stored under --user.

Positions are snapped to a coarse grid cell before any network call,
so precise coordinates never leave the machine.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, cleanup, err := lookupService(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		userID := ""
		if lookupOpts.Save {
			userID = lookupOpts.User
		}

		var rec civic.DistrictRecord

		if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng") {
			rec, err = svc.LookupByGeolocation(cmd.Context(), userID)
		} else {
			rec, err = svc.LookupByAddress(cmd.Context(), userID, civic.AddressInput{
				Street: lookupOpts.Street,
				City:   lookupOpts.City,
				State:  lookupOpts.State,
				Zip:    lookupOpts.Zip,
			})
		}

		if err != nil {
			return err
		}

		return printRecord(rec)
	},
}

var districtsCmd = &cobra.Command{
	Use:   "districts",
	Short: "Show the stored districts for a user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, err := openDatabase(serveOpts.DbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		repo := districts.NewRepository(db)
		if err := repo.CreateSchema(); err != nil {
			return fmt.Errorf("creating districts schema: %w", err)
		}

		svc := districts.NewService(districts.ServiceOptions{
			Civic: nil,
			Repo:  repo,
			Store: districts.NewFileStore(serveOpts.DbPath),
		})

		rec, found, err := svc.Districts(cmd.Context(), lookupOpts.User)
		if err != nil {
			return err
		}

		if !found {
			fmt.Println("No districts stored for this user.")

			return nil
		}

		return printRecord(rec)
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(districtsCmd)

	lookupCmd.Flags().StringVar(&lookupOpts.Street, "street", "", "Street address")
	lookupCmd.Flags().StringVar(&lookupOpts.City, "city", "", "City")
	lookupCmd.Flags().StringVar(&lookupOpts.State, "state", "", "State")
	lookupCmd.Flags().StringVar(&lookupOpts.Zip, "zip", "", "Zip code")
	lookupCmd.Flags().Float64Var(&lookupOpts.Lat, "lat", 0, "Latitude for a position lookup")
	lookupCmd.Flags().Float64Var(&lookupOpts.Lng, "lng", 0, "Longitude for a position lookup")
	lookupCmd.Flags().BoolVar(&lookupOpts.Save, "save", false, "Store the resulting record")
	lookupCmd.Flags().StringVar(&lookupOpts.User, "user", "local", "User id to store the record under")
	lookupCmd.MarkFlagsRequiredTogether("lat", "lng")

	districtsCmd.Flags().StringVar(&lookupOpts.User, "user", "local", "User id to read")
}
