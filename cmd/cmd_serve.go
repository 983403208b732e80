// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/duckdb/duckdb-go/v2" // register duckdb driver
	"github.com/spf13/cobra"

	"github.com/coletl/vote-simplified-us/civic"
	"github.com/coletl/vote-simplified-us/directory"
	"github.com/coletl/vote-simplified-us/districts"
	"github.com/coletl/vote-simplified-us/geocode"
	"github.com/coletl/vote-simplified-us/utils/httputils"
)

type serveOptions struct {
	Addr   string
	DbPath string
}

var serveOpts = &serveOptions{}

const dbFile = "votesimple.duckdb"

func openDatabase(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(dbPath, 0o750); err != nil {
		return nil, fmt.Errorf("creating db directory: %w", err)
	}

	db, err := sql.Open("duckdb", filepath.Join(dbPath, dbFile))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	return db, nil
}

func newCivicClient(cmd *cobra.Command) (*civic.Client, error) {
	apiKey, err := civic.ResolveAPIKey(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("resolving civic API key: %w", err)
	}

	client := httputils.NewClient(httputils.ClientOptions{
		UserAgent: fmt.Sprintf("votesimple/%s (+https://github.com/coletl/vote-simplified-us)", Version),
	})

	return civic.NewClient(apiKey, client), nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
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

		dirRepo := directory.NewRepository(db)
		if err := dirRepo.CreateSchema(); err != nil {
			return fmt.Errorf("creating directory schema: %w", err)
		}

		civicClient, err := newCivicClient(cmd)
		if err != nil {
			return err
		}

		svc := districts.NewService(districts.ServiceOptions{
			Civic:    civicClient,
			Geocoder: geocode.NewClient(nil),
			Repo:     repo,
			Store:    districts.NewFileStore(serveOpts.DbPath),
		})

		server := districts.NewServer(svc, civicClient, directory.NewResolver(dirRepo))

		log.Printf("🗳️  Serving on http://%s", serveOpts.Addr)

		return server.Run(serveOpts.Addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(
		&serveOpts.Addr,
		"addr",
		"localhost:8080",
		"Address to listen on",
	)
	rootCmd.PersistentFlags().StringVar(
		&serveOpts.DbPath,
		"db-path",
		"db",
		"Base directory for database state",
	)
}
