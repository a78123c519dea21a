//-------------------------------------------------------------------------
//
// GoldMart Retail Reporting
//
// Copyright (c) 2025 - 2026, the GoldMart authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for goldmart.
package cli

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/goldmart/goldmart/internal/analytics"
	"github.com/goldmart/goldmart/internal/config"
	"github.com/goldmart/goldmart/internal/db"
	"github.com/goldmart/goldmart/internal/logging"
	"github.com/goldmart/goldmart/pkg/version"
)

var (
	// Global flags
	cfgFile    string
	connection string
	logLevel   string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "goldmart",
		Short: "Retail analytics over a gold star schema in PostgreSQL",
		Long: `goldmart builds a retail "gold" star schema (customer and product
dimensions plus a sales fact) in PostgreSQL, seeds it with generated
data, and runs a catalog of analytical queries and reporting views
over it.

The init command creates the schema, loads data, and installs the
report_customers and report_products views. The report and query
commands read the data back as tables or CSV.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./goldmart.yaml)")
	rootCmd.PersistentFlags().StringVar(&connection, "connection", "",
		"PostgreSQL connection string")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(queriesCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if connection != "" {
		cfg.Connection = connection
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

// requireInitialized rejects read commands pointed at a database that was
// never initialized.
func requireInitialized(ctx context.Context, pool *pgxpool.Pool) error {
	initialized, err := db.MetadataExists(ctx, pool)
	if err != nil {
		return fmt.Errorf("failed to inspect database: %w", err)
	}
	if !initialized {
		return fmt.Errorf("database is not initialized; run 'goldmart init' first")
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}

var queriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "List available analytical queries",
	Long: `List all queries in the analytics catalog, grouped by category.
Run one with 'goldmart query <name>'.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, category := range analytics.Categories() {
			queries := analytics.ByCategory(category)
			if len(queries) == 0 {
				continue
			}
			cmd.Printf("%s:\n", category)
			for _, q := range queries {
				cmd.Printf("  %-24s %s\n", q.Name, q.Description)
			}
			cmd.Println()
		}
	},
}
