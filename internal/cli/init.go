package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goldmart/goldmart/internal/db"
	"github.com/goldmart/goldmart/internal/logging"
	"github.com/goldmart/goldmart/internal/schema"
	"github.com/goldmart/goldmart/internal/seed"
)

var (
	initCustomers    int
	initProducts     int
	initOrders       int
	initYears        int
	initSeed         uint64
	initDropExisting bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a database with the gold schema and seed data",
	Long: `Initialize a PostgreSQL database with the gold star schema, seed it
with generated retail data, and install the reporting views.

Example:
  goldmart init --customers 1000 --orders 50000 --connection "postgres://..."`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().IntVar(&initCustomers, "customers", 0,
		"number of customers to generate (default: 500)")
	initCmd.Flags().IntVar(&initProducts, "products", 0,
		"number of products to generate (default: 120)")
	initCmd.Flags().IntVar(&initOrders, "orders", 0,
		"number of sales line items to generate (default: 20000)")
	initCmd.Flags().IntVar(&initYears, "years", 0,
		"length of the sales history window in years (default: 3)")
	initCmd.Flags().Uint64Var(&initSeed, "seed", 0,
		"RNG seed for reproducible data (default: random)")
	initCmd.Flags().BoolVar(&initDropExisting, "drop-existing", false,
		"drop existing schema before initialization")
}

func runInit(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if initCustomers > 0 {
		cfg.Init.Customers = initCustomers
	}
	if initProducts > 0 {
		cfg.Init.Products = initProducts
	}
	if initOrders > 0 {
		cfg.Init.Orders = initOrders
	}
	if initYears > 0 {
		cfg.Init.Years = initYears
	}
	if initSeed != 0 {
		cfg.Init.Seed = initSeed
	}
	if initDropExisting {
		cfg.Init.DropExisting = true
	}

	// Validate configuration
	if err := cfg.ValidateInit(); err != nil {
		return err
	}

	logging.Info().
		Int("customers", cfg.Init.Customers).
		Int("products", cfg.Init.Products).
		Int("orders", cfg.Init.Orders).
		Int("years", cfg.Init.Years).
		Msg("Initializing database")

	// Connect to database
	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	// Refuse to clobber an existing installation unless asked
	exists, err := db.MetadataExists(ctx, pool)
	if err != nil {
		return fmt.Errorf("failed to inspect database: %w", err)
	}
	if exists && !cfg.Init.DropExisting {
		return fmt.Errorf(
			"database is already initialized; use --drop-existing to reinitialize")
	}

	// Drop existing schema if requested
	if cfg.Init.DropExisting {
		logging.Info().Msg("Dropping existing schema")
		if err := schema.Drop(ctx, pool); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
		if err := db.DropMetadata(ctx, pool); err != nil {
			logging.Debug().Err(err).Msg("No metadata table to drop")
		}
	}

	// Create schema
	logging.Info().Msg("Creating schema")
	if err := schema.Create(ctx, pool); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Generate data
	logging.Info().Msg("Generating seed data")
	gen := seed.NewGenerator(cfg.Init.Seed)
	opts := seed.Options{
		Customers: cfg.Init.Customers,
		Products:  cfg.Init.Products,
		Orders:    cfg.Init.Orders,
		Years:     cfg.Init.Years,
	}
	if err := gen.Generate(ctx, pool, opts); err != nil {
		return fmt.Errorf("failed to generate data: %w", err)
	}

	// Install reporting views
	logging.Info().Msg("Creating reporting views")
	if err := schema.CreateViews(ctx, pool); err != nil {
		return fmt.Errorf("failed to create views: %w", err)
	}

	// Save metadata
	info := db.SeedInfo{
		Customers: cfg.Init.Customers,
		Products:  cfg.Init.Products,
		Orders:    cfg.Init.Orders,
		Seed:      cfg.Init.Seed,
	}
	if err := db.SaveMetadata(ctx, pool, info); err != nil {
		return fmt.Errorf("failed to save metadata: %w", err)
	}

	logging.Info().Msg("Database initialization complete")
	return nil
}
