package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goldmart/goldmart/internal/analytics"
	"github.com/goldmart/goldmart/internal/db"
	"github.com/goldmart/goldmart/internal/logging"
	"github.com/goldmart/goldmart/internal/render"
)

var (
	queryFormat string
	queryLimit  int
)

var queryCmd = &cobra.Command{
	Use:   "query <name>",
	Short: "Run a query from the analytics catalog",
	Long: `Run one of the named analytical queries against an initialized
database. Use 'goldmart queries' to list the catalog.

Example:
  goldmart query top-customers --connection "postgres://..."`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryFormat, "format", "",
		"output format: table or csv (default: table)")
	queryCmd.Flags().IntVar(&queryLimit, "limit", 0,
		"maximum rows to print (default: all)")
}

func runQuery(cmd *cobra.Command, args []string) error {
	if queryFormat != "" {
		cfg.Report.Format = queryFormat
	}
	if queryLimit > 0 {
		cfg.Report.Limit = queryLimit
	}
	if err := cfg.ValidateReport(); err != nil {
		return err
	}

	query, err := analytics.Get(args[0])
	if err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := requireInitialized(ctx, pool); err != nil {
		return err
	}

	logging.Info().
		Str("query", query.Name).
		Str("category", query.Category).
		Msg("Running query")

	result, err := query.Run(ctx, pool)
	if err != nil {
		return fmt.Errorf("query '%s' failed: %w", query.Name, err)
	}

	rows := result.Rows
	if cfg.Report.Limit > 0 && len(rows) > cfg.Report.Limit {
		rows = rows[:cfg.Report.Limit]
	}

	useColor := cfg.Report.Format == render.FormatTable
	r := render.New(cmd.OutOrStdout(), cfg.Report.Format, useColor)
	return r.Write(result.Columns, rows)
}
