package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/goldmart/goldmart/internal/db"
	"github.com/goldmart/goldmart/internal/logging"
	"github.com/goldmart/goldmart/internal/render"
	"github.com/goldmart/goldmart/internal/reports"
)

var (
	reportFormat string
	reportLimit  int
)

var reportCmd = &cobra.Command{
	Use:   "report <customers|products>",
	Short: "Generate a consolidated reporting view",
	Long: `Generate the customer or product report. Each row consolidates one
customer's (or product's) metrics, segments, and KPIs across the full
sales history.

Example:
  goldmart report customers --format csv --connection "postgres://..."`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"customers", "products"},
	RunE:      runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "",
		"output format: table or csv (default: table)")
	reportCmd.Flags().IntVar(&reportLimit, "limit", 0,
		"maximum rows to print (default: all)")
}

func runReport(cmd *cobra.Command, args []string) error {
	if reportFormat != "" {
		cfg.Report.Format = reportFormat
	}
	if reportLimit > 0 {
		cfg.Report.Limit = reportLimit
	}
	if err := cfg.ValidateReport(); err != nil {
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

	logging.Info().Str("report", args[0]).Msg("Generating report")

	asOf := time.Now().UTC()
	var columns []string
	var rows [][]any

	switch args[0] {
	case "customers":
		customers, err := reports.GenerateCustomers(ctx, pool, asOf)
		if err != nil {
			return fmt.Errorf("failed to generate customer report: %w", err)
		}
		columns, rows = customerRows(customers)
	case "products":
		products, err := reports.GenerateProducts(ctx, pool, asOf)
		if err != nil {
			return fmt.Errorf("failed to generate product report: %w", err)
		}
		columns, rows = productRows(products)
	default:
		return fmt.Errorf("unknown report: %s (expected customers or products)", args[0])
	}

	if cfg.Report.Limit > 0 && len(rows) > cfg.Report.Limit {
		rows = rows[:cfg.Report.Limit]
	}

	useColor := cfg.Report.Format == render.FormatTable
	r := render.New(cmd.OutOrStdout(), cfg.Report.Format, useColor)
	return r.Write(columns, rows)
}

func customerRows(customers []reports.CustomerReport) ([]string, [][]any) {
	columns := []string{
		"customer_key", "customer_number", "customer_name", "age",
		"age_group", "customer_segment", "last_order_date", "recency",
		"total_orders", "total_sales", "total_quantity", "total_products",
		"lifespan", "avg_order_value", "avg_monthly_spend",
	}
	rows := make([][]any, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []any{
			c.CustomerKey, c.CustomerNumber, c.CustomerName, c.Age,
			string(c.AgeGroup), string(c.Segment), c.LastOrderDate,
			c.RecencyMonths, c.TotalOrders, c.TotalSales, c.TotalQuantity,
			c.TotalProducts, c.LifespanMonths, c.AvgOrderValue,
			c.AvgMonthlySpend,
		})
	}
	return columns, rows
}

func productRows(products []reports.ProductReport) ([]string, [][]any) {
	columns := []string{
		"product_key", "product_name", "category", "subcategory", "cost",
		"last_sale_date", "recency_in_months", "product_segment",
		"lifespan", "total_orders", "total_customers",
		"total_sales", "total_quantity", "avg_selling_price",
		"avg_order_revenue", "avg_monthly_revenue",
	}
	rows := make([][]any, 0, len(products))
	for _, p := range products {
		rows = append(rows, []any{
			p.ProductKey, p.ProductName, p.Category, p.Subcategory, p.Cost,
			p.LastSaleDate, p.RecencyMonths, string(p.Segment),
			p.LifespanMonths, p.TotalOrders, p.TotalCustomers, p.TotalSales,
			p.TotalQuantity, p.AvgSellingPrice, p.AvgOrderRevenue,
			p.AvgMonthlyRevenue,
		})
	}
	return columns, rows
}
