//-------------------------------------------------------------------------
//
// GoldMart Retail Reporting
//
// Copyright (c) 2025 - 2026, the GoldMart authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package analytics

import (
	"context"
	"fmt"

	"github.com/goldmart/goldmart/internal/db"
)

// Year-over-year product performance: yearly revenue compared against the
// product's all-years average and against the prior year.

const yearlyProductSalesSQL = `
SELECT
    EXTRACT(YEAR FROM f.order_date)::int AS order_year,
    p.product_name,
    SUM(f.sales_amount)::float8          AS current_sales
FROM fact_sales f
JOIN dim_products p ON p.product_key = f.product_key
WHERE f.order_date IS NOT NULL
GROUP BY 1, 2
ORDER BY 2, 1
`

func runYoYProductSales(ctx context.Context, q db.Querier) (*Result, error) {
	rows, err := q.Query(ctx, yearlyProductSalesSQL)
	if err != nil {
		return nil, fmt.Errorf("yearly product sales query failed: %w", err)
	}
	defer rows.Close()

	var values []YearlyValue
	for rows.Next() {
		var v YearlyValue
		if err := rows.Scan(&v.Year, &v.Key, &v.Value); err != nil {
			return nil, fmt.Errorf("failed to scan yearly product sales: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Columns: []string{
			"order_year", "product_name", "current_sales",
			"avg_sales", "diff_avg", "avg_change",
			"py_sales", "diff_py", "py_change",
		},
	}
	for _, c := range CompareYearly(values) {
		result.Rows = append(result.Rows, []any{
			c.Year, c.Key, c.Value,
			round2(c.Average), round2(c.DiffAverage), c.AverageChange,
			c.PriorValue, c.DiffPrior, c.PriorChange,
		})
	}
	return result, nil
}

func init() {
	Register(&Query{
		Name:        "yoy-product-sales",
		Category:    CategoryPerformance,
		Description: "Yearly product revenue vs product average and prior year",
		Run:         runYoYProductSales,
	})
}
