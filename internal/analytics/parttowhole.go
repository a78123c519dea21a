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
	"github.com/goldmart/goldmart/internal/reports"
)

// Category contribution to total revenue, as a percentage rounded to two
// decimals.

func runCategoryContribution(ctx context.Context, q db.Querier) (*Result, error) {
	rows, err := q.Query(ctx, `
        SELECT p.category, SUM(f.sales_amount)::float8 AS category_sales
        FROM fact_sales f
        JOIN dim_products p ON p.product_key = f.product_key
        WHERE p.category IS NOT NULL
        GROUP BY p.category
        ORDER BY category_sales DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("category sales query failed: %w", err)
	}
	defer rows.Close()

	type categorySales struct {
		Category string
		Sales    float64
	}
	var categories []categorySales
	var overall float64
	for rows.Next() {
		var c categorySales
		if err := rows.Scan(&c.Category, &c.Sales); err != nil {
			return nil, fmt.Errorf("failed to scan category sales: %w", err)
		}
		categories = append(categories, c)
		overall += c.Sales
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Columns: []string{"category", "category_sales", "overall_sales", "pct_of_total"},
	}
	for _, c := range categories {
		pct := round2(reports.SafeDivide(c.Sales*100, overall, 0))
		result.Rows = append(result.Rows, []any{c.Category, c.Sales, overall, pct})
	}
	return result, nil
}

func init() {
	Register(&Query{
		Name:        "category-contribution",
		Category:    CategoryPartToWhole,
		Description: "Each category's percentage of overall revenue",
		Run:         runCategoryContribution,
	})
}
