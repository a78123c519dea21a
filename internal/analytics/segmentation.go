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
	"sort"
	"time"

	"github.com/goldmart/goldmart/internal/db"
	"github.com/goldmart/goldmart/internal/reports"
)

// Fixed-threshold segmentations. Classification goes through the shared
// reports classifiers so the thresholds live in one place.

func runProductCostRanges(ctx context.Context, q db.Querier) (*Result, error) {
	rows, err := q.Query(ctx, `
        SELECT cost::float8 FROM dim_products WHERE cost IS NOT NULL
    `)
	if err != nil {
		return nil, fmt.Errorf("product cost query failed: %w", err)
	}
	defer rows.Close()

	counts := make(map[reports.CostRange]int)
	for rows.Next() {
		var cost float64
		if err := rows.Scan(&cost); err != nil {
			return nil, fmt.Errorf("failed to scan product cost: %w", err)
		}
		counts[reports.ClassifyCost(cost)]++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return countResult("cost_range", "total_products", counts), nil
}

func runCustomerSegments(ctx context.Context, q db.Querier) (*Result, error) {
	rows, err := q.Query(ctx, `
        SELECT
            SUM(f.sales_amount)::float8 AS total_sales,
            MIN(f.order_date)           AS first_order_date,
            MAX(f.order_date)           AS last_order_date
        FROM fact_sales f
        JOIN dim_customers c ON c.customer_key = f.customer_key
        WHERE f.order_date IS NOT NULL
        GROUP BY c.customer_key
    `)
	if err != nil {
		return nil, fmt.Errorf("customer spending query failed: %w", err)
	}
	defer rows.Close()

	counts := make(map[reports.CustomerSegment]int)
	for rows.Next() {
		var totalSales float64
		var first, last time.Time
		if err := rows.Scan(&totalSales, &first, &last); err != nil {
			return nil, fmt.Errorf("failed to scan customer spending: %w", err)
		}
		lifespan := reports.MonthsBetween(first, last)
		counts[reports.ClassifyCustomer(lifespan, totalSales)]++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return countResult("customer_segment", "total_customers", counts), nil
}

// countResult renders a bucket→count map as a two-column result ordered by
// descending count, then bucket name.
func countResult[K ~string](keyColumn, countColumn string, counts map[K]int) *Result {
	buckets := make([]K, 0, len(counts))
	for b := range counts {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if counts[buckets[i]] != counts[buckets[j]] {
			return counts[buckets[i]] > counts[buckets[j]]
		}
		return buckets[i] < buckets[j]
	})

	result := &Result{Columns: []string{keyColumn, countColumn}}
	for _, b := range buckets {
		result.Rows = append(result.Rows, []any{string(b), counts[b]})
	}
	return result
}

func init() {
	Register(&Query{
		Name:        "product-cost-ranges",
		Category:    CategorySegmentation,
		Description: "Product counts by fixed cost range",
		Run:         runProductCostRanges,
	})
	Register(&Query{
		Name:        "customer-segments",
		Category:    CategorySegmentation,
		Description: "Customer counts by VIP/Regular/New segment",
		Run:         runCustomerSegments,
	})
}
