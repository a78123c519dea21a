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
	"math"
	"time"

	"github.com/goldmart/goldmart/internal/db"
)

// Monthly time-series aggregation and the cumulative running-total /
// moving-average computation over monthly buckets. The windowed fields are
// derived in Go from the ordered monthly series.

const monthlySalesSQL = `
SELECT
    DATE_TRUNC('month', order_date)::date AS order_month,
    SUM(sales_amount)::float8             AS total_sales,
    COUNT(DISTINCT customer_key)::int     AS total_customers,
    SUM(quantity)::int                    AS total_quantity,
    ROUND(AVG(price), 2)::float8          AS avg_price
FROM fact_sales
WHERE order_date IS NOT NULL
GROUP BY 1
ORDER BY 1
`

// monthlyBucket is one month of aggregated sales.
type monthlyBucket struct {
	Month          time.Time
	TotalSales     float64
	TotalCustomers int
	TotalQuantity  int
	AvgPrice       float64
}

func fetchMonthlySales(ctx context.Context, q db.Querier) ([]monthlyBucket, error) {
	rows, err := q.Query(ctx, monthlySalesSQL)
	if err != nil {
		return nil, fmt.Errorf("monthly sales query failed: %w", err)
	}
	defer rows.Close()

	var buckets []monthlyBucket
	for rows.Next() {
		var b monthlyBucket
		if err := rows.Scan(&b.Month, &b.TotalSales, &b.TotalCustomers,
			&b.TotalQuantity, &b.AvgPrice); err != nil {
			return nil, fmt.Errorf("failed to scan monthly bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

func runMonthlySales(ctx context.Context, q db.Querier) (*Result, error) {
	buckets, err := fetchMonthlySales(ctx, q)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Columns: []string{"order_month", "total_sales", "total_customers", "total_quantity"},
	}
	for _, b := range buckets {
		result.Rows = append(result.Rows, []any{
			b.Month.Format("2006-01"), b.TotalSales, b.TotalCustomers, b.TotalQuantity,
		})
	}
	return result, nil
}

func runRunningTotalSales(ctx context.Context, q db.Querier) (*Result, error) {
	buckets, err := fetchMonthlySales(ctx, q)
	if err != nil {
		return nil, err
	}

	sales := make([]float64, len(buckets))
	prices := make([]float64, len(buckets))
	for i, b := range buckets {
		sales[i] = b.TotalSales
		prices[i] = b.AvgPrice
	}
	runningTotals := RunningTotals(sales)
	movingAvgPrices := MovingAverages(prices)

	result := &Result{
		Columns: []string{
			"order_month", "total_sales", "running_total_sales",
			"avg_price", "moving_avg_price",
		},
	}
	for i, b := range buckets {
		result.Rows = append(result.Rows, []any{
			b.Month.Format("2006-01"),
			b.TotalSales,
			runningTotals[i],
			b.AvgPrice,
			round2(movingAvgPrices[i]),
		})
	}
	return result, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func init() {
	Register(&Query{
		Name:        "monthly-sales",
		Category:    CategoryTimeSeries,
		Description: "Sales, customers and quantity aggregated by month",
		Run:         runMonthlySales,
	})
	Register(&Query{
		Name:        "running-total-sales",
		Category:    CategoryCumulative,
		Description: "Monthly sales with running total and moving average price",
		Run:         runRunningTotalSales,
	})
}
