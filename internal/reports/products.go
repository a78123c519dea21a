//-------------------------------------------------------------------------
//
// GoldMart Retail Reporting
//
// Copyright (c) 2025 - 2026, the GoldMart authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/goldmart/goldmart/internal/db"
)

// ProductReport is one row of the product report, keyed by product.
// Products with no recorded sales never appear.
type ProductReport struct {
	ProductKey        int
	ProductName       string
	Category          string
	Subcategory       string
	Cost              float64
	LastSaleDate      time.Time
	RecencyMonths     int
	Segment           ProductSegment
	LifespanMonths    int
	TotalOrders       int
	TotalCustomers    int
	TotalSales        float64
	TotalQuantity     int
	AvgSellingPrice   float64
	AvgOrderRevenue   float64
	AvgMonthlyRevenue float64
}

// productAggregate holds the raw per-product aggregates scanned from the
// base query.
type productAggregate struct {
	ProductKey      int
	ProductName     string
	Category        string
	Subcategory     string
	Cost            float64
	TotalOrders     int
	TotalCustomers  int
	TotalSales      float64
	TotalQuantity   int
	AvgSellingPrice float64
	FirstSaleDate   time.Time
	LastSaleDate    time.Time
}

// avg_selling_price averages per-line unit prices; NULLIF drops
// zero-quantity lines from the average instead of erroring.
const productAggregateSQL = `
SELECT
    p.product_key,
    p.product_name,
    COALESCE(p.category, '')    AS category,
    COALESCE(p.subcategory, '') AS subcategory,
    p.cost::float8,
    COUNT(DISTINCT f.order_number)::int AS total_orders,
    COUNT(DISTINCT f.customer_key)::int AS total_customers,
    SUM(f.sales_amount)::float8         AS total_sales,
    SUM(f.quantity)::int                AS total_quantity,
    COALESCE(ROUND(AVG(f.sales_amount / NULLIF(f.quantity, 0)), 1), 0)::float8 AS avg_selling_price,
    MIN(f.order_date)                   AS first_sale_date,
    MAX(f.order_date)                   AS last_sale_date
FROM fact_sales f
JOIN dim_products p ON p.product_key = f.product_key
WHERE f.order_date IS NOT NULL
GROUP BY p.product_key, p.product_name, p.category, p.subcategory, p.cost
ORDER BY p.product_key
`

// GenerateProducts computes the product report as of the given evaluation
// time.
func GenerateProducts(ctx context.Context, q db.Querier, asOf time.Time) ([]ProductReport, error) {
	rows, err := q.Query(ctx, productAggregateSQL)
	if err != nil {
		return nil, fmt.Errorf("product aggregation query failed: %w", err)
	}
	defer rows.Close()

	var report []ProductReport
	for rows.Next() {
		var agg productAggregate
		if err := rows.Scan(
			&agg.ProductKey,
			&agg.ProductName,
			&agg.Category,
			&agg.Subcategory,
			&agg.Cost,
			&agg.TotalOrders,
			&agg.TotalCustomers,
			&agg.TotalSales,
			&agg.TotalQuantity,
			&agg.AvgSellingPrice,
			&agg.FirstSaleDate,
			&agg.LastSaleDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product aggregate: %w", err)
		}
		report = append(report, deriveProduct(agg, asOf))
	}
	return report, rows.Err()
}

// deriveProduct computes every derived field of a report row from the raw
// aggregates.
func deriveProduct(agg productAggregate, asOf time.Time) ProductReport {
	lifespan := MonthsBetween(agg.FirstSaleDate, agg.LastSaleDate)

	return ProductReport{
		ProductKey:        agg.ProductKey,
		ProductName:       agg.ProductName,
		Category:          agg.Category,
		Subcategory:       agg.Subcategory,
		Cost:              agg.Cost,
		LastSaleDate:      agg.LastSaleDate,
		RecencyMonths:     MonthsBetween(agg.LastSaleDate, asOf),
		Segment:           ClassifyProduct(agg.TotalSales),
		LifespanMonths:    lifespan,
		TotalOrders:       agg.TotalOrders,
		TotalCustomers:    agg.TotalCustomers,
		TotalSales:        agg.TotalSales,
		TotalQuantity:     agg.TotalQuantity,
		AvgSellingPrice:   agg.AvgSellingPrice,
		AvgOrderRevenue:   SafeDivide(agg.TotalSales, float64(agg.TotalOrders), 0),
		AvgMonthlyRevenue: SafeDivide(agg.TotalSales, float64(lifespan), agg.TotalSales),
	}
}

// ReadProductView reads the report_products view.
func ReadProductView(ctx context.Context, q db.Querier) ([]ProductReport, error) {
	rows, err := q.Query(ctx, `
        SELECT product_key, product_name, COALESCE(category, ''),
               COALESCE(subcategory, ''), cost::float8, last_sale_date,
               recency_in_months, product_segment, lifespan, total_orders,
               total_customers, total_sales::float8, total_quantity,
               avg_selling_price::float8, avg_order_revenue::float8,
               avg_monthly_revenue::float8
        FROM report_products
        ORDER BY product_key
    `)
	if err != nil {
		return nil, fmt.Errorf("report_products query failed: %w", err)
	}
	defer rows.Close()

	var report []ProductReport
	for rows.Next() {
		var r ProductReport
		if err := rows.Scan(
			&r.ProductKey, &r.ProductName, &r.Category, &r.Subcategory,
			&r.Cost, &r.LastSaleDate, &r.RecencyMonths, &r.Segment,
			&r.LifespanMonths, &r.TotalOrders, &r.TotalCustomers,
			&r.TotalSales, &r.TotalQuantity, &r.AvgSellingPrice,
			&r.AvgOrderRevenue, &r.AvgMonthlyRevenue,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report_products row: %w", err)
		}
		report = append(report, r)
	}
	return report, rows.Err()
}
