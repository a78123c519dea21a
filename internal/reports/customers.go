//-------------------------------------------------------------------------
//
// GoldMart Retail Reporting
//
// Copyright (c) 2025 - 2026, the GoldMart authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package reports derives the customer and product reports from the gold
// star schema. The base SQL only joins, filters and aggregates; every
// computed field (ages, buckets, segments, ratios) is derived in Go so the
// derivation rules live in one place and stay testable without a database.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/goldmart/goldmart/internal/db"
)

// CustomerReport is one row of the customer report, keyed by customer.
// Customers with no qualifying sales never appear.
type CustomerReport struct {
	CustomerKey     int
	CustomerNumber  string
	CustomerName    string
	Age             int
	AgeGroup        AgeGroup
	Segment         CustomerSegment
	LastOrderDate   time.Time
	RecencyMonths   int
	TotalOrders     int
	TotalSales      float64
	TotalQuantity   int
	TotalProducts   int
	LifespanMonths  int
	AvgOrderValue   float64
	AvgMonthlySpend float64
}

// customerAggregate holds the raw per-customer aggregates scanned from the
// base query, before any field derivation.
type customerAggregate struct {
	CustomerKey    int
	CustomerNumber string
	CustomerName   string
	Birthdate      *time.Time
	TotalOrders    int
	TotalSales     float64
	TotalQuantity  int
	TotalProducts  int
	FirstOrderDate time.Time
	LastOrderDate  time.Time
}

// Inner join plus the non-null order_date filter restricts the report to
// customers with at least one qualifying sale.
const customerAggregateSQL = `
SELECT
    c.customer_key,
    c.customer_number,
    c.first_name || ' ' || c.last_name AS customer_name,
    c.birthdate,
    COUNT(DISTINCT f.order_number)::int AS total_orders,
    SUM(f.sales_amount)::float8         AS total_sales,
    SUM(f.quantity)::int                AS total_quantity,
    COUNT(DISTINCT f.product_key)::int  AS total_products,
    MIN(f.order_date)                   AS first_order_date,
    MAX(f.order_date)                   AS last_order_date
FROM fact_sales f
JOIN dim_customers c ON c.customer_key = f.customer_key
WHERE f.order_date IS NOT NULL
GROUP BY c.customer_key, c.customer_number, customer_name, c.birthdate
ORDER BY c.customer_key
`

// GenerateCustomers computes the customer report as of the given evaluation
// time.
func GenerateCustomers(ctx context.Context, q db.Querier, asOf time.Time) ([]CustomerReport, error) {
	rows, err := q.Query(ctx, customerAggregateSQL)
	if err != nil {
		return nil, fmt.Errorf("customer aggregation query failed: %w", err)
	}
	defer rows.Close()

	var report []CustomerReport
	for rows.Next() {
		var agg customerAggregate
		if err := rows.Scan(
			&agg.CustomerKey,
			&agg.CustomerNumber,
			&agg.CustomerName,
			&agg.Birthdate,
			&agg.TotalOrders,
			&agg.TotalSales,
			&agg.TotalQuantity,
			&agg.TotalProducts,
			&agg.FirstOrderDate,
			&agg.LastOrderDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan customer aggregate: %w", err)
		}
		report = append(report, deriveCustomer(agg, asOf))
	}
	return report, rows.Err()
}

// deriveCustomer computes every derived field of a report row from the raw
// aggregates.
func deriveCustomer(agg customerAggregate, asOf time.Time) CustomerReport {
	// A customer without a recorded birthdate gets the unknown age bucket,
	// matching the view's NULL handling.
	age := 0
	ageGroup := AgeUnknown
	if agg.Birthdate != nil {
		age = AgeAt(*agg.Birthdate, asOf)
		ageGroup = ClassifyAge(age)
	}

	lifespan := MonthsBetween(agg.FirstOrderDate, agg.LastOrderDate)

	return CustomerReport{
		CustomerKey:     agg.CustomerKey,
		CustomerNumber:  agg.CustomerNumber,
		CustomerName:    agg.CustomerName,
		Age:             age,
		AgeGroup:        ageGroup,
		Segment:         ClassifyCustomer(lifespan, agg.TotalSales),
		LastOrderDate:   agg.LastOrderDate,
		RecencyMonths:   MonthsBetween(agg.LastOrderDate, asOf),
		TotalOrders:     agg.TotalOrders,
		TotalSales:      agg.TotalSales,
		TotalQuantity:   agg.TotalQuantity,
		TotalProducts:   agg.TotalProducts,
		LifespanMonths:  lifespan,
		AvgOrderValue:   SafeDivide(agg.TotalSales, float64(agg.TotalOrders), 0),
		AvgMonthlySpend: SafeDivide(agg.TotalSales, float64(lifespan), agg.TotalSales),
	}
}

// ReadCustomerView reads the report_customers view, the SQL rendition of the
// same derivation used by downstream consumers.
func ReadCustomerView(ctx context.Context, q db.Querier) ([]CustomerReport, error) {
	rows, err := q.Query(ctx, `
        SELECT customer_key, customer_number, customer_name, age, age_group,
               customer_segment, last_order_date, recency, total_orders,
               total_sales::float8, total_quantity, total_products, lifespan,
               avg_order_value::float8, avg_monthly_spend::float8
        FROM report_customers
        ORDER BY customer_key
    `)
	if err != nil {
		return nil, fmt.Errorf("report_customers query failed: %w", err)
	}
	defer rows.Close()

	var report []CustomerReport
	for rows.Next() {
		var r CustomerReport
		// age is NULL for customers without a recorded birthdate
		var age *int
		if err := rows.Scan(
			&r.CustomerKey, &r.CustomerNumber, &r.CustomerName, &age,
			&r.AgeGroup, &r.Segment, &r.LastOrderDate, &r.RecencyMonths,
			&r.TotalOrders, &r.TotalSales, &r.TotalQuantity, &r.TotalProducts,
			&r.LifespanMonths, &r.AvgOrderValue, &r.AvgMonthlySpend,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report_customers row: %w", err)
		}
		if age != nil {
			r.Age = *age
		}
		report = append(report, r)
	}
	return report, rows.Err()
}
