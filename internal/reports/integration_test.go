//-------------------------------------------------------------------------
//
// GoldMart Retail Reporting
//
// Copyright (c) 2025 - 2026, the GoldMart authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

//go:build integration
// +build integration

// Integration tests for the gold schema, seeding, reporting views and the
// analytics catalog.
// Run with: go test -tags=integration ./internal/reports/...
// Requires PostgreSQL to be available.
// Set GOLDMART_TEST_CONN environment variable to override connection string.

package reports_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/goldmart/goldmart/internal/analytics"
	"github.com/goldmart/goldmart/internal/db"
	"github.com/goldmart/goldmart/internal/reports"
	"github.com/goldmart/goldmart/internal/schema"
	"github.com/goldmart/goldmart/internal/seed"
	"github.com/goldmart/goldmart/internal/testutil"
)

// setupGoldDB creates a throwaway database with schema, a small seeded
// dataset, and the reporting views installed.
func setupGoldDB(t *testing.T, name string) *pgxpool.Pool {
	t.Helper()

	baseConnStr := testutil.SkipIfNoPostgres(t)
	testConnStr := testutil.CreateTestDB(t, baseConnStr, name)
	dbName := testutil.GetDBNameFromConnStr(testConnStr)

	cleanup := testutil.NewTestCleanup(t, baseConnStr, dbName)
	t.Cleanup(cleanup.Cleanup)

	pool := testutil.ConnectTestDB(t, testConnStr)
	cleanup.SetPool(pool)

	ctx := context.Background()
	if err := schema.Create(ctx, pool); err != nil {
		t.Fatalf("Create schema failed: %v", err)
	}

	gen := seed.NewGenerator(42)
	opts := seed.Options{Customers: 50, Products: 20, Orders: 2000, Years: 2}
	if err := gen.Generate(ctx, pool, opts); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// One customer without a recorded birthdate; the generator never
	// produces these but the schema permits them.
	_, err := pool.Exec(ctx, `
        INSERT INTO dim_customers
            (customer_key, customer_number, first_name, last_name, country, gender, birthdate)
        VALUES (9999, 'CUST-09999', 'Pat', 'Nolan', 'Canada', 'n/a', NULL)
    `)
	if err != nil {
		t.Fatalf("Failed to insert birthdate-less customer: %v", err)
	}
	_, err = pool.Exec(ctx, `
        INSERT INTO fact_sales
            (order_number, product_key, customer_key, order_date, shipping_date,
             sales_amount, quantity, price)
        VALUES ('SO99999', 1, 9999, CURRENT_DATE - 30, CURRENT_DATE - 27, 25.00, 1, 25.00)
    `)
	if err != nil {
		t.Fatalf("Failed to insert sale for birthdate-less customer: %v", err)
	}

	if err := schema.CreateViews(ctx, pool); err != nil {
		t.Fatalf("CreateViews failed: %v", err)
	}

	return pool
}

func approx(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// TestCustomerReportMatchesView verifies that the Go-side customer report
// derivation agrees with the report_customers view.
func TestCustomerReportMatchesView(t *testing.T) {
	pool := setupGoldDB(t, "customers")
	ctx := context.Background()

	generated, err := reports.GenerateCustomers(ctx, pool, time.Now().UTC())
	if err != nil {
		t.Fatalf("GenerateCustomers failed: %v", err)
	}
	if len(generated) == 0 {
		t.Fatal("GenerateCustomers returned no rows")
	}

	fromView, err := reports.ReadCustomerView(ctx, pool)
	if err != nil {
		t.Fatalf("ReadCustomerView failed: %v", err)
	}
	if len(fromView) != len(generated) {
		t.Fatalf("Row count mismatch: generated %d, view %d",
			len(generated), len(fromView))
	}

	byKey := make(map[int]reports.CustomerReport, len(fromView))
	for _, c := range fromView {
		byKey[c.CustomerKey] = c
	}

	for _, g := range generated {
		v, ok := byKey[g.CustomerKey]
		if !ok {
			t.Fatalf("Customer %d missing from view", g.CustomerKey)
		}
		if g.CustomerName != v.CustomerName {
			t.Errorf("Customer %d name: generated %q, view %q",
				g.CustomerKey, g.CustomerName, v.CustomerName)
		}
		if g.TotalOrders != v.TotalOrders {
			t.Errorf("Customer %d orders: generated %d, view %d",
				g.CustomerKey, g.TotalOrders, v.TotalOrders)
		}
		if !approx(g.TotalSales, v.TotalSales, 0.01) {
			t.Errorf("Customer %d sales: generated %f, view %f",
				g.CustomerKey, g.TotalSales, v.TotalSales)
		}
		if g.LifespanMonths != v.LifespanMonths {
			t.Errorf("Customer %d lifespan: generated %d, view %d",
				g.CustomerKey, g.LifespanMonths, v.LifespanMonths)
		}
		if g.Segment != v.Segment {
			t.Errorf("Customer %d segment: generated %s, view %s",
				g.CustomerKey, g.Segment, v.Segment)
		}
		if g.AgeGroup != v.AgeGroup {
			t.Errorf("Customer %d age group: generated %s, view %s",
				g.CustomerKey, g.AgeGroup, v.AgeGroup)
		}
		if !approx(g.AvgOrderValue, v.AvgOrderValue, 0.01) {
			t.Errorf("Customer %d avg order value: generated %f, view %f",
				g.CustomerKey, g.AvgOrderValue, v.AvgOrderValue)
		}
		if !approx(g.AvgMonthlySpend, v.AvgMonthlySpend, 0.01) {
			t.Errorf("Customer %d avg monthly spend: generated %f, view %f",
				g.CustomerKey, g.AvgMonthlySpend, v.AvgMonthlySpend)
		}
	}

	// The birthdate-less customer gets the unknown age bucket on both sides
	noBirthdate, ok := byKey[9999]
	if !ok {
		t.Fatal("Birthdate-less customer missing from view")
	}
	if noBirthdate.AgeGroup != reports.AgeUnknown {
		t.Errorf("View age group for birthdate-less customer: got %s, expected %s",
			noBirthdate.AgeGroup, reports.AgeUnknown)
	}
	if noBirthdate.Age != 0 {
		t.Errorf("View age for birthdate-less customer: got %d, expected 0",
			noBirthdate.Age)
	}
}

// TestProductReportMatchesView verifies that the Go-side product report
// derivation agrees with the report_products view.
func TestProductReportMatchesView(t *testing.T) {
	pool := setupGoldDB(t, "products")
	ctx := context.Background()

	generated, err := reports.GenerateProducts(ctx, pool, time.Now().UTC())
	if err != nil {
		t.Fatalf("GenerateProducts failed: %v", err)
	}
	if len(generated) == 0 {
		t.Fatal("GenerateProducts returned no rows")
	}

	fromView, err := reports.ReadProductView(ctx, pool)
	if err != nil {
		t.Fatalf("ReadProductView failed: %v", err)
	}
	if len(fromView) != len(generated) {
		t.Fatalf("Row count mismatch: generated %d, view %d",
			len(generated), len(fromView))
	}

	byKey := make(map[int]reports.ProductReport, len(fromView))
	for _, p := range fromView {
		byKey[p.ProductKey] = p
	}

	for _, g := range generated {
		v, ok := byKey[g.ProductKey]
		if !ok {
			t.Fatalf("Product %d missing from view", g.ProductKey)
		}
		if g.TotalOrders != v.TotalOrders {
			t.Errorf("Product %d orders: generated %d, view %d",
				g.ProductKey, g.TotalOrders, v.TotalOrders)
		}
		if g.TotalCustomers != v.TotalCustomers {
			t.Errorf("Product %d customers: generated %d, view %d",
				g.ProductKey, g.TotalCustomers, v.TotalCustomers)
		}
		if !approx(g.TotalSales, v.TotalSales, 0.01) {
			t.Errorf("Product %d sales: generated %f, view %f",
				g.ProductKey, g.TotalSales, v.TotalSales)
		}
		if g.Segment != v.Segment {
			t.Errorf("Product %d segment: generated %s, view %s",
				g.ProductKey, g.Segment, v.Segment)
		}
		if !approx(g.AvgSellingPrice, v.AvgSellingPrice, 0.01) {
			t.Errorf("Product %d avg selling price: generated %f, view %f",
				g.ProductKey, g.AvgSellingPrice, v.AvgSellingPrice)
		}
		if !approx(g.AvgOrderRevenue, v.AvgOrderRevenue, 0.01) {
			t.Errorf("Product %d avg order revenue: generated %f, view %f",
				g.ProductKey, g.AvgOrderRevenue, v.AvgOrderRevenue)
		}
	}
}

// TestAnalyticsCatalog runs every registered query against a seeded
// database.
func TestAnalyticsCatalog(t *testing.T) {
	pool := setupGoldDB(t, "catalog")
	ctx := context.Background()

	for _, query := range analytics.List() {
		t.Run(query.Name, func(t *testing.T) {
			result, err := query.Run(ctx, pool)
			if err != nil {
				t.Fatalf("Query failed: %v", err)
			}
			if len(result.Columns) == 0 {
				t.Error("Query returned no columns")
			}
			for i, row := range result.Rows {
				if len(row) != len(result.Columns) {
					t.Fatalf("Row %d has %d cells, expected %d",
						i, len(row), len(result.Columns))
				}
			}
		})
	}
}

// TestCategoryContributionSumsToFull verifies the part-to-whole
// percentages add up to 100.
func TestCategoryContributionSumsToFull(t *testing.T) {
	pool := setupGoldDB(t, "contribution")
	ctx := context.Background()

	query, err := analytics.Get("category-contribution")
	if err != nil {
		t.Fatalf("Failed to get query: %v", err)
	}
	result, err := query.Run(ctx, pool)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(result.Rows) == 0 {
		t.Fatal("No category rows")
	}

	var totalPct float64
	for _, row := range result.Rows {
		totalPct += row[3].(float64)
	}
	// Two-decimal rounding across a handful of categories
	if !approx(totalPct, 100, 0.05) {
		t.Errorf("Contribution percentages sum to %f, expected ~100", totalPct)
	}
}

// TestRunningTotalMonotonic verifies the cumulative sales column never
// decreases across months.
func TestRunningTotalMonotonic(t *testing.T) {
	pool := setupGoldDB(t, "cumulative")
	ctx := context.Background()

	query, err := analytics.Get("running-total-sales")
	if err != nil {
		t.Fatalf("Failed to get query: %v", err)
	}
	result, err := query.Run(ctx, pool)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(result.Rows) < 2 {
		t.Fatalf("Expected multiple monthly rows, got %d", len(result.Rows))
	}

	prev := 0.0
	for i, row := range result.Rows {
		running := row[2].(float64)
		if running < prev {
			t.Errorf("Running total decreased at row %d: %f < %f", i, running, prev)
		}
		prev = running
	}
}

// TestMetadataRoundTrip verifies seed metadata survives a save/load cycle
// and that detection is scoped to the current schema.
func TestMetadataRoundTrip(t *testing.T) {
	pool := setupGoldDB(t, "metadata")
	ctx := context.Background()

	// A metadata table in another schema must not count as initialized
	_, err := pool.Exec(ctx, `CREATE SCHEMA other`)
	if err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	_, err = pool.Exec(ctx, `
        CREATE TABLE other.goldmart_metadata (key TEXT PRIMARY KEY, value TEXT NOT NULL)
    `)
	if err != nil {
		t.Fatalf("Failed to create foreign metadata table: %v", err)
	}
	exists, err := db.MetadataExists(ctx, pool)
	if err != nil {
		t.Fatalf("MetadataExists failed: %v", err)
	}
	if exists {
		t.Fatal("Metadata table in another schema counted as initialized")
	}

	info := db.SeedInfo{Customers: 50, Products: 20, Orders: 2000, Seed: 42}
	if err := db.SaveMetadata(ctx, pool, info); err != nil {
		t.Fatalf("SaveMetadata failed: %v", err)
	}

	exists, err = db.MetadataExists(ctx, pool)
	if err != nil {
		t.Fatalf("MetadataExists failed: %v", err)
	}
	if !exists {
		t.Fatal("Metadata table missing after save")
	}

	customers, err := db.GetMetadataValue(ctx, pool, "customers")
	if err != nil {
		t.Fatalf("GetMetadataValue failed: %v", err)
	}
	if customers != "50" {
		t.Errorf("Expected customers '50', got '%s'", customers)
	}
}

// TestSchemaIdempotent verifies Create can run twice.
func TestSchemaIdempotent(t *testing.T) {
	pool := setupGoldDB(t, "idempotent")
	ctx := context.Background()

	if err := schema.Create(ctx, pool); err != nil {
		t.Fatalf("Second Create failed (not idempotent): %v", err)
	}
	if err := schema.CreateViews(ctx, pool); err != nil {
		t.Fatalf("Second CreateViews failed (not idempotent): %v", err)
	}
}
