//-------------------------------------------------------------------------
//
// GoldMart Retail Reporting
//
// Copyright (c) 2025 - 2026, the GoldMart authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package seed

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/goldmart/goldmart/internal/logging"
)

// Options controls how much data is generated.
type Options struct {
	// Customers is the number of customer dimension rows.
	Customers int

	// Products is the number of product dimension rows.
	Products int

	// Orders is the number of sales fact line items.
	Orders int

	// Years is the length of the sales history window, ending today.
	Years int
}

// Generator seeds the gold star schema with generated retail data.
type Generator struct {
	faker     *Faker
	batchSize int

	// prices holds the per-product list price, indexed by product_key-1,
	// so fact line items price consistently.
	prices []float64
}

// NewGenerator creates a generator. A non-zero seed makes the generated
// data reproducible.
func NewGenerator(seed uint64) *Generator {
	faker := NewFaker()
	if seed != 0 {
		faker = NewFakerWithSeed(seed)
	}
	return &Generator{
		faker:     faker,
		batchSize: 1000,
	}
}

// Generate populates the dimensions and the sales fact.
func (g *Generator) Generate(ctx context.Context, pool *pgxpool.Pool, opts Options) error {
	if err := g.generateCustomers(ctx, pool, opts.Customers); err != nil {
		return fmt.Errorf("failed to generate dim_customers: %w", err)
	}
	if err := g.generateProducts(ctx, pool, opts.Products); err != nil {
		return fmt.Errorf("failed to generate dim_products: %w", err)
	}
	if err := g.generateSales(ctx, pool, opts); err != nil {
		return fmt.Errorf("failed to generate fact_sales: %w", err)
	}
	return nil
}

func (g *Generator) generateCustomers(ctx context.Context, pool *pgxpool.Pool, count int) error {
	logging.Info().Int("rows", count).Msg("Generating dim_customers")

	birthStart := time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)
	birthEnd := time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC)

	columns := []string{
		"customer_key", "customer_number", "first_name", "last_name",
		"country", "gender", "birthdate",
	}

	rows := make([][]any, 0, min(count, g.batchSize))
	for key := 1; key <= count; key++ {
		rows = append(rows, []any{
			key,
			fmt.Sprintf("CUST-%05d", key),
			g.faker.FirstName(),
			g.faker.LastName(),
			Choose(g.faker, countries),
			ChooseWeighted(g.faker, genders, genderWeights),
			g.faker.DateRange(birthStart, birthEnd),
		})

		if len(rows) >= g.batchSize || key == count {
			if err := g.copyRows(ctx, pool, "dim_customers", columns, rows); err != nil {
				return err
			}
			rows = rows[:0]
		}
	}
	return nil
}

func (g *Generator) generateProducts(ctx context.Context, pool *pgxpool.Pool, count int) error {
	logging.Info().Int("rows", count).Msg("Generating dim_products")

	columns := []string{
		"product_key", "product_number", "product_name",
		"category", "subcategory", "cost",
	}

	g.prices = make([]float64, count)

	rows := make([][]any, 0, min(count, g.batchSize))
	for key := 1; key <= count; key++ {
		line := Choose(g.faker, productLines)
		cost := roundCents(g.faker.Price(line.MinCost, line.MaxCost))
		g.prices[key-1] = roundCents(cost * g.faker.Float64(1.4, 2.2))

		rows = append(rows, []any{
			key,
			fmt.Sprintf("PRD-%05d", key),
			g.productName(line),
			line.Category,
			line.Subcategory,
			cost,
		})

		if len(rows) >= g.batchSize || key == count {
			if err := g.copyRows(ctx, pool, "dim_products", columns, rows); err != nil {
				return err
			}
			rows = rows[:0]
		}
	}
	return nil
}

func (g *Generator) productName(line productLine) string {
	color := Choose(g.faker, colors)
	switch line.Category {
	case "Bikes":
		return fmt.Sprintf("%s-%d %s, %d",
			line.BaseName, g.faker.Int(1, 5)*100, color,
			Choose(g.faker, frameSizes))
	case "Components":
		return fmt.Sprintf("%s - %s, %d",
			line.BaseName, color, Choose(g.faker, frameSizes))
	default:
		return fmt.Sprintf("%s - %s", line.BaseName, color)
	}
}

var quantityWeights = []int{70, 15, 10, 5}

func (g *Generator) generateSales(ctx context.Context, pool *pgxpool.Pool, opts Options) error {
	logging.Info().Int("rows", opts.Orders).Msg("Generating fact_sales")

	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(-opts.Years, 0, 0)

	columns := []string{
		"order_number", "product_key", "customer_key",
		"order_date", "shipping_date", "sales_amount", "quantity", "price",
	}

	// Sequential order numbers; about a quarter of line items extend the
	// previous order instead of opening a new one, so distinct order
	// counts differ from line counts.
	orderSeq := 43000
	var orderNumber string
	var customerKey int
	var orderDate time.Time

	rows := make([][]any, 0, min(opts.Orders, g.batchSize))
	for i := 1; i <= opts.Orders; i++ {
		if orderNumber == "" || g.faker.Float64(0, 1) < 0.75 {
			orderSeq++
			orderNumber = fmt.Sprintf("SO%d", orderSeq)
			customerKey = g.faker.Int(1, opts.Customers)
			orderDate = g.faker.DateRange(start, end)
		}

		productKey := g.faker.Int(1, opts.Products)
		quantity := ChooseWeighted(g.faker, []int{1, 2, 3, 4}, quantityWeights)
		price := g.prices[productKey-1]

		// A sliver of rows carries no order date; the reporting layer
		// must filter them out.
		var date, shipping any
		if g.faker.Float64(0, 1) < 0.99 {
			date = orderDate
			shipping = orderDate.AddDate(0, 0, g.faker.Int(2, 7))
		}

		rows = append(rows, []any{
			orderNumber,
			productKey,
			customerKey,
			date,
			shipping,
			roundCents(price * float64(quantity)),
			quantity,
			price,
		})

		if len(rows) >= g.batchSize || i == opts.Orders {
			if err := g.copyRows(ctx, pool, "fact_sales", columns, rows); err != nil {
				return err
			}
			rows = rows[:0]
		}
	}
	return nil
}

func (g *Generator) copyRows(ctx context.Context, pool *pgxpool.Pool,
	table string, columns []string, rows [][]any) error {

	copied, err := pool.CopyFrom(ctx, pgx.Identifier{table}, columns,
		pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("copy into %s failed: %w", table, err)
	}
	logging.Debug().
		Str("table", table).
		Int64("rows", copied).
		Msg("Copied batch")
	return nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
