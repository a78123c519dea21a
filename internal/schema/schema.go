//-------------------------------------------------------------------------
//
// GoldMart Retail Reporting
//
// Copyright (c) 2025 - 2026, the GoldMart authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package schema manages the retail gold star schema: the customer and
// product dimensions, the sales fact table, and the two reporting views
// derived from them.
package schema

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema SQL for the gold star schema.
const createSchemaSQL = `
-- Customer Dimension
CREATE TABLE IF NOT EXISTS dim_customers (
    customer_key    INTEGER PRIMARY KEY,
    customer_number VARCHAR(50) NOT NULL,
    first_name      VARCHAR(50),
    last_name       VARCHAR(50),
    country         VARCHAR(50),
    gender          VARCHAR(10),
    birthdate       DATE
);

-- Product Dimension
CREATE TABLE IF NOT EXISTS dim_products (
    product_key    INTEGER PRIMARY KEY,
    product_number VARCHAR(50) NOT NULL,
    product_name   VARCHAR(100) NOT NULL,
    category       VARCHAR(50),
    subcategory    VARCHAR(50),
    cost           NUMERIC(10,2)
);

-- Sales Fact
CREATE TABLE IF NOT EXISTS fact_sales (
    order_number  VARCHAR(20) NOT NULL,
    product_key   INTEGER NOT NULL,
    customer_key  INTEGER NOT NULL,
    order_date    DATE,
    shipping_date DATE,
    sales_amount  NUMERIC(10,2),
    quantity      INTEGER,
    price         NUMERIC(10,2)
);

-- Indexes for the reporting queries
CREATE INDEX IF NOT EXISTS idx_fact_sales_order_date ON fact_sales(order_date);
CREATE INDEX IF NOT EXISTS idx_fact_sales_customer ON fact_sales(customer_key);
CREATE INDEX IF NOT EXISTS idx_fact_sales_product ON fact_sales(product_key);
CREATE INDEX IF NOT EXISTS idx_fact_sales_order_number ON fact_sales(order_number);
CREATE INDEX IF NOT EXISTS idx_dim_customers_country ON dim_customers(country);
CREATE INDEX IF NOT EXISTS idx_dim_products_category ON dim_products(category);
`

// Drop schema SQL
const dropSchemaSQL = `
DROP VIEW IF EXISTS report_customers;
DROP VIEW IF EXISTS report_products;
DROP TABLE IF EXISTS fact_sales CASCADE;
DROP TABLE IF EXISTS dim_products CASCADE;
DROP TABLE IF EXISTS dim_customers CASCADE;
`

// Create creates the gold star schema tables and indexes.
func Create(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, createSchemaSQL)
	return err
}

// Drop drops the reporting views and the gold star schema tables.
func Drop(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, dropSchemaSQL)
	return err
}
