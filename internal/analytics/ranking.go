//-------------------------------------------------------------------------
//
// GoldMart Retail Reporting
//
// Copyright (c) 2025 - 2026, the GoldMart authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package analytics

// Top/bottom-N rankings by revenue. Ties keep the engine's order on the
// ranking expression.

func init() {
	registerSQL("top-products", CategoryRanking,
		"Five products generating the highest revenue", `
        SELECT p.product_name, SUM(f.sales_amount)::float8 AS total_revenue
        FROM fact_sales f
        JOIN dim_products p ON p.product_key = f.product_key
        GROUP BY p.product_name
        ORDER BY total_revenue DESC
        LIMIT 5
    `)

	registerSQL("bottom-products", CategoryRanking,
		"Five worst-performing products by revenue", `
        SELECT p.product_name, SUM(f.sales_amount)::float8 AS total_revenue
        FROM fact_sales f
        JOIN dim_products p ON p.product_key = f.product_key
        GROUP BY p.product_name
        ORDER BY total_revenue ASC
        LIMIT 5
    `)

	registerSQL("top-customers", CategoryRanking,
		"Ten customers generating the highest revenue", `
        SELECT c.customer_key,
               c.first_name,
               c.last_name,
               SUM(f.sales_amount)::float8 AS total_revenue
        FROM fact_sales f
        JOIN dim_customers c ON c.customer_key = f.customer_key
        GROUP BY c.customer_key, c.first_name, c.last_name
        ORDER BY total_revenue DESC
        LIMIT 10
    `)

	registerSQL("fewest-order-customers", CategoryRanking,
		"Three customers with the fewest orders placed", `
        SELECT c.customer_key,
               c.first_name,
               c.last_name,
               COUNT(DISTINCT f.order_number)::int AS total_orders
        FROM fact_sales f
        JOIN dim_customers c ON c.customer_key = f.customer_key
        GROUP BY c.customer_key, c.first_name, c.last_name
        ORDER BY total_orders ASC
        LIMIT 3
    `)
}
