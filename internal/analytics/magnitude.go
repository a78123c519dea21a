//-------------------------------------------------------------------------
//
// GoldMart Retail Reporting
//
// Copyright (c) 2025 - 2026, the GoldMart authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package analytics

// Grouped magnitude breakdowns. Null join keys and null grouping values are
// filtered out before aggregation rather than coerced to a sentinel.

func init() {
	registerSQL("customers-by-country", CategoryMagnitude,
		"Customer counts by country", `
        SELECT country, COUNT(*)::int AS total_customers
        FROM dim_customers
        WHERE country IS NOT NULL
        GROUP BY country
        ORDER BY total_customers DESC
    `)

	registerSQL("customers-by-gender", CategoryMagnitude,
		"Customer counts by gender", `
        SELECT gender, COUNT(*)::int AS total_customers
        FROM dim_customers
        WHERE gender IS NOT NULL
        GROUP BY gender
        ORDER BY total_customers DESC
    `)

	registerSQL("products-by-category", CategoryMagnitude,
		"Product counts by category", `
        SELECT category, COUNT(*)::int AS total_products
        FROM dim_products
        WHERE category IS NOT NULL
        GROUP BY category
        ORDER BY total_products DESC
    `)

	registerSQL("avg-cost-by-category", CategoryMagnitude,
		"Average product cost by category", `
        SELECT category, ROUND(AVG(cost), 2)::float8 AS avg_cost
        FROM dim_products
        WHERE category IS NOT NULL
        GROUP BY category
        ORDER BY avg_cost DESC
    `)

	registerSQL("revenue-by-category", CategoryMagnitude,
		"Total revenue by product category", `
        SELECT p.category, SUM(f.sales_amount)::float8 AS total_revenue
        FROM fact_sales f
        JOIN dim_products p ON p.product_key = f.product_key
        WHERE p.category IS NOT NULL
        GROUP BY p.category
        ORDER BY total_revenue DESC
    `)

	registerSQL("revenue-by-customer", CategoryMagnitude,
		"Total revenue per customer", `
        SELECT c.customer_key,
               c.first_name,
               c.last_name,
               SUM(f.sales_amount)::float8 AS total_revenue
        FROM fact_sales f
        JOIN dim_customers c ON c.customer_key = f.customer_key
        GROUP BY c.customer_key, c.first_name, c.last_name
        ORDER BY total_revenue DESC
    `)

	registerSQL("items-by-country", CategoryMagnitude,
		"Sold item quantities by customer country", `
        SELECT c.country, SUM(f.quantity)::int AS total_sold_items
        FROM fact_sales f
        JOIN dim_customers c ON c.customer_key = f.customer_key
        WHERE c.country IS NOT NULL
        GROUP BY c.country
        ORDER BY total_sold_items DESC
    `)
}
