//-------------------------------------------------------------------------
//
// GoldMart Retail Reporting
//
// Copyright (c) 2025 - 2026, the GoldMart authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package analytics

// Schema exploration, dimension listing, date-range discovery and the
// big-number business summary.

func init() {
	registerSQL("tables", CategoryExploration,
		"List the tables and views of the current schema", `
        SELECT table_name, table_type
        FROM information_schema.tables
        WHERE table_schema = current_schema()
        ORDER BY table_name
    `)

	registerSQL("table-columns", CategoryExploration,
		"List the columns of the gold schema tables", `
        SELECT table_name, column_name, data_type, is_nullable
        FROM information_schema.columns
        WHERE table_schema = current_schema()
          AND table_name IN ('dim_customers', 'dim_products', 'fact_sales')
        ORDER BY table_name, ordinal_position
    `)

	registerSQL("countries", CategoryDimensions,
		"Distinct customer countries", `
        SELECT DISTINCT country
        FROM dim_customers
        WHERE country IS NOT NULL
        ORDER BY country
    `)

	registerSQL("product-lines", CategoryDimensions,
		"Distinct category / subcategory / product combinations", `
        SELECT DISTINCT category, subcategory, product_name
        FROM dim_products
        WHERE category IS NOT NULL
        ORDER BY category, subcategory, product_name
    `)

	registerSQL("order-date-range", CategoryDates,
		"First and last order date and the span in months", `
        SELECT
            MIN(order_date) AS first_order_date,
            MAX(order_date) AS last_order_date,
            ((EXTRACT(YEAR FROM MAX(order_date)) - EXTRACT(YEAR FROM MIN(order_date))) * 12
              + (EXTRACT(MONTH FROM MAX(order_date)) - EXTRACT(MONTH FROM MIN(order_date))))::int AS range_months
        FROM fact_sales
        WHERE order_date IS NOT NULL
    `)

	// Every customer tying the global min or max birthdate is listed.
	registerSQL("customer-age-extremes", CategoryDates,
		"Oldest and youngest customers by birthdate", `
        SELECT
            CASE WHEN c.birthdate = x.oldest THEN 'Oldest' ELSE 'Youngest' END AS extreme,
            c.first_name,
            c.last_name,
            c.birthdate
        FROM dim_customers c
        CROSS JOIN (
            SELECT MIN(birthdate) AS oldest, MAX(birthdate) AS youngest
            FROM dim_customers
        ) x
        WHERE c.birthdate = x.oldest OR c.birthdate = x.youngest
        ORDER BY c.birthdate, c.customer_key
    `)

	registerSQL("business-summary", CategoryMeasures,
		"Headline business metrics in one result", `
        SELECT 'Total Sales' AS measure_name, SUM(sales_amount)::float8 AS measure_value FROM fact_sales
        UNION ALL
        SELECT 'Total Quantity', SUM(quantity)::float8 FROM fact_sales
        UNION ALL
        SELECT 'Average Price', ROUND(AVG(price), 2)::float8 FROM fact_sales
        UNION ALL
        SELECT 'Total Orders', COUNT(DISTINCT order_number)::float8 FROM fact_sales
        UNION ALL
        SELECT 'Total Products', COUNT(*)::float8 FROM dim_products
        UNION ALL
        SELECT 'Total Customers', COUNT(*)::float8 FROM dim_customers
        UNION ALL
        SELECT 'Customers With Orders', COUNT(DISTINCT customer_key)::float8 FROM fact_sales
    `)
}
