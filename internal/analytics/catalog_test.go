//-------------------------------------------------------------------------
//
// GoldMart Retail Reporting
//
// Copyright (c) 2025 - 2026, the GoldMart authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package analytics

import "testing"

func TestGet(t *testing.T) {
	knownQueries := []string{
		"tables",
		"table-columns",
		"countries",
		"product-lines",
		"order-date-range",
		"customer-age-extremes",
		"business-summary",
		"customers-by-country",
		"customers-by-gender",
		"products-by-category",
		"avg-cost-by-category",
		"revenue-by-category",
		"revenue-by-customer",
		"items-by-country",
		"top-products",
		"bottom-products",
		"top-customers",
		"fewest-order-customers",
		"monthly-sales",
		"running-total-sales",
		"yoy-product-sales",
		"product-cost-ranges",
		"customer-segments",
		"category-contribution",
	}

	for _, name := range knownQueries {
		t.Run(name, func(t *testing.T) {
			q, err := Get(name)
			if err != nil {
				t.Fatalf("Failed to get query '%s': %v", name, err)
			}
			if q == nil {
				t.Fatalf("Get('%s') returned nil", name)
			}
			if q.Name != name {
				t.Errorf("Query name mismatch: expected '%s', got '%s'", name, q.Name)
			}
			if q.Description == "" {
				t.Error("Query description should not be empty")
			}
			if q.Run == nil {
				t.Error("Query runner should not be nil")
			}
		})
	}
}

func TestGetInvalidQuery(t *testing.T) {
	_, err := Get("nonexistent")
	if err == nil {
		t.Error("Expected error for nonexistent query, got nil")
	}
}

func TestGetEmptyName(t *testing.T) {
	_, err := Get("")
	if err == nil {
		t.Error("Expected error for empty query name, got nil")
	}
}

func TestList(t *testing.T) {
	queries := List()
	if len(queries) == 0 {
		t.Fatal("List returned empty slice")
	}

	// List is sorted by name
	for i := 1; i < len(queries); i++ {
		if queries[i-1].Name >= queries[i].Name {
			t.Errorf("List not sorted: '%s' before '%s'",
				queries[i-1].Name, queries[i].Name)
		}
	}

	// Every query belongs to a known category
	known := make(map[string]bool)
	for _, c := range Categories() {
		known[c] = true
	}
	for _, q := range queries {
		if !known[q.Category] {
			t.Errorf("Query '%s' has unknown category '%s'", q.Name, q.Category)
		}
	}
}

func TestByCategory(t *testing.T) {
	total := 0
	for _, category := range Categories() {
		queries := ByCategory(category)
		for _, q := range queries {
			if q.Category != category {
				t.Errorf("ByCategory(%s) returned query '%s' with category '%s'",
					category, q.Name, q.Category)
			}
		}
		total += len(queries)
	}

	if total != len(List()) {
		t.Errorf("Categories cover %d queries, List has %d", total, len(List()))
	}
}

func TestRankingQueriesPresent(t *testing.T) {
	ranking := ByCategory(CategoryRanking)
	if len(ranking) != 4 {
		t.Errorf("Expected 4 ranking queries, got %d", len(ranking))
	}
}
