// Package analytics holds the catalog of ad-hoc analytical queries over the
// gold star schema. Every query is parameterless, read-only, and
// independently reproducible from the two dimensions and the sales fact.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/goldmart/goldmart/internal/db"
)

// Query categories, in presentation order.
const (
	CategoryExploration  = "exploration"
	CategoryDimensions   = "dimensions"
	CategoryDates        = "dates"
	CategoryMeasures     = "measures"
	CategoryMagnitude    = "magnitude"
	CategoryRanking      = "ranking"
	CategoryTimeSeries   = "timeseries"
	CategoryCumulative   = "cumulative"
	CategoryPerformance  = "performance"
	CategorySegmentation = "segmentation"
	CategoryPartToWhole  = "part-to-whole"
)

// Categories returns all query categories in presentation order.
func Categories() []string {
	return []string{
		CategoryExploration,
		CategoryDimensions,
		CategoryDates,
		CategoryMeasures,
		CategoryMagnitude,
		CategoryRanking,
		CategoryTimeSeries,
		CategoryCumulative,
		CategoryPerformance,
		CategorySegmentation,
		CategoryPartToWhole,
	}
}

// RunFunc executes a catalog query.
type RunFunc func(ctx context.Context, q db.Querier) (*Result, error)

// Query is one named entry in the analytics catalog.
type Query struct {
	// Name is the query identifier.
	Name string

	// Category groups related queries.
	Category string

	// Description describes what the query computes.
	Description string

	// Run executes the query.
	Run RunFunc
}

var (
	registry = make(map[string]*Query)
	mu       sync.RWMutex
)

// Register adds a query to the catalog.
func Register(q *Query) {
	mu.Lock()
	defer mu.Unlock()
	registry[q.Name] = q
}

// Get retrieves a query by name.
func Get(name string) (*Query, error) {
	mu.RLock()
	defer mu.RUnlock()

	q, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown query: %s", name)
	}
	return q, nil
}

// List returns all registered queries sorted by name.
func List() []*Query {
	mu.RLock()
	defer mu.RUnlock()

	queries := make([]*Query, 0, len(registry))
	for _, q := range registry {
		queries = append(queries, q)
	}
	sort.Slice(queries, func(i, j int) bool {
		return queries[i].Name < queries[j].Name
	})
	return queries
}

// ByCategory returns the queries in the given category, sorted by name.
func ByCategory(category string) []*Query {
	var queries []*Query
	for _, q := range List() {
		if q.Category == category {
			queries = append(queries, q)
		}
	}
	return queries
}
