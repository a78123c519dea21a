//-------------------------------------------------------------------------
//
// GoldMart Retail Reporting
//
// Copyright (c) 2025 - 2026, the GoldMart authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package analytics

import "sort"

// Window computations over ordered sequences. These replace engine-native
// SUM/AVG/LAG OVER clauses with explicit scans that carry a small rolling
// accumulator, so the semantics are testable without a query engine.

// RunningTotals returns the cumulative sum at each position of values.
func RunningTotals(values []float64) []float64 {
	totals := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		totals[i] = sum
	}
	return totals
}

// MovingAverages returns the expanding-window mean at each position of
// values: the average of values[0..i].
func MovingAverages(values []float64) []float64 {
	averages := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		averages[i] = sum / float64(i+1)
	}
	return averages
}

// YearlyValue is one partition-key/year observation, e.g. a product's
// revenue in a year.
type YearlyValue struct {
	Key   string
	Year  int
	Value float64
}

// YearComparison annotates a yearly observation with the comparison against
// the partition's all-years average and against the prior year.
type YearComparison struct {
	Key   string
	Year  int
	Value float64

	Average     float64
	DiffAverage float64
	// AverageChange is "Above Avg", "Below Avg" or "Avg".
	AverageChange string

	PriorValue float64
	DiffPrior  float64
	// PriorChange is "Increase", "Decrease" or "No Change". A partition's
	// first year has no prior row and is always "No Change", as is an
	// exact tie.
	PriorChange string
}

// Change direction labels.
const (
	ChangeIncrease = "Increase"
	ChangeDecrease = "Decrease"
	ChangeNone     = "No Change"

	ChangeAboveAvg = "Above Avg"
	ChangeBelowAvg = "Below Avg"
	ChangeAtAvg    = "Avg"
)

// CompareYearly computes per-partition average and prior-year comparisons
// for a set of yearly observations. Output is ordered by key, then year.
func CompareYearly(values []YearlyValue) []YearComparison {
	ordered := make([]YearlyValue, len(values))
	copy(ordered, values)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Key != ordered[j].Key {
			return ordered[i].Key < ordered[j].Key
		}
		return ordered[i].Year < ordered[j].Year
	})

	// Per-partition averages over all observed years
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, v := range ordered {
		sums[v.Key] += v.Value
		counts[v.Key]++
	}

	comparisons := make([]YearComparison, 0, len(ordered))
	var prevKey string
	var prevValue float64
	havePrev := false

	for _, v := range ordered {
		if v.Key != prevKey {
			havePrev = false
		}

		c := YearComparison{
			Key:     v.Key,
			Year:    v.Year,
			Value:   v.Value,
			Average: sums[v.Key] / float64(counts[v.Key]),
		}
		c.DiffAverage = c.Value - c.Average
		switch {
		case c.DiffAverage > 0:
			c.AverageChange = ChangeAboveAvg
		case c.DiffAverage < 0:
			c.AverageChange = ChangeBelowAvg
		default:
			c.AverageChange = ChangeAtAvg
		}

		if havePrev {
			c.PriorValue = prevValue
			c.DiffPrior = c.Value - prevValue
			switch {
			case c.DiffPrior > 0:
				c.PriorChange = ChangeIncrease
			case c.DiffPrior < 0:
				c.PriorChange = ChangeDecrease
			default:
				c.PriorChange = ChangeNone
			}
		} else {
			c.PriorChange = ChangeNone
		}

		comparisons = append(comparisons, c)
		prevKey = v.Key
		prevValue = v.Value
		havePrev = true
	}
	return comparisons
}
