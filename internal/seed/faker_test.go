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
	"testing"
	"time"
)

func TestFakerReproducibility(t *testing.T) {
	f1 := NewFakerWithSeed(42)
	f2 := NewFakerWithSeed(42)

	for i := 0; i < 10; i++ {
		n1 := f1.FirstName()
		n2 := f2.FirstName()
		if n1 != n2 {
			t.Errorf("Seeded fakers diverged at %d: '%s' vs '%s'", i, n1, n2)
		}
	}
}

func TestIntRange(t *testing.T) {
	f := NewFakerWithSeed(1)
	for i := 0; i < 100; i++ {
		v := f.Int(1, 4)
		if v < 1 || v > 4 {
			t.Fatalf("Int(1, 4) returned %d", v)
		}
	}
}

func TestFloat64Range(t *testing.T) {
	f := NewFakerWithSeed(1)
	for i := 0; i < 100; i++ {
		v := f.Float64(1.4, 2.2)
		if v < 1.4 || v > 2.2 {
			t.Fatalf("Float64(1.4, 2.2) returned %f", v)
		}
	}
}

func TestDateRange(t *testing.T) {
	f := NewFakerWithSeed(7)
	start := time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		d := f.DateRange(start, end)
		if d.Before(start) || d.After(end) {
			t.Fatalf("DateRange returned %v outside [%v, %v]", d, start, end)
		}
	}
}

func TestChoose(t *testing.T) {
	f := NewFakerWithSeed(3)

	items := []string{"a", "b", "c"}
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		v := Choose(f, items)
		if v != "a" && v != "b" && v != "c" {
			t.Fatalf("Choose returned unexpected value '%s'", v)
		}
		seen[v] = true
	}
	if len(seen) != len(items) {
		t.Errorf("Choose only produced %d of %d items", len(seen), len(items))
	}

	var empty []int
	if v := Choose(f, empty); v != 0 {
		t.Errorf("Choose on empty slice returned %d, expected zero value", v)
	}
}

func TestChooseWeighted(t *testing.T) {
	f := NewFakerWithSeed(9)

	items := []string{"common", "rare"}
	weights := []int{99, 1}

	counts := make(map[string]int)
	for i := 0; i < 1000; i++ {
		counts[ChooseWeighted(f, items, weights)]++
	}

	if counts["common"] < counts["rare"] {
		t.Errorf("Weighted choice ignored weights: common=%d rare=%d",
			counts["common"], counts["rare"])
	}

	var empty []string
	if v := ChooseWeighted(f, empty, nil); v != "" {
		t.Errorf("ChooseWeighted on empty slice returned '%s'", v)
	}
}

func TestProductName(t *testing.T) {
	g := NewGenerator(11)

	for _, line := range productLines {
		name := g.productName(line)
		if name == "" {
			t.Errorf("Empty product name for line %s/%s", line.Category, line.Subcategory)
		}
	}
}
