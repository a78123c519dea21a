package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyAge(t *testing.T) {
	tests := []struct {
		age  int
		want AgeGroup
	}{
		{0, AgeUnder20},
		{19, AgeUnder20},
		{20, Age20To29},
		{29, Age20To29},
		{30, Age30To39},
		{39, Age30To39},
		{40, Age40To49},
		{49, Age40To49},
		{50, Age50AndAbove},
		{87, Age50AndAbove},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyAge(tt.age), "age %d", tt.age)
	}
}

func TestClassifyCustomer(t *testing.T) {
	tests := []struct {
		name       string
		lifespan   int
		totalSales float64
		want       CustomerSegment
	}{
		{"vip", 12, 5000.01, SegmentVIP},
		{"long history over threshold", 36, 90000, SegmentVIP},
		{"regular at spend boundary", 12, 5000, SegmentRegular},
		{"regular low spend", 24, 100, SegmentRegular},
		{"new short history high spend", 11, 100000, SegmentNew},
		{"new zero lifespan", 0, 200, SegmentNew},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCustomer(tt.lifespan, tt.totalSales))
		})
	}
}

func TestClassifyProduct(t *testing.T) {
	tests := []struct {
		name       string
		totalSales float64
		want       ProductSegment
	}{
		{"high performer", 60000, SegmentHighPerformer},
		{"just above high threshold", 50000.01, SegmentHighPerformer},
		{"high threshold itself is mid", 50000, SegmentMidRange},
		{"mid range", 12000, SegmentMidRange},
		{"mid lower bound inclusive", 10000, SegmentMidRange},
		{"below mid lower bound", 9999.99, SegmentLowPerformer},
		{"low performer", 500, SegmentLowPerformer},
		{"zero sales", 0, SegmentLowPerformer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyProduct(tt.totalSales))
		})
	}
}

func TestClassifyCost(t *testing.T) {
	tests := []struct {
		cost float64
		want CostRange
	}{
		{0, CostBelow100},
		{99.99, CostBelow100},
		{100, Cost100To500},
		{500, Cost100To500},
		{500.01, Cost500To1000},
		{1000, Cost500To1000},
		{1000.01, CostAbove1000},
		{3500, CostAbove1000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyCost(tt.cost), "cost %.2f", tt.cost)
	}
}
