//-------------------------------------------------------------------------
//
// GoldMart Retail Reporting
//
// Copyright (c) 2025 - 2026, the GoldMart authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package reports

// Fixed-threshold classifications used by the reporting views and the
// segmentation queries. Each is a pure function over numeric input
// returning an enumerated category.

// AgeGroup is a fixed age bucket.
type AgeGroup string

// Age groups. AgeUnknown is used when a customer has no recorded
// birthdate; it never comes out of ClassifyAge.
const (
	AgeUnder20    AgeGroup = "Under 20"
	Age20To29     AgeGroup = "20-29"
	Age30To39     AgeGroup = "30-39"
	Age40To49     AgeGroup = "40-49"
	Age50AndAbove AgeGroup = "50 and above"
	AgeUnknown    AgeGroup = "n/a"
)

// ClassifyAge buckets an age in years into its age group.
func ClassifyAge(age int) AgeGroup {
	switch {
	case age < 20:
		return AgeUnder20
	case age < 30:
		return Age20To29
	case age < 40:
		return Age30To39
	case age < 50:
		return Age40To49
	default:
		return Age50AndAbove
	}
}

// CustomerSegment classifies customers by history length and spend.
type CustomerSegment string

// Customer segments.
const (
	SegmentVIP     CustomerSegment = "VIP"
	SegmentRegular CustomerSegment = "Regular"
	SegmentNew     CustomerSegment = "New"
)

// ClassifyCustomer segments a customer. VIP requires at least 12 months of
// history and more than 5000 in total sales; Regular requires the history
// but not the spend; everyone else is New.
func ClassifyCustomer(lifespanMonths int, totalSales float64) CustomerSegment {
	if lifespanMonths >= 12 {
		if totalSales > 5000 {
			return SegmentVIP
		}
		return SegmentRegular
	}
	return SegmentNew
}

// ProductSegment classifies products by total revenue.
type ProductSegment string

// Product segments.
const (
	SegmentHighPerformer ProductSegment = "High-Performer"
	SegmentMidRange      ProductSegment = "Mid-Range"
	SegmentLowPerformer  ProductSegment = "Low-Performer"
)

// ClassifyProduct segments a product: above 50000 total sales is a
// High-Performer, 10000 and up is Mid-Range, anything below is a
// Low-Performer.
func ClassifyProduct(totalSales float64) ProductSegment {
	switch {
	case totalSales > 50000:
		return SegmentHighPerformer
	case totalSales >= 10000:
		return SegmentMidRange
	default:
		return SegmentLowPerformer
	}
}

// CostRange is a fixed product cost bucket.
type CostRange string

// Cost ranges.
const (
	CostBelow100  CostRange = "Below 100"
	Cost100To500  CostRange = "100-500"
	Cost500To1000 CostRange = "500-1000"
	CostAbove1000 CostRange = "Above 1000"
)

// ClassifyCost buckets a product cost into its cost range.
func ClassifyCost(cost float64) CostRange {
	switch {
	case cost < 100:
		return CostBelow100
	case cost <= 500:
		return Cost100To500
	case cost <= 1000:
		return Cost500To1000
	default:
		return CostAbove1000
	}
}
