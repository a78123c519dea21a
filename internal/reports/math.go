//-------------------------------------------------------------------------
//
// GoldMart Retail Reporting
//
// Copyright (c) 2025 - 2026, the GoldMart authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package reports

import "time"

// SafeDivide divides num by den, returning fallback when den is zero.
// All derived ratio fields go through this guard.
func SafeDivide(num, den, fallback float64) float64 {
	if den == 0 {
		return fallback
	}
	return num / den
}

// MonthsBetween returns the number of calendar-month boundaries crossed
// between from and to: (y2-y1)*12 + (m2-m1). Days are ignored, matching
// the month arithmetic used in the reporting views.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// AgeAt returns the age in full years at the given evaluation time.
func AgeAt(birthdate, asOf time.Time) int {
	years := asOf.Year() - birthdate.Year()
	if asOf.Month() < birthdate.Month() ||
		(asOf.Month() == birthdate.Month() && asOf.Day() < birthdate.Day()) {
		years--
	}
	return years
}
