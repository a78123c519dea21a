//-------------------------------------------------------------------------
//
// GoldMart Retail Reporting
//
// Copyright (c) 2025 - 2026, the GoldMart authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package seed

// Reference data for the product and customer dimensions.

// productLine describes a category/subcategory pair with a base product
// name and a plausible cost band.
type productLine struct {
	Category    string
	Subcategory string
	BaseName    string
	MinCost     float64
	MaxCost     float64
}

var productLines = []productLine{
	{"Bikes", "Mountain Bikes", "Mountain", 800, 2200},
	{"Bikes", "Road Bikes", "Road", 700, 2500},
	{"Bikes", "Touring Bikes", "Touring", 900, 2400},
	{"Components", "Mountain Frames", "HL Mountain Frame", 250, 900},
	{"Components", "Road Frames", "HL Road Frame", 250, 1000},
	{"Components", "Wheels", "Front Wheel", 60, 350},
	{"Accessories", "Helmets", "Sport Helmet", 20, 60},
	{"Accessories", "Bottles and Cages", "Water Bottle", 3, 12},
	{"Accessories", "Tires and Tubes", "Touring Tire", 10, 40},
	{"Clothing", "Jerseys", "Long-Sleeve Jersey", 25, 60},
	{"Clothing", "Shorts", "Cycling Shorts", 25, 70},
	{"Clothing", "Gloves", "Half-Finger Gloves", 10, 30},
}

var colors = []string{
	"Black", "Silver", "Red", "Blue", "Yellow", "White",
}

var frameSizes = []int{38, 42, 44, 48, 52, 58, 62}

var countries = []string{
	"United States", "Australia", "United Kingdom",
	"Germany", "France", "Canada",
}

var genders = []string{"Male", "Female", "n/a"}
var genderWeights = []int{49, 49, 2}
