// models/metadata.go
package models

// FilterMetadata represents all filter data for the listing page
type FilterMetadata struct {
	Makes         []FilterOption `json:"makes"`
	BodyTypes     []FilterOption `json:"bodyTypes"`
	FuelTypes     []FilterOption `json:"fuelTypes"`
	Transmissions []FilterOption `json:"transmissions"`
	PriceRange    *PriceRange    `json:"priceRange"`
	YearRange     *YearRange     `json:"yearRange"`
}

// FilterOption represents a single filter option with its listing count
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PriceRange represents the minimum and maximum price in the catalog
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// YearRange represents the oldest and newest model year in the catalog
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}
