package catalog

import (
	"sort"

	"github.com/Mhd-Shakir/carlet/models"
)

// FilterMetadata computes the filter options the listing UI renders: each
// make/body/fuel/transmission value present in the catalog with its listing
// count, plus the price and year ranges. The catalog never changes at
// runtime, so callers are free to cache the result.
func (c *Catalog) FilterMetadata() models.FilterMetadata {
	makes := map[string]int{}
	bodies := map[string]int{}
	fuels := map[string]int{}
	transmissions := map[string]int{}

	var priceRange *models.PriceRange
	var yearRange *models.YearRange

	for _, car := range c.cars {
		makes[car.Make]++
		bodies[car.BodyType]++
		fuels[car.FuelType]++
		transmissions[car.Transmission]++

		if priceRange == nil {
			priceRange = &models.PriceRange{Min: car.Price, Max: car.Price}
			yearRange = &models.YearRange{Min: car.Year, Max: car.Year}
			continue
		}
		if car.Price < priceRange.Min {
			priceRange.Min = car.Price
		}
		if car.Price > priceRange.Max {
			priceRange.Max = car.Price
		}
		if car.Year < yearRange.Min {
			yearRange.Min = car.Year
		}
		if car.Year > yearRange.Max {
			yearRange.Max = car.Year
		}
	}

	return models.FilterMetadata{
		Makes:         toOptions(makes),
		BodyTypes:     toOptions(bodies),
		FuelTypes:     toOptions(fuels),
		Transmissions: toOptions(transmissions),
		PriceRange:    priceRange,
		YearRange:     yearRange,
	}
}

func toOptions(counts map[string]int) []models.FilterOption {
	options := make([]models.FilterOption, 0, len(counts))
	for value, count := range counts {
		options = append(options, models.FilterOption{Label: value, Value: value, Count: count})
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Value < options[j].Value })
	return options
}
