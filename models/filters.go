package models

import (
	"net/url"
	"strconv"
	"strings"
)

// SearchFilters holds the listing filter criteria. Zero values mean "no
// constraint", matching the query-parameter contract where an absent key
// imposes no filter.
type SearchFilters struct {
	Search       string `json:"search,omitempty"`
	Make         string `json:"make,omitempty"`
	Model        string `json:"model,omitempty"`
	MinPrice     int    `json:"minPrice,omitempty"`
	MaxPrice     int    `json:"maxPrice,omitempty"`
	MinYear      int    `json:"minYear,omitempty"`
	MaxYear      int    `json:"maxYear,omitempty"`
	MaxMileage   int    `json:"maxMileage,omitempty"`
	FuelType     string `json:"fuelType,omitempty"`
	Transmission string `json:"transmission,omitempty"`
	BodyType     string `json:"bodyType,omitempty"`
	Location     string `json:"location,omitempty"`
}

// ParseSearchFilters builds filters from URL query values. Unknown keys are
// ignored and unparseable numeric values are dropped before they ever reach
// the query pipeline.
func ParseSearchFilters(values url.Values) SearchFilters {
	var f SearchFilters

	atoi := func(key string) int {
		n, err := strconv.Atoi(values.Get(key))
		if err != nil {
			return 0
		}
		return n
	}

	f.Search = values.Get("search")
	f.Make = values.Get("make")
	f.Model = values.Get("model")
	f.MinPrice = atoi("minPrice")
	f.MaxPrice = atoi("maxPrice")
	f.MinYear = atoi("minYear")
	f.MaxYear = atoi("maxYear")
	f.MaxMileage = atoi("maxMileage")
	f.FuelType = values.Get("fuelType")
	f.Transmission = values.Get("transmission")
	f.BodyType = values.Get("bodyType")
	f.Location = values.Get("location")

	return f
}

// Values serializes the filters back to URL query values, omitting unset
// fields so parse -> serialize -> parse is idempotent.
func (f SearchFilters) Values() url.Values {
	values := url.Values{}

	setStr := func(key, v string) {
		if v != "" {
			values.Set(key, v)
		}
	}
	setInt := func(key string, v int) {
		if v != 0 {
			values.Set(key, strconv.Itoa(v))
		}
	}

	setStr("search", f.Search)
	setStr("make", f.Make)
	setStr("model", f.Model)
	setInt("minPrice", f.MinPrice)
	setInt("maxPrice", f.MaxPrice)
	setInt("minYear", f.MinYear)
	setInt("maxYear", f.MaxYear)
	setInt("maxMileage", f.MaxMileage)
	setStr("fuelType", f.FuelType)
	setStr("transmission", f.Transmission)
	setStr("bodyType", f.BodyType)
	setStr("location", f.Location)

	return values
}

// IsZero reports whether no filter field is set ("show everything").
func (f SearchFilters) IsZero() bool {
	return f == SearchFilters{}
}

// Matches reports whether the car satisfies every set filter field. This is
// the single predicate implementation shared by the listing endpoint and all
// derived queries.
func (f SearchFilters) Matches(car Car) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		haystack := strings.ToLower(car.Title + " " + car.Make + " " + car.Model + " " + car.Description)
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	if f.Make != "" && car.Make != f.Make {
		return false
	}
	if f.Model != "" && !strings.Contains(strings.ToLower(car.Model), strings.ToLower(f.Model)) {
		return false
	}
	if f.MinPrice != 0 && car.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice != 0 && car.Price > f.MaxPrice {
		return false
	}
	if f.MinYear != 0 && car.Year < f.MinYear {
		return false
	}
	if f.MaxYear != 0 && car.Year > f.MaxYear {
		return false
	}
	if f.MaxMileage != 0 && car.Mileage > f.MaxMileage {
		return false
	}
	if f.FuelType != "" && car.FuelType != f.FuelType {
		return false
	}
	if f.Transmission != "" && car.Transmission != f.Transmission {
		return false
	}
	if f.BodyType != "" && car.BodyType != f.BodyType {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(car.Location), strings.ToLower(f.Location)) {
		return false
	}
	return true
}
