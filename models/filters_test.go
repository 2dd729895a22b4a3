package models

import (
	"net/url"
	"reflect"
	"testing"
)

func TestParseSearchFilters(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  SearchFilters
	}{
		{
			"all fields",
			"search=fast&make=BMW&model=3+series&minPrice=1000&maxPrice=50000&minYear=2018&maxYear=2023&maxMileage=40000&fuelType=Diesel&transmission=Automatic&bodyType=Sedan&location=London",
			SearchFilters{Search: "fast", Make: "BMW", Model: "3 series", MinPrice: 1000, MaxPrice: 50000, MinYear: 2018, MaxYear: 2023, MaxMileage: 40000, FuelType: "Diesel", Transmission: "Automatic", BodyType: "Sedan", Location: "London"},
		},
		{"empty query", "", SearchFilters{}},
		{"unknown keys ignored", "foo=bar&page=3&sortBy=newest", SearchFilters{}},
		{"malformed numerics dropped", "minPrice=abc&maxPrice=12x&minYear=&make=Audi", SearchFilters{Make: "Audi"}},
		{"negative values pass through", "minPrice=-5", SearchFilters{MinPrice: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("bad fixture query: %v", err)
			}
			got := ParseSearchFilters(values)
			if got != tt.want {
				t.Errorf("ParseSearchFilters = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFiltersRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		f    SearchFilters
	}{
		{"empty", SearchFilters{}},
		{"strings only", SearchFilters{Search: "red bmw", Location: "London"}},
		{"numerics only", SearchFilters{MinPrice: 5000, MaxYear: 2022}},
		{"mixed", SearchFilters{Make: "Tesla", BodyType: "Sedan", MaxMileage: 30000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reparsed := ParseSearchFilters(tt.f.Values())
			if reparsed != tt.f {
				t.Errorf("round trip = %+v, want %+v", reparsed, tt.f)
			}
			// Serialization omits unset fields entirely.
			again, _ := url.ParseQuery(tt.f.Values().Encode())
			if !reflect.DeepEqual(ParseSearchFilters(again), tt.f) {
				t.Errorf("encode/decode round trip changed filters")
			}
		})
	}

	t.Run("empty filters serialize to nothing", func(t *testing.T) {
		if enc := (SearchFilters{}).Values().Encode(); enc != "" {
			t.Errorf("empty filters encoded to %q", enc)
		}
	})
}

func TestIsZero(t *testing.T) {
	if !(SearchFilters{}).IsZero() {
		t.Error("empty filters should be zero")
	}
	if (SearchFilters{Make: "BMW"}).IsZero() {
		t.Error("set filters should not be zero")
	}
}

func TestSavings(t *testing.T) {
	tests := []struct {
		name string
		car  Car
		want int
	}{
		{"discounted", Car{Price: 28500, OriginalPrice: 31000}, 2500},
		{"no list price", Car{Price: 28500}, 0},
		{"list price equals price", Car{Price: 28500, OriginalPrice: 28500}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.car.Savings(); got != tt.want {
				t.Errorf("Savings() = %d, want %d", got, tt.want)
			}
		})
	}
}
