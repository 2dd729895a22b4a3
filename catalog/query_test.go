package catalog

import (
	"fmt"
	"testing"

	"github.com/Mhd-Shakir/carlet/models"
)

func fixtureCars() []models.Car {
	return []models.Car{
		{ID: "1", Title: "BMW 3 Series 320d", Make: "BMW", Model: "3 Series", Year: 2022, Price: 28500, Mileage: 18500, FuelType: models.FuelDiesel, Transmission: models.TransmissionAutomatic, BodyType: models.BodySedan, Location: "London", Description: "One-owner diesel saloon"},
		{ID: "2", Title: "Audi Q5 S Line", Make: "Audi", Model: "Q5", Year: 2021, Price: 34900, Mileage: 26400, FuelType: models.FuelDiesel, Transmission: models.TransmissionAutomatic, BodyType: models.BodySUV, Location: "Manchester", Description: "Quattro family SUV"},
		{ID: "3", Title: "Tesla Model 3 Long Range", Make: "Tesla", Model: "Model 3", Year: 2023, Price: 36800, Mileage: 9800, FuelType: models.FuelElectric, Transmission: models.TransmissionAutomatic, BodyType: models.BodySedan, Location: "Birmingham", Description: "Electric long range"},
		{ID: "4", Title: "VW Golf GTI", Make: "Volkswagen", Model: "Golf", Year: 2020, Price: 23500, Mileage: 31200, FuelType: models.FuelPetrol, Transmission: models.TransmissionManual, BodyType: models.BodyHatchback, Location: "Leeds", Description: "Hot hatch"},
		{ID: "5", Title: "Ford Fiesta ST-Line", Make: "Ford", Model: "Fiesta", Year: 2020, Price: 12400, Mileage: 29400, FuelType: models.FuelPetrol, Transmission: models.TransmissionManual, BodyType: models.BodyHatchback, Location: "Nottingham", Description: "Ideal first car"},
	}
}

func TestQueryFiltering(t *testing.T) {
	cars := fixtureCars()

	tests := []struct {
		name    string
		filters models.SearchFilters
		wantIDs []string
	}{
		{"empty filters match everything", models.SearchFilters{}, []string{"3", "1", "2", "4", "5"}},
		{"exact make", models.SearchFilters{Make: "BMW"}, []string{"1"}},
		{"make is case sensitive", models.SearchFilters{Make: "bmw"}, nil},
		{"model substring case-insensitive", models.SearchFilters{Model: "golf"}, []string{"4"}},
		{"free text over title and description", models.SearchFilters{Search: "hatch"}, []string{"4"}},
		{"free text case-insensitive", models.SearchFilters{Search: "TESLA"}, []string{"3"}},
		{"min price inclusive", models.SearchFilters{MinPrice: 34900}, []string{"3", "2"}},
		{"max price inclusive", models.SearchFilters{MaxPrice: 12400}, []string{"5"}},
		{"year bounds", models.SearchFilters{MinYear: 2021, MaxYear: 2022}, []string{"1", "2"}},
		{"max mileage", models.SearchFilters{MaxMileage: 18500}, []string{"3", "1"}},
		{"fuel type", models.SearchFilters{FuelType: models.FuelPetrol}, []string{"4", "5"}},
		{"transmission", models.SearchFilters{Transmission: models.TransmissionManual}, []string{"4", "5"}},
		{"body type", models.SearchFilters{BodyType: models.BodySedan}, []string{"3", "1"}},
		{"location substring", models.SearchFilters{Location: "manch"}, []string{"2"}},
		{"predicates AND-combine", models.SearchFilters{FuelType: models.FuelPetrol, MaxPrice: 13000}, []string{"5"}},
		{"no match", models.SearchFilters{Make: "BMW", FuelType: models.FuelElectric}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Query(cars, tt.filters, SortNewest, 1, DefaultPageSize)

			gotIDs := ids(result.Items)
			if !equalIDs(gotIDs, tt.wantIDs) {
				t.Errorf("Query items = %v, want %v", gotIDs, tt.wantIDs)
			}
			if result.TotalCount != len(tt.wantIDs) {
				t.Errorf("TotalCount = %d, want %d", result.TotalCount, len(tt.wantIDs))
			}

			// Soundness: every returned item satisfies the filters.
			for _, item := range result.Items {
				if !tt.filters.Matches(item) {
					t.Errorf("item %s does not satisfy filters %+v", item.ID, tt.filters)
				}
			}
			// Completeness: no excluded item satisfies the filters.
			included := make(map[string]bool)
			for _, id := range gotIDs {
				included[id] = true
			}
			for _, car := range cars {
				if !included[car.ID] && tt.filters.Matches(car) {
					t.Errorf("car %s satisfies filters but was excluded", car.ID)
				}
			}
		})
	}
}

func TestQuerySortOrders(t *testing.T) {
	cars := fixtureCars()

	t.Run("price-low is non-decreasing", func(t *testing.T) {
		result := Query(cars, models.SearchFilters{}, SortPriceLow, 1, DefaultPageSize)
		for i := 1; i < len(result.Items); i++ {
			if result.Items[i].Price < result.Items[i-1].Price {
				t.Fatalf("price out of order at %d: %d < %d", i, result.Items[i].Price, result.Items[i-1].Price)
			}
		}
	})

	t.Run("price-high is non-increasing", func(t *testing.T) {
		result := Query(cars, models.SearchFilters{}, SortPriceHigh, 1, DefaultPageSize)
		for i := 1; i < len(result.Items); i++ {
			if result.Items[i].Price > result.Items[i-1].Price {
				t.Fatalf("price out of order at %d", i)
			}
		}
	})

	t.Run("mileage-low is non-decreasing", func(t *testing.T) {
		result := Query(cars, models.SearchFilters{}, SortMileageLow, 1, DefaultPageSize)
		for i := 1; i < len(result.Items); i++ {
			if result.Items[i].Mileage < result.Items[i-1].Mileage {
				t.Fatalf("mileage out of order at %d", i)
			}
		}
	})

	t.Run("newest ties keep filtered order", func(t *testing.T) {
		// Cars 4 and 5 share year 2020; catalog order has 4 before 5.
		result := Query(cars, models.SearchFilters{}, SortNewest, 1, DefaultPageSize)
		gotIDs := ids(result.Items)
		if !equalIDs(gotIDs, []string{"3", "1", "2", "4", "5"}) {
			t.Errorf("newest order = %v", gotIDs)
		}
	})

	t.Run("unknown sort key falls back to newest", func(t *testing.T) {
		got := Query(cars, models.SearchFilters{}, "nonsense", 1, DefaultPageSize)
		want := Query(cars, models.SearchFilters{}, SortNewest, 1, DefaultPageSize)
		if !equalIDs(ids(got.Items), ids(want.Items)) {
			t.Errorf("fallback order = %v, want %v", ids(got.Items), ids(want.Items))
		}
	})
}

func TestQueryPagination(t *testing.T) {
	// 37 records, page size 12 -> 4 pages: 12, 12, 12, 1.
	cars := make([]models.Car, 37)
	for i := range cars {
		cars[i] = models.Car{ID: fmt.Sprintf("car-%d", i), Year: 2020, Price: 10000 + i, Images: []string{"x"}}
	}

	tests := []struct {
		page      int
		wantItems int
	}{
		{1, 12},
		{2, 12},
		{3, 12},
		{4, 1},
		{5, 0}, // beyond the last page: empty, not an error
		{99, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("page %d", tt.page), func(t *testing.T) {
			result := Query(cars, models.SearchFilters{}, SortNewest, tt.page, 12)
			if len(result.Items) != tt.wantItems {
				t.Errorf("len(items) = %d, want %d", len(result.Items), tt.wantItems)
			}
			if result.TotalCount != 37 {
				t.Errorf("TotalCount = %d, want 37", result.TotalCount)
			}
			if result.PageCount != 4 {
				t.Errorf("PageCount = %d, want 4", result.PageCount)
			}
		})
	}

	t.Run("no results means zero pages", func(t *testing.T) {
		result := Query(cars, models.SearchFilters{Make: "NoSuchMake"}, SortNewest, 1, 12)
		if result.TotalCount != 0 || result.PageCount != 0 || len(result.Items) != 0 {
			t.Errorf("got %+v, want empty result", result)
		}
	})
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	cars := fixtureCars()
	original := ids(cars)

	Query(cars, models.SearchFilters{}, SortPriceHigh, 1, 2)

	if !equalIDs(ids(cars), original) {
		t.Errorf("input slice reordered: %v, want %v", ids(cars), original)
	}
}

func TestQueryEndToEnd(t *testing.T) {
	cars := []models.Car{
		{ID: "a", Make: "BMW", Year: 2022, Price: 20000},
		{ID: "b", Make: "Audi", Year: 2020, Price: 15000},
		{ID: "c", Make: "BMW", Year: 2019, Price: 25000},
	}

	result := Query(cars, models.SearchFilters{Make: "BMW"}, SortPriceLow, 1, 12)

	if result.TotalCount != 2 {
		t.Fatalf("TotalCount = %d, want 2", result.TotalCount)
	}
	if result.Items[0].Price != 20000 || result.Items[1].Price != 25000 {
		t.Errorf("prices = [%d %d], want [20000 25000]", result.Items[0].Price, result.Items[1].Price)
	}
}

func ids(cars []models.Car) []string {
	out := make([]string, len(cars))
	for i, car := range cars {
		out[i] = car.ID
	}
	return out
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
