package catalog

import (
	"testing"

	"github.com/Mhd-Shakir/carlet/models"
)

func TestByID(t *testing.T) {
	c := New(fixtureCars())

	car, ok := c.ByID("3")
	if !ok || car.Make != "Tesla" {
		t.Errorf("ByID(3) = %+v, %v", car, ok)
	}

	if _, ok := c.ByID("missing"); ok {
		t.Error("ByID(missing) should not be found")
	}
}

func TestFeaturedAndLatest(t *testing.T) {
	cars := fixtureCars()
	cars[0].Featured = true
	cars[2].Featured = true
	cars[4].Featured = true
	c := New(cars)

	t.Run("featured respects flag, order, and cap", func(t *testing.T) {
		got := c.Featured(2)
		if !equalIDs(ids(got), []string{"1", "3"}) {
			t.Errorf("Featured(2) = %v", ids(got))
		}
	})

	t.Run("latest is a natural-order prefix", func(t *testing.T) {
		got := c.Latest(3)
		if !equalIDs(ids(got), []string{"1", "2", "3"}) {
			t.Errorf("Latest(3) = %v", ids(got))
		}
	})

	t.Run("latest caps at catalog size", func(t *testing.T) {
		if got := c.Latest(100); len(got) != len(cars) {
			t.Errorf("Latest(100) returned %d cars", len(got))
		}
	})
}

func TestSimilar(t *testing.T) {
	c := New(fixtureCars())

	ref, _ := c.ByID("1") // BMW Sedan

	got := c.Similar(ref, 4)
	// Shares make (none) or body type Sedan (car 3), never itself.
	if !equalIDs(ids(got), []string{"3"}) {
		t.Errorf("Similar = %v, want [3]", ids(got))
	}

	t.Run("cap applies", func(t *testing.T) {
		seeded := Default()
		ref, ok := seeded.ByID("2") // Audi SUV: several SUVs and another Audi in the seed
		if !ok {
			t.Fatal("seed car 2 missing")
		}
		if got := seeded.Similar(ref, 4); len(got) != 4 {
			t.Errorf("Similar cap = %d items, want 4", len(got))
		}
		for _, car := range seeded.Similar(ref, 4) {
			if car.ID == ref.ID {
				t.Error("Similar returned the reference car")
			}
			if car.Make != ref.Make && car.BodyType != ref.BodyType {
				t.Errorf("car %s shares neither make nor body type", car.ID)
			}
		}
	})
}

func TestFilterMetadata(t *testing.T) {
	c := New(fixtureCars())
	meta := c.FilterMetadata()

	findCount := func(options []models.FilterOption, value string) int {
		for _, o := range options {
			if o.Value == value {
				return o.Count
			}
		}
		return -1
	}

	if got := findCount(meta.Makes, "BMW"); got != 1 {
		t.Errorf("BMW count = %d, want 1", got)
	}
	if got := findCount(meta.BodyTypes, models.BodyHatchback); got != 2 {
		t.Errorf("Hatchback count = %d, want 2", got)
	}
	if got := findCount(meta.FuelTypes, models.FuelPetrol); got != 2 {
		t.Errorf("Petrol count = %d, want 2", got)
	}
	if meta.PriceRange == nil || meta.PriceRange.Min != 12400 || meta.PriceRange.Max != 36800 {
		t.Errorf("PriceRange = %+v", meta.PriceRange)
	}
	if meta.YearRange == nil || meta.YearRange.Min != 2020 || meta.YearRange.Max != 2023 {
		t.Errorf("YearRange = %+v", meta.YearRange)
	}
}

func TestSeedInvariants(t *testing.T) {
	cars := Seed()
	if len(cars) == 0 {
		t.Fatal("seed catalog is empty")
	}

	seen := make(map[string]bool)
	for _, car := range cars {
		if seen[car.ID] {
			t.Errorf("duplicate id %s", car.ID)
		}
		seen[car.ID] = true

		if len(car.Images) == 0 {
			t.Errorf("car %s has no images", car.ID)
		}
		if car.Price <= 0 {
			t.Errorf("car %s has non-positive price", car.ID)
		}
		if car.OriginalPrice != 0 && car.OriginalPrice < car.Price {
			t.Errorf("car %s original price below price", car.ID)
		}
	}
}
