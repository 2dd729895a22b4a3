package metadata_cache

import (
	"testing"

	"github.com/Mhd-Shakir/carlet/models"
)

func TestCacheLifecycle(t *testing.T) {
	Invalidate()

	if _, ok := Get(); ok {
		t.Fatal("empty cache reported a hit")
	}

	metadata := models.FilterMetadata{
		Makes:      []models.FilterOption{{Label: "BMW", Value: "BMW", Count: 3}},
		PriceRange: &models.PriceRange{Min: 9000, Max: 62000},
	}
	Set(metadata)

	got, ok := Get()
	if !ok {
		t.Fatal("cache miss right after Set")
	}
	if len(got.Makes) != 1 || got.Makes[0].Value != "BMW" {
		t.Errorf("cached makes = %+v", got.Makes)
	}
	if got.PriceRange == nil || got.PriceRange.Min != 9000 {
		t.Errorf("cached price range = %+v", got.PriceRange)
	}

	Invalidate()
	if _, ok := Get(); ok {
		t.Error("hit after Invalidate")
	}
}
