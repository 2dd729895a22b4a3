package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/Mhd-Shakir/carlet/catalog"
	"github.com/Mhd-Shakir/carlet/models"
)

// main validates the seed catalog and writes it to stdout as JSON, for
// front-end mock data and for eyeballing the inventory.
// Usage: go run cmd/export/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Fprintln(os.Stderr, "════════════════════════════════════════════════════════════")
	fmt.Fprintln(os.Stderr, "CARLET - Catalog Export")
	fmt.Fprintln(os.Stderr, "════════════════════════════════════════════════════════════")

	cars := catalog.Seed()

	if errs := validate(cars); len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		}
		os.Exit(1)
	}
	log.Printf("✓ %d cars validated", len(cars))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cars); err != nil {
		log.Fatalf("Failed to encode catalog: %v", err)
	}
}

// validate checks the catalog invariants: unique ids, at least one image,
// positive price, and originalPrice never below price.
func validate(cars []models.Car) []error {
	var errs []error
	seen := make(map[string]bool, len(cars))

	for _, car := range cars {
		if car.ID == "" {
			errs = append(errs, fmt.Errorf("car %q has an empty id", car.Title))
			continue
		}
		if seen[car.ID] {
			errs = append(errs, fmt.Errorf("duplicate car id %q", car.ID))
		}
		seen[car.ID] = true

		if len(car.Images) == 0 {
			errs = append(errs, fmt.Errorf("car %s has no images", car.ID))
		}
		if car.Price <= 0 {
			errs = append(errs, fmt.Errorf("car %s has non-positive price %d", car.ID, car.Price))
		}
		if car.OriginalPrice != 0 && car.OriginalPrice < car.Price {
			errs = append(errs, fmt.Errorf("car %s original price %d is below price %d", car.ID, car.OriginalPrice, car.Price))
		}
	}
	return errs
}
