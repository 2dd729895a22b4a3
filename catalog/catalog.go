// Package catalog holds the in-memory car catalog and the query pipeline
// that drives the listing, home, and detail endpoints. The catalog is the
// sole source of truth for listing data; it is seeded once at startup and is
// read-only afterwards.
package catalog

import (
	"github.com/Mhd-Shakir/carlet/models"
)

type Catalog struct {
	cars []models.Car
	byID map[string]models.Car
}

// New wraps a slice of listings with an id index. The slice is not copied;
// callers must not mutate it afterwards.
func New(cars []models.Car) *Catalog {
	byID := make(map[string]models.Car, len(cars))
	for _, car := range cars {
		byID[car.ID] = car
	}
	return &Catalog{cars: cars, byID: byID}
}

// Default returns a catalog over the seed dataset.
func Default() *Catalog {
	return New(Seed())
}

// All returns the listings in natural catalog order.
func (c *Catalog) All() []models.Car {
	return c.cars
}

// Len returns the number of listings.
func (c *Catalog) Len() int {
	return len(c.cars)
}

// ByID looks up a single listing.
func (c *Catalog) ByID(id string) (models.Car, bool) {
	car, ok := c.byID[id]
	return car, ok
}

// Featured returns up to limit featured listings in catalog order.
func (c *Catalog) Featured(limit int) []models.Car {
	if limit <= 0 {
		return nil
	}
	out := make([]models.Car, 0, limit)
	for _, car := range c.cars {
		if !car.Featured {
			continue
		}
		out = append(out, car)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Latest returns the first limit listings in natural catalog order.
func (c *Catalog) Latest(limit int) []models.Car {
	if limit > len(c.cars) {
		limit = len(c.cars)
	}
	return c.cars[:limit]
}

// Similar returns up to limit listings sharing a make or body type with ref,
// excluding ref itself, in catalog order.
func (c *Catalog) Similar(ref models.Car, limit int) []models.Car {
	if limit <= 0 {
		return nil
	}
	out := make([]models.Car, 0, limit)
	for _, car := range c.cars {
		if car.ID == ref.ID {
			continue
		}
		if car.Make != ref.Make && car.BodyType != ref.BodyType {
			continue
		}
		out = append(out, car)
		if len(out) == limit {
			break
		}
	}
	return out
}
