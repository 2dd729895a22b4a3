// Package search turns the free-text header quick-search into structured
// listing filters using substring containment against a small fixed
// vocabulary. It is a heuristic, not a grammar: anything it cannot classify
// still reaches the listing page through the generic search field.
package search

import (
	"strings"

	"github.com/Mhd-Shakir/carlet/models"
)

// knownMakes, checked in declared order; the first one contained in the
// query wins.
var knownMakes = []string{"bmw", "audi", "mercedes", "tesla", "volkswagen", "toyota", "honda", "ford", "nissan"}

type vocabEntry struct {
	term  string
	value string
}

// Checked in declared order; the first contained term sets the field.
var bodyTypes = []vocabEntry{
	{"suv", models.BodySUV},
	{"sedan", models.BodySedan},
	{"hatchback", models.BodyHatchback},
	{"coupe", models.BodyCoupe},
	{"convertible", models.BodyConvertible},
}

var fuelTypes = []vocabEntry{
	{"electric", models.FuelElectric},
	{"hybrid", models.FuelHybrid},
	{"petrol", models.FuelPetrol},
	{"gasoline", models.FuelPetrol},
	{"diesel", models.FuelDiesel},
}

var transmissions = []vocabEntry{
	{"automatic", models.TransmissionAutomatic},
	{"manual", models.TransmissionManual},
}

// ParseQuery extracts at most one value per category from the query and
// always carries the trimmed original text in Search so the pipeline's
// free-text matching still applies as a fallback. It never fails; a query
// matching nothing structured yields filters with only Search set.
//
// The make keeps the site's naive first-letter capitalization ("bmw" ->
// "Bmw", not "BMW"); the listing UI populates its make dropdown the same
// way, so the two stay consistent.
func ParseQuery(input string) models.SearchFilters {
	var f models.SearchFilters

	trimmed := strings.TrimSpace(input)
	query := strings.ToLower(trimmed)

	for _, make := range knownMakes {
		if strings.Contains(query, make) {
			f.Make = strings.ToUpper(make[:1]) + make[1:]
			break
		}
	}

	f.BodyType = firstMatch(query, bodyTypes)
	f.FuelType = firstMatch(query, fuelTypes)
	f.Transmission = firstMatch(query, transmissions)

	f.Search = trimmed
	return f
}

func firstMatch(query string, vocab []vocabEntry) string {
	for _, entry := range vocab {
		if strings.Contains(query, entry.term) {
			return entry.value
		}
	}
	return ""
}
