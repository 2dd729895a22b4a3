package catalog

import (
	"sort"

	"github.com/Mhd-Shakir/carlet/models"
)

// Sort keys accepted by Query. Anything else falls back to SortNewest.
const (
	SortNewest     = "newest"
	SortPriceLow   = "price-low"
	SortPriceHigh  = "price-high"
	SortYearNew    = "year-new"
	SortMileageLow = "mileage-low"
)

// DefaultPageSize matches the listing page grid.
const DefaultPageSize = 12

// QueryResult is one page of listings plus the counts the pagination
// controls need.
type QueryResult struct {
	Items      []models.Car `json:"items"`
	TotalCount int          `json:"totalCount"`
	PageCount  int          `json:"pageCount"`
}

// Query reduces cars to the page a user should see: filter (AND-combined),
// stable sort, then paginate. It is a pure function; neither cars nor
// filters are mutated. Pages are 1-indexed and a page past the end yields an
// empty slice with the counts still reported — the caller owns resetting to
// page 1 when filters change, so no clamping happens here.
func Query(cars []models.Car, filters models.SearchFilters, sortBy string, page, pageSize int) QueryResult {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	filtered := make([]models.Car, 0, len(cars))
	for _, car := range cars {
		if filters.Matches(car) {
			filtered = append(filtered, car)
		}
	}

	sortCars(filtered, sortBy)

	total := len(filtered)
	pageCount := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start >= total {
		return QueryResult{Items: []models.Car{}, TotalCount: total, PageCount: pageCount}
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return QueryResult{Items: filtered[start:end], TotalCount: total, PageCount: pageCount}
}

// sortCars applies the named comparator in place. Ties keep the filtered
// order (stable sort).
func sortCars(cars []models.Car, sortBy string) {
	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(cars, func(i, j int) bool { return cars[i].Price < cars[j].Price })
	case SortPriceHigh:
		sort.SliceStable(cars, func(i, j int) bool { return cars[i].Price > cars[j].Price })
	case SortMileageLow:
		sort.SliceStable(cars, func(i, j int) bool { return cars[i].Mileage < cars[j].Mileage })
	case SortYearNew:
		sort.SliceStable(cars, func(i, j int) bool { return cars[i].Year > cars[j].Year })
	default: // newest
		sort.SliceStable(cars, func(i, j int) bool { return cars[i].Year > cars[j].Year })
	}
}
