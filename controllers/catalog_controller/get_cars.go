package catalog_controller

import (
	"net/http"

	"github.com/Mhd-Shakir/carlet/catalog"
	"github.com/Mhd-Shakir/carlet/models"
	"github.com/gin-gonic/gin"
)

// GetCars godoc
// @Summary List cars with filters
// @Description Retrieve catalog listings with optional free-text search, make, model, price/year/mileage bounds, fuel type, transmission, body type, and location filters. Results are sorted and paginated.
// @Tags Catalog
// @Produce json
// @Param search query string false "Free-text search (title, make, model, description)"
// @Param make query string false "Exact make"
// @Param model query string false "Model substring (case-insensitive)"
// @Param minPrice query int false "Minimum price (inclusive)"
// @Param maxPrice query int false "Maximum price (inclusive)"
// @Param minYear query int false "Minimum model year (inclusive)"
// @Param maxYear query int false "Maximum model year (inclusive)"
// @Param maxMileage query int false "Maximum mileage (inclusive)"
// @Param fuelType query string false "Fuel type (Petrol | Diesel | Electric | Hybrid)"
// @Param transmission query string false "Transmission (Manual | Automatic)"
// @Param bodyType query string false "Body type (Sedan | SUV | Hatchback | Coupe | Convertible | Wagon)"
// @Param location query string false "Location substring (case-insensitive)"
// @Param sortBy query string false "Sort key (newest | price-low | price-high | year-new | mileage-low)" default(newest)
// @Param page query int false "Page number (1-indexed)" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Cars fetched successfully"
// @Router /cars [get]
func GetCars(c *gin.Context) {
	page, limit := parsePagination(c)

	// Unparseable numeric params are dropped here, before the pipeline.
	filters := models.ParseSearchFilters(c.Request.URL.Query())
	sortBy := c.DefaultQuery("sortBy", catalog.SortNewest)

	result := catalog.Query(cat.All(), filters, sortBy, page, limit)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Cars fetched successfully",
		result.Items,
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      result.TotalCount,
			TotalPages: result.PageCount,
		},
	))
}
