package search_controller

import (
	"net/http"

	"github.com/Mhd-Shakir/carlet/models"
	"github.com/Mhd-Shakir/carlet/search"
	"github.com/gin-gonic/gin"
)

// QuickSearch godoc
// @Summary Parse a header quick-search query
// @Description Translates free text ("red bmw suv automatic") into structured listing filters plus the canonical /cars query string the client should navigate to. Never fails: text matching nothing structured still yields a filters object with the generic search field.
// @Tags Search
// @Produce json
// @Param q query string true "Free-text query"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Missing query"
// @Router /search/quick [get]
func QuickSearch(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Query parameter 'q' is required"))
		return
	}

	filters := search.ParseQuery(q)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Query parsed successfully", gin.H{
		"filters": filters,
		"query":   filters.Values().Encode(),
		"target":  "/cars?" + filters.Values().Encode(),
	}))
}
