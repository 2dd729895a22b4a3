package catalog_controller

import (
	"net/http"

	"github.com/Mhd-Shakir/carlet/models"
	"github.com/gin-gonic/gin"
)

// featuredLimit matches the home-page featured grid.
const featuredLimit = 6

// GetFeaturedCars godoc
// @Summary Get featured cars
// @Description The home-page featured slice: up to 6 listings flagged as featured, in catalog order.
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /cars/featured [get]
func GetFeaturedCars(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Featured cars fetched successfully", cat.Featured(featuredLimit)))
}
