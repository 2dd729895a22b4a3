package catalog_controller

import (
	"net/http"

	"github.com/Mhd-Shakir/carlet/models"
	"github.com/gin-gonic/gin"
)

// latestLimit matches the home-page latest-arrivals strip.
const latestLimit = 8

// GetLatestCars godoc
// @Summary Get latest arrivals
// @Description The home-page latest slice: the first 8 listings in natural catalog order.
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /cars/latest [get]
func GetLatestCars(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Latest cars fetched successfully", cat.Latest(latestLimit)))
}
