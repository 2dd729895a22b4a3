package catalog_controller

import (
	"net/http"

	"github.com/Mhd-Shakir/carlet/models"
	"github.com/gin-gonic/gin"
)

// similarLimit matches the "similar cars" strip on the detail page.
const similarLimit = 4

// GetSimilarCars godoc
// @Summary Get similar cars
// @Description Up to 4 listings sharing a make or body type with the given car, excluding the car itself.
// @Tags Catalog
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Car not found"
// @Router /cars/{id}/similar [get]
func GetSimilarCars(c *gin.Context) {
	id := c.Param("id")

	car, ok := cat.ByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Car not found — browse all cars at /cars"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Similar cars fetched successfully", cat.Similar(car, similarLimit)))
}
