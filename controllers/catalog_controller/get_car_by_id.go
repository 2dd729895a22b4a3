package catalog_controller

import (
	"log"
	"net/http"

	"github.com/Mhd-Shakir/carlet/models"
	"github.com/Mhd-Shakir/carlet/services"
	"github.com/gin-gonic/gin"
)

// CarDetail is the detail-page payload: the listing plus derived fields the
// card grid does not need.
type CarDetail struct {
	models.Car
	Savings       int                                 `json:"savings,omitempty"`
	ImageVariants map[string][]services.ImageVariant `json:"imageVariants,omitempty"`
}

// GetCarByID godoc
// @Summary Get single car details
// @Description Get full listing details by id, including savings against the original list price and responsive image variants when configured.
// @Tags Catalog
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Car not found"
// @Router /cars/{id} [get]
func GetCarByID(c *gin.Context) {
	id := c.Param("id")

	car, ok := cat.ByID(id)
	if !ok {
		log.Printf("[catalog.detail] car not found: %s", id)
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Car not found — browse all cars at /cars"))
		return
	}

	detail := CarDetail{Car: car, Savings: car.Savings()}
	if images != nil {
		detail.ImageVariants = make(map[string][]services.ImageVariant, len(car.Images))
		for _, url := range car.Images {
			detail.ImageVariants[url] = images.SrcSet(url)
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Car fetched successfully", detail))
}
