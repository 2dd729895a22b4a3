package wishlist_controller

import (
	"net/http"

	"github.com/Mhd-Shakir/carlet/config"
	"github.com/Mhd-Shakir/carlet/models"
	"github.com/gin-gonic/gin"
)

// GetWishlist godoc
// @Summary Get the session's wishlist
// @Description Returns the saved cars joined against the catalog, plus the raw id list. Saved ids that no longer exist in the catalog drop out of the joined view silently.
// @Tags Wishlist
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /wishlist [get]
func GetWishlist(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	ids := storeFor(c).Load(ctx)

	// Catalog join; stale ids are tolerated, they just don't render.
	cars := make([]models.Car, 0, len(ids))
	totalValue := 0
	for _, id := range ids {
		if car, ok := cat.ByID(id); ok {
			cars = append(cars, car)
			totalValue += car.Price
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist fetched successfully", gin.H{
		"ids":        ids,
		"cars":       cars,
		"count":      len(cars),
		"totalValue": totalValue,
	}))
}
