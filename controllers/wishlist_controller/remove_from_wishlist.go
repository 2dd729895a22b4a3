package wishlist_controller

import (
	"net/http"

	"github.com/Mhd-Shakir/carlet/config"
	"github.com/Mhd-Shakir/carlet/models"
	"github.com/gin-gonic/gin"
)

// RemoveFromWishlist godoc
// @Summary Remove a car from the wishlist
// @Description Removing an id that is not saved is a no-op, not an error.
// @Tags Wishlist
// @Produce json
// @Param carId path string true "Car ID"
// @Success 200 {object} models.ApiResponse
// @Router /wishlist/{carId} [delete]
func RemoveFromWishlist(c *gin.Context) {
	carID := c.Param("carId")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	store := storeFor(c)
	store.Remove(ctx, carID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Car removed from wishlist", gin.H{
		"carId": carID,
		"count": store.Len(ctx),
	}))
}
