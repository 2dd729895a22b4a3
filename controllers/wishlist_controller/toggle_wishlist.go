package wishlist_controller

import (
	"log"
	"net/http"

	"github.com/Mhd-Shakir/carlet/config"
	"github.com/Mhd-Shakir/carlet/models"
	"github.com/Mhd-Shakir/carlet/wishlist"
	"github.com/gin-gonic/gin"
)

// ToggleWishlist godoc
// @Summary Toggle a car in the wishlist
// @Description Adds the car if absent, removes it if present. Responds with the transition and the new count so the caller can update its view optimistically.
// @Tags Wishlist
// @Produce json
// @Param carId path string true "Car ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Car not found"
// @Router /wishlist/{carId}/toggle [post]
func ToggleWishlist(c *gin.Context) {
	carID := c.Param("carId")

	if _, ok := cat.ByID(carID); !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Car not found — browse all cars at /cars"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	store := storeFor(c)
	transition := store.Toggle(ctx, carID)
	log.Printf("[wishlist.toggle] car %s %s", carID, transition)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist updated successfully", gin.H{
		"carId":      carID,
		"transition": transition,
		"wishlisted": transition == wishlist.Added,
		"count":      store.Len(ctx),
	}))
}
