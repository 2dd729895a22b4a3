package wishlist_controller

import (
	"log"
	"net/http"

	"github.com/Mhd-Shakir/carlet/config"
	"github.com/Mhd-Shakir/carlet/models"
	"github.com/gin-gonic/gin"
)

// ClearWishlist godoc
// @Summary Clear the wishlist
// @Tags Wishlist
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /wishlist [delete]
func ClearWishlist(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	storeFor(c).Clear(ctx)
	log.Printf("[wishlist.clear] wishlist cleared")

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist cleared", gin.H{"count": 0}))
}
