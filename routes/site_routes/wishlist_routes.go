package site_routes

import (
	"github.com/Mhd-Shakir/carlet/controllers/wishlist_controller"
	"github.com/gin-gonic/gin"
)

func SetupWishlistRoutes(router *gin.RouterGroup) {
	// Wishlist routes (session-scoped, no auth — a wishlist belongs to a
	// browser, not an account)
	wishlist := router.Group("/wishlist")
	{
		wishlist.GET("", wishlist_controller.GetWishlist)
		wishlist.POST("/:carId/toggle", wishlist_controller.ToggleWishlist)
		wishlist.DELETE("/:carId", wishlist_controller.RemoveFromWishlist)
		wishlist.DELETE("", wishlist_controller.ClearWishlist)
	}
}
