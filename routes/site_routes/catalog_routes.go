package site_routes

import (
	"github.com/Mhd-Shakir/carlet/controllers/catalog_controller"
	"github.com/gin-gonic/gin"
)

func SetupCatalogRoutes(router *gin.RouterGroup) {
	// Catalog routes (public, read-only)
	cars := router.Group("/cars")
	{
		cars.GET("", catalog_controller.GetCars) // List with filters

		cars.GET("/featured", catalog_controller.GetFeaturedCars)
		cars.GET("/latest", catalog_controller.GetLatestCars)
		cars.GET("/filters/metadata", catalog_controller.GetFilterMetadata)

		cars.GET("/:id", catalog_controller.GetCarByID) // Single car
		cars.GET("/:id/similar", catalog_controller.GetSimilarCars)
		cars.GET("/:id/brochure", catalog_controller.DownloadCarBrochure)
	}
}
