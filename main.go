// @title Carlet Storefront API
// @version 1.0
// @description Used-car catalog, wishlist, and quick-search API for the CarLet site
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Mhd-Shakir/carlet/catalog"
	"github.com/Mhd-Shakir/carlet/config"
	"github.com/Mhd-Shakir/carlet/controllers/booking_controller"
	"github.com/Mhd-Shakir/carlet/controllers/catalog_controller"
	"github.com/Mhd-Shakir/carlet/controllers/wishlist_controller"
	"github.com/Mhd-Shakir/carlet/middleware"
	"github.com/Mhd-Shakir/carlet/routes/site_routes"
	"github.com/Mhd-Shakir/carlet/wishlist"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Redis connection (wishlist persistence + rate limiting; optional)
	config.ConnectRedis()

	// Seed the catalog once; it is read-only from here on
	cat := catalog.Default()
	log.Printf("✅ Catalog seeded with %d cars", cat.Len())

	// Wishlist stores: one per browser session, Redis-backed when available
	registry := wishlist.NewRegistry(
		func(session string) wishlist.Storage {
			if config.RedisClient != nil {
				return wishlist.NewRedisStorage(config.RedisClient, "wishlist:"+session)
			}
			return wishlist.NewMemoryStorage()
		},
		func(session string, s *wishlist.Store) {
			// Standing observer: every mounted consumer reloads on this
			// signal; server-side we just keep the activity log.
			s.Subscribe(func() {
				log.Printf("[wishlist] changed for session %s", session)
			})
		},
	)

	catalog_controller.Init(cat)
	wishlist_controller.Init(registry, cat)
	booking_controller.Init(cat)

	// Cloudinary srcset variants (optional)
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName != "" {
		if err := catalog_controller.InitImages(cloudName, apiKey, apiSecret); err != nil {
			log.Printf("⚠️  Cloudinary init failed, serving plain image URLs: %v", err)
		}
	}

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // Expose these headers for brochure downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	api.Use(middleware.Session())

	site_routes.SetupCatalogRoutes(api)
	site_routes.SetupWishlistRoutes(api)
	site_routes.SetupSearchRoutes(api)
	site_routes.SetupBookingRoutes(api)
	log.Println("✅ Storefront routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := config.GetEnv("PORT", "8080")
	fmt.Println("🚀 Server is running on http://localhost:" + port)
	router.Run(":" + port)
}
