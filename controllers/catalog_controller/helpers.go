package catalog_controller

import (
	"log"
	"strconv"

	"github.com/Mhd-Shakir/carlet/catalog"
	"github.com/Mhd-Shakir/carlet/services"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Package state & helpers
// ─────────────────────────────────────────────────────────────

var (
	cat    *catalog.Catalog
	images *services.ImageService
)

// Init wires the catalog the handlers read from. Called once at startup (and
// by tests with fixtures).
func Init(c *catalog.Catalog) {
	cat = c
}

// InitImages enables srcset generation on detail responses. Optional: with
// no Cloudinary configuration the detail page simply serves the plain image
// URLs.
func InitImages(cloudName, apiKey, apiSecret string) error {
	svc, err := services.NewImageService(cloudName, apiKey, apiSecret)
	if err != nil {
		return err
	}
	images = svc
	log.Println("✅ Image variant service initialized")
	return nil
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = catalog.DefaultPageSize
	}

	return page, limit
}
