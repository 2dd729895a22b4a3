package catalog_controller

import (
	"net/http"

	metadata_cache "github.com/Mhd-Shakir/carlet/cache"
	"github.com/Mhd-Shakir/carlet/models"
	"github.com/gin-gonic/gin"
)

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns make/body/fuel/transmission options with listing counts plus price and year ranges for the listing page filter panel.
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Router /cars/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	metadata, ok := metadata_cache.Get()
	if !ok {
		metadata = cat.FilterMetadata()
		metadata_cache.Set(metadata)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", metadata))
}
