package site_routes

import (
	"github.com/Mhd-Shakir/carlet/controllers/search_controller"
	"github.com/gin-gonic/gin"
)

func SetupSearchRoutes(router *gin.RouterGroup) {
	search := router.Group("/search")
	{
		search.GET("/quick", search_controller.QuickSearch)
	}
}
