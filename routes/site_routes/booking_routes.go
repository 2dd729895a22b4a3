package site_routes

import (
	"time"

	"github.com/Mhd-Shakir/carlet/controllers/booking_controller"
	"github.com/Mhd-Shakir/carlet/middleware"
	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(router *gin.RouterGroup) {
	// Simulated write endpoints get a rate limit; everything else is
	// read-only
	limited := router.Group("")
	limited.Use(middleware.RateLimiter(20, time.Minute))

	limited.POST("/bookings/test-drive", booking_controller.CreateTestDrive)
	limited.POST("/inquiries", booking_controller.CreateInquiry)
}
