package booking_controller

import (
	"log"
	"net/http"

	"github.com/Mhd-Shakir/carlet/catalog"
	"github.com/Mhd-Shakir/carlet/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var cat *catalog.Catalog

// Init wires the catalog used to validate booking targets.
func Init(c *catalog.Catalog) {
	cat = c
}

// CreateTestDrive godoc
// @Summary Book a test drive (simulated)
// @Description Validates the request and acknowledges it with a reference id. There is no scheduling backend; the booking is logged and nothing else happens.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param booking body models.TestDriveRequest true "Booking details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 404 {object} models.ApiResponse "Car not found"
// @Router /bookings/test-drive [post]
func CreateTestDrive(c *gin.Context) {
	var req models.TestDriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid booking payload: "+err.Error()))
		return
	}

	car, ok := cat.ByID(req.CarID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Car not found — browse all cars at /cars"))
		return
	}

	reference := uuid.NewString()
	log.Printf("[booking.test-drive] ref=%s car=%q name=%q date=%s %s",
		reference, car.Title, req.Name, req.PreferredDate, req.PreferredTime)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Test drive booked successfully", models.BookingConfirmation{
		Reference: reference,
		Status:    "confirmed",
	}))
}
