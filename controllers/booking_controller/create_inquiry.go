package booking_controller

import (
	"log"
	"net/http"

	"github.com/Mhd-Shakir/carlet/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateInquiry godoc
// @Summary Submit a contact inquiry (simulated)
// @Description Validates and logs a contact-form message, optionally about a specific listing. No mail is sent.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param inquiry body models.InquiryRequest true "Inquiry details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 404 {object} models.ApiResponse "Car not found"
// @Router /inquiries [post]
func CreateInquiry(c *gin.Context) {
	var req models.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid inquiry payload: "+err.Error()))
		return
	}

	// CarID is optional, but when present it must reference a listing.
	if req.CarID != "" {
		if _, ok := cat.ByID(req.CarID); !ok {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Car not found — browse all cars at /cars"))
			return
		}
	}

	reference := uuid.NewString()
	log.Printf("[inquiry.create] ref=%s from=%q subject=%q car=%s", reference, req.Email, req.Subject, req.CarID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Inquiry submitted successfully", models.BookingConfirmation{
		Reference: reference,
		Status:    "received",
	}))
}
