package models

// TestDriveRequest is the payload for booking a test drive. Bookings are
// simulated: the request is validated, logged, and acknowledged with a
// reference id, but nothing is scheduled anywhere.
type TestDriveRequest struct {
	CarID         string `json:"carId" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	PreferredDate string `json:"preferredDate" binding:"required"`
	PreferredTime string `json:"preferredTime"`
	Message       string `json:"message"`
}

// InquiryRequest is a general contact-form inquiry, optionally about a
// specific listing. Same simulation contract as test drives.
type InquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
	CarID   string `json:"carId"`
}

// BookingConfirmation is returned for both simulated flows.
type BookingConfirmation struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}
