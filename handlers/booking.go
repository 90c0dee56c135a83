// booking.go - Handles booking lifecycle endpoints

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle-rental-backend/middleware"
	"vehicle-rental-backend/models"
	"vehicle-rental-backend/services"
)

type BookingHandler struct {
	bookings *services.BookingService
}

func NewBookingHandler(bookings *services.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type CreateBookingInput struct { // Struct for booking creation input
	CustomerID uint        `json:"customer_id"` // Optional for customers (defaults to self)
	VehicleID  uint        `json:"vehicle_id" binding:"required"`
	RentStart  models.Date `json:"rent_start_date"`
	RentEnd    models.Date `json:"rent_end_date"`
}

// Create books a vehicle for a date range and flips its availability.
func (h *BookingHandler) Create(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, bindError(err))
		return
	}

	booking, err := h.bookings.Create(c.Request.Context(), services.CreateBookingInput{
		CustomerID: input.CustomerID,
		VehicleID:  input.VehicleID,
		RentStart:  input.RentStart,
		RentEnd:    input.RentEnd,
	}, middleware.CurrentClaims(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Booking created successfully", booking)
}

// List returns the requester's bookings (customer) or all bookings
// (admin).
func (h *BookingHandler) List(c *gin.Context) {
	requester := middleware.CurrentClaims(c)

	bookings, err := h.bookings.List(c.Request.Context(), requester)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Bookings retrieved successfully"
	if requester.Role == models.RoleCustomer {
		message = "Your bookings retrieved successfully"
	}
	if len(bookings) == 0 {
		message = "No bookings found"
	}
	respond(c, http.StatusOK, message, bookings)
}

type UpdateBookingInput struct { // Struct for booking status update input
	Status string `json:"status" binding:"required"` // cancelled or returned
}

// UpdateStatus cancels or returns a booking.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c, "bookingId")
	if err != nil {
		respondError(c, err)
		return
	}

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, bindError(err))
		return
	}

	booking, err := h.bookings.UpdateStatus(c.Request.Context(), id, input.Status, middleware.CurrentClaims(c))
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Booking cancelled successfully"
	if input.Status == models.BookingReturned {
		message = "Booking marked as returned. Vehicle is now available"
	}
	respond(c, http.StatusOK, message, booking)
}
