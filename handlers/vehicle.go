// vehicle.go - Handles vehicle inventory endpoints

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle-rental-backend/services"
)

type VehicleHandler struct {
	vehicles *services.VehicleService
}

func NewVehicleHandler(vehicles *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

type CreateVehicleInput struct { // Struct for vehicle creation input
	VehicleName        string  `json:"vehicle_name" binding:"required"`
	Type               string  `json:"type"` // Optional, defaults to car
	RegistrationNumber string  `json:"registration_number" binding:"required"`
	DailyRentPrice     float64 `json:"daily_rent_price" binding:"required"`
	AvailabilityStatus string  `json:"availability_status"` // Optional, defaults to available
}

// Create adds a vehicle to the inventory. Admin only.
func (h *VehicleHandler) Create(c *gin.Context) {
	var input CreateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, bindError(err))
		return
	}

	vehicle, err := h.vehicles.Create(c.Request.Context(), services.CreateVehicleInput{
		VehicleName:        input.VehicleName,
		Type:               input.Type,
		RegistrationNumber: input.RegistrationNumber,
		DailyRentPrice:     input.DailyRentPrice,
		AvailabilityStatus: input.AvailabilityStatus,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Vehicle created successfully", vehicle)
}

// List returns the whole inventory. Public.
func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.vehicles.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Vehicles retrieved successfully", vehicles)
}

// Get returns a single vehicle. Public.
func (h *VehicleHandler) Get(c *gin.Context) {
	id, err := parseID(c, "vehicleId")
	if err != nil {
		respondError(c, err)
		return
	}
	vehicle, err := h.vehicles.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Vehicle retrieved successfully", vehicle)
}

type UpdateVehicleInput struct { // All fields optional; nil means unchanged
	VehicleName        *string  `json:"vehicle_name"`
	Type               *string  `json:"type"`
	RegistrationNumber *string  `json:"registration_number"`
	DailyRentPrice     *float64 `json:"daily_rent_price"`
	AvailabilityStatus *string  `json:"availability_status"`
}

// Update merges the payload over the stored vehicle and re-validates
// the whole record. Admin only.
func (h *VehicleHandler) Update(c *gin.Context) {
	id, err := parseID(c, "vehicleId")
	if err != nil {
		respondError(c, err)
		return
	}

	var input UpdateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, bindError(err))
		return
	}

	vehicle, err := h.vehicles.Update(c.Request.Context(), id, services.UpdateVehicleInput{
		VehicleName:        input.VehicleName,
		Type:               input.Type,
		RegistrationNumber: input.RegistrationNumber,
		DailyRentPrice:     input.DailyRentPrice,
		AvailabilityStatus: input.AvailabilityStatus,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Vehicle updated successfully", vehicle)
}

// Delete removes a vehicle; its bookings cascade away. Admin only.
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "vehicleId")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.vehicles.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Vehicle deleted successfully", nil)
}
