// vehicle.go - Vehicle inventory CRUD

package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"vehicle-rental-backend/apperrors"
	"vehicle-rental-backend/models"
)

type VehicleService struct {
	db *gorm.DB
}

func NewVehicleService(db *gorm.DB) *VehicleService {
	return &VehicleService{db: db}
}

type CreateVehicleInput struct {
	VehicleName        string
	Type               string // Defaults to car
	RegistrationNumber string
	DailyRentPrice     float64
	AvailabilityStatus string // Defaults to available
}

// Create validates the payload and inserts the vehicle. Registration
// number uniqueness is enforced by the index, not a pre-check.
func (s *VehicleService) Create(ctx context.Context, in CreateVehicleInput) (*models.Vehicle, error) {
	if in.VehicleName == "" {
		return nil, apperrors.Validation("Vehicle name is required.")
	}
	if in.RegistrationNumber == "" {
		return nil, apperrors.Validation("Registration number is required.")
	}
	if in.Type == "" {
		in.Type = models.TypeCar
	}
	if in.AvailabilityStatus == "" {
		in.AvailabilityStatus = models.StatusAvailable
	}
	if err := validateVehicleFields(in.Type, in.AvailabilityStatus, in.DailyRentPrice); err != nil {
		return nil, err
	}

	vehicle := models.Vehicle{
		VehicleName:        in.VehicleName,
		Type:               in.Type,
		RegistrationNumber: in.RegistrationNumber,
		DailyRentPrice:     in.DailyRentPrice,
		AvailabilityStatus: in.AvailabilityStatus,
	}
	if err := s.db.WithContext(ctx).Create(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Registration number already exists.")
		}
		return nil, apperrors.Internal(err)
	}
	return &vehicle, nil
}

func (s *VehicleService) List(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := s.db.WithContext(ctx).Order("id").Find(&vehicles).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return vehicles, nil
}

func (s *VehicleService) GetByID(ctx context.Context, id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.db.WithContext(ctx).First(&vehicle, id).Error; err != nil {
		return nil, apperrors.FromDB(err, "Vehicle not found.")
	}
	return &vehicle, nil
}

// UpdateVehicleInput carries the optional fields of a partial update.
type UpdateVehicleInput struct {
	VehicleName        *string
	Type               *string
	RegistrationNumber *string
	DailyRentPrice     *float64
	AvailabilityStatus *string
}

// Update merges the provided fields over the existing row, re-validates
// the merged record and persists all fields.
func (s *VehicleService) Update(ctx context.Context, id uint, in UpdateVehicleInput) (*models.Vehicle, error) {
	vehicle, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.VehicleName != nil {
		vehicle.VehicleName = *in.VehicleName
	}
	if in.Type != nil {
		vehicle.Type = *in.Type
	}
	if in.RegistrationNumber != nil {
		vehicle.RegistrationNumber = *in.RegistrationNumber
	}
	if in.DailyRentPrice != nil {
		vehicle.DailyRentPrice = *in.DailyRentPrice
	}
	if in.AvailabilityStatus != nil {
		vehicle.AvailabilityStatus = *in.AvailabilityStatus
	}

	if err := validateVehicleFields(vehicle.Type, vehicle.AvailabilityStatus, vehicle.DailyRentPrice); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Save(vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Registration number already exists.")
		}
		return nil, apperrors.Internal(err)
	}
	return vehicle, nil
}

// Delete removes the vehicle; the foreign key cascades its bookings.
func (s *VehicleService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Vehicle{}, id)
	if res.Error != nil {
		return apperrors.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Vehicle not found.")
	}
	return nil
}

// validateVehicleFields checks the merged enum and price invariants
// shared by create and update.
func validateVehicleFields(vehicleType, availability string, price float64) error {
	if price <= 0 {
		return apperrors.Validation("Daily rent price must be greater than 0.")
	}
	if !models.ValidVehicleType(vehicleType) {
		return apperrors.Validation("Type must be car, bike, van or SUV.")
	}
	if !models.ValidAvailability(availability) {
		return apperrors.Validation("Availability status must be available or booked.")
	}
	return nil
}
