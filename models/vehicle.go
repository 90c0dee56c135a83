// vehicle.go - Defines the Vehicle model and its enumerations

package models

// Vehicle types.
const (
	TypeCar  = "car"
	TypeBike = "bike"
	TypeVan  = "van"
	TypeSUV  = "SUV"
)

// Availability statuses.
const (
	StatusAvailable = "available"
	StatusBooked    = "booked"
)

var (
	validVehicleTypes = []string{TypeCar, TypeBike, TypeVan, TypeSUV}
	validAvailability = []string{StatusAvailable, StatusBooked}
)

// ValidVehicleType reports whether t is a recognized vehicle type.
func ValidVehicleType(t string) bool {
	for _, v := range validVehicleTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ValidAvailability reports whether s is a recognized availability status.
func ValidAvailability(s string) bool {
	for _, v := range validAvailability {
		if v == s {
			return true
		}
	}
	return false
}

type Vehicle struct { // Vehicle struct represents a vehicle row in the database
	ID                 uint    `gorm:"primaryKey" json:"id"`
	VehicleName        string  `gorm:"size:100;not null" json:"vehicle_name"`
	Type               string  `gorm:"size:50;not null;default:'car'" json:"type"`
	RegistrationNumber string  `gorm:"size:200;uniqueIndex;not null" json:"registration_number"` // Plate number, unique
	DailyRentPrice     float64 `gorm:"type:decimal(10,2);not null" json:"daily_rent_price"`      // Must be > 0
	AvailabilityStatus string  `gorm:"size:20;not null;default:'available'" json:"availability_status"`
}
