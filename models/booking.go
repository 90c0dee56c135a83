// booking.go - Defines the Booking model, its status enumeration and
// the allowed status transitions

package models

// Booking statuses. A booking starts out active and ends up either
// cancelled or returned; both are terminal.
const (
	BookingActive    = "active"
	BookingCancelled = "cancelled"
	BookingReturned  = "returned"
)

var validBookingStatuses = []string{BookingActive, BookingCancelled, BookingReturned}

// ValidBookingStatus reports whether s is a recognized booking status.
func ValidBookingStatus(s string) bool {
	for _, v := range validBookingStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// bookingTransitions maps each status to the statuses it may move to.
var bookingTransitions = map[string][]string{
	BookingActive:    {BookingCancelled, BookingReturned},
	BookingCancelled: {},
	BookingReturned:  {},
}

// CanTransitionBooking reports whether a booking may move from one
// status to another.
func CanTransitionBooking(from, to string) bool {
	for _, s := range bookingTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Booking struct { // Booking struct represents a booking row in the database
	ID         uint    `gorm:"primaryKey" json:"id"`
	CustomerID uint    `gorm:"not null;index" json:"customer_id"` // Foreign key to users table
	Customer   User    `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	VehicleID  uint    `gorm:"not null;index" json:"vehicle_id"` // Foreign key to vehicles table
	Vehicle    Vehicle `gorm:"foreignKey:VehicleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	RentStart  Date    `gorm:"column:rent_start_date;not null" json:"rent_start_date"`
	RentEnd    Date    `gorm:"column:rent_end_date;not null" json:"rent_end_date"` // Strictly after RentStart
	TotalPrice float64 `gorm:"type:decimal(10,2);not null" json:"total_price"`     // DailyRentPrice * inclusive day count
	Status     string  `gorm:"size:50;not null;default:'active';index" json:"status"`
}
