// booking.go - Booking lifecycle: create, list, cancel/return, auto-return
// Multi-statement mutations (insert booking + flip vehicle, return
// booking + free vehicle) each run inside a single transaction so a
// vehicle can never end up double-booked.

package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"vehicle-rental-backend/apperrors"
	"vehicle-rental-backend/models"
	"vehicle-rental-backend/token"
)

type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

type CreateBookingInput struct {
	CustomerID uint // Optional for customers; defaults to the requester
	VehicleID  uint
	RentStart  models.Date
	RentEnd    models.Date
}

// VehicleSummary is the vehicle slice embedded in booking responses.
type VehicleSummary struct {
	VehicleName        string  `json:"vehicle_name,omitempty"`
	RegistrationNumber string  `json:"registration_number,omitempty"`
	Type               string  `json:"type,omitempty"`
	DailyRentPrice     float64 `json:"daily_rent_price,omitempty"`
	AvailabilityStatus string  `json:"availability_status,omitempty"`
}

// CustomerSummary is the customer slice embedded in admin listings.
type CustomerSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BookingDetail is a booking plus the joined summaries the API returns.
type BookingDetail struct {
	models.Booking
	Customer *CustomerSummary `json:"customer,omitempty"`
	Vehicle  *VehicleSummary  `json:"vehicle,omitempty"`
}

// inclusiveDays counts rental days with both endpoints included.
func inclusiveDays(start, end models.Date) int {
	return int(math.Ceil(end.Sub(start.Time).Hours()/24)) + 1
}

// Create books a vehicle for a date range. The vehicle must exist and
// be available; the booking insert and the availability flip happen in
// one transaction. Customers can only book for themselves.
func (s *BookingService) Create(ctx context.Context, in CreateBookingInput, requester *token.Claims) (*BookingDetail, error) {
	customerID := in.CustomerID
	if customerID == 0 {
		customerID = requester.UserID
	}
	if requester.Role == models.RoleCustomer && customerID != requester.UserID {
		return nil, apperrors.Forbidden("You are not authorized to book for another customer.")
	}

	if in.RentStart.IsZero() {
		return nil, apperrors.Validation("Rent start date is required.")
	}
	if in.RentEnd.IsZero() {
		return nil, apperrors.Validation("Rent end date is required.")
	}
	if !in.RentEnd.After(in.RentStart.Time) {
		return nil, apperrors.Validation("Rent end date must be after rent start date.")
	}

	var detail *BookingDetail
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer models.User
		if err := tx.First(&customer, customerID).Error; err != nil {
			return apperrors.FromDB(err, "User not found.")
		}

		var vehicle models.Vehicle
		if err := tx.First(&vehicle, in.VehicleID).Error; err != nil {
			return apperrors.FromDB(err, "Vehicle not found.")
		}
		if vehicle.AvailabilityStatus == models.StatusBooked {
			return apperrors.Conflict("Vehicle is already booked.")
		}

		days := inclusiveDays(in.RentStart, in.RentEnd)
		booking := models.Booking{
			CustomerID: customerID,
			VehicleID:  vehicle.ID,
			RentStart:  in.RentStart,
			RentEnd:    in.RentEnd,
			TotalPrice: vehicle.DailyRentPrice * float64(days),
			Status:     models.BookingActive,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return apperrors.Internal(err)
		}

		if err := tx.Model(&models.Vehicle{}).Where("id = ?", vehicle.ID).
			Update("availability_status", models.StatusBooked).Error; err != nil {
			return apperrors.Internal(err)
		}

		detail = &BookingDetail{
			Booking: booking,
			Vehicle: &VehicleSummary{
				VehicleName:    vehicle.VehicleName,
				DailyRentPrice: vehicle.DailyRentPrice,
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// List returns the requester's bookings when they are a customer, or
// every booking (with customer details) for admins. Newest first.
func (s *BookingService) List(ctx context.Context, requester *token.Claims) ([]BookingDetail, error) {
	q := s.db.WithContext(ctx).Preload("Vehicle").Order("id desc")
	mine := requester.Role == models.RoleCustomer
	if mine {
		q = q.Where("customer_id = ?", requester.UserID)
	} else {
		q = q.Preload("Customer")
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	out := make([]BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		d := BookingDetail{Booking: b}
		if mine {
			d.Vehicle = &VehicleSummary{
				VehicleName:        b.Vehicle.VehicleName,
				RegistrationNumber: b.Vehicle.RegistrationNumber,
				Type:               b.Vehicle.Type,
			}
		} else {
			d.Customer = &CustomerSummary{Name: b.Customer.Name, Email: b.Customer.Email}
			d.Vehicle = &VehicleSummary{
				VehicleName:        b.Vehicle.VehicleName,
				RegistrationNumber: b.Vehicle.RegistrationNumber,
			}
		}
		out = append(out, d)
	}
	return out, nil
}

// UpdateStatus cancels or returns a booking. Cancelling is allowed for
// the owning customer or an admin and leaves the vehicle untouched.
// Returning is admin-only and frees the vehicle; the result then
// carries the vehicle's new availability.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID uint, newStatus string, requester *token.Claims) (*BookingDetail, error) {
	if newStatus != models.BookingCancelled && newStatus != models.BookingReturned {
		return nil, apperrors.Validation("Status must be 'cancelled' or 'returned'.")
	}

	var detail *BookingDetail
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			return apperrors.FromDB(err, "Booking not found.")
		}

		if requester.Role != models.RoleAdmin && requester.UserID != booking.CustomerID {
			return apperrors.Forbidden("You are not authorized to update this booking.")
		}
		if newStatus == models.BookingReturned && requester.Role != models.RoleAdmin {
			return apperrors.Forbidden("Only admins can mark a booking as returned.")
		}
		if !models.CanTransitionBooking(booking.Status, newStatus) {
			return apperrors.Validation(fmt.Sprintf("Cannot change a %s booking to %s.", booking.Status, newStatus))
		}

		booking.Status = newStatus
		if err := tx.Model(&models.Booking{}).Where("id = ?", booking.ID).
			Update("status", newStatus).Error; err != nil {
			return apperrors.Internal(err)
		}

		detail = &BookingDetail{Booking: booking}

		// Cancelling keeps the vehicle flagged as booked; only a
		// return frees it.
		if newStatus == models.BookingReturned {
			if err := tx.Model(&models.Vehicle{}).Where("id = ?", booking.VehicleID).
				Update("availability_status", models.StatusAvailable).Error; err != nil {
				return apperrors.Internal(err)
			}
			detail.Vehicle = &VehicleSummary{AvailabilityStatus: models.StatusAvailable}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// AutoReturn closes out every active booking whose end date is before
// today: the booking becomes returned and its vehicle available, one
// transaction per booking. Returns how many bookings were closed.
func (s *BookingService) AutoReturn(ctx context.Context, now time.Time) (int, error) {
	today := now.UTC().Truncate(24 * time.Hour)

	var expired []models.Booking
	err := s.db.WithContext(ctx).
		Where("status = ? AND rent_end_date < ?", models.BookingActive, today).
		Find(&expired).Error
	if err != nil {
		return 0, apperrors.Internal(err)
	}

	closed := 0
	for _, booking := range expired {
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&models.Booking{}).
				Where("id = ? AND status = ?", booking.ID, models.BookingActive).
				Update("status", models.BookingReturned)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return nil // Someone else already closed it
			}
			return tx.Model(&models.Vehicle{}).Where("id = ?", booking.VehicleID).
				Update("availability_status", models.StatusAvailable).Error
		})
		if err != nil {
			return closed, apperrors.Internal(err)
		}
		closed++
	}
	return closed, nil
}
