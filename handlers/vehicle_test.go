// vehicle_test.go - Tests for the vehicle inventory endpoints

package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle-rental-backend/handlers"
	"vehicle-rental-backend/models"
)

func TestCreateVehicle(t *testing.T) {
	router, db := setupTest(t)
	admin := createUser(t, db, "Admin", "admin@b.com", models.RoleAdmin)

	w := doRequest(t, router, "POST", "/api/v1/vehicles", handlers.CreateVehicleInput{
		VehicleName:        "Corolla",
		RegistrationNumber: "DHK-1234",
		DailyRentPrice:     100,
	}, tokenFor(t, admin))
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "car", data["type"])                      // Type defaults to car
	assert.Equal(t, "available", data["availability_status"]) // Availability defaults
	assert.Equal(t, float64(100), data["daily_rent_price"])   // Numeric, not string
}

func TestCreateVehicleAuthorization(t *testing.T) {
	router, db := setupTest(t)
	customer := createUser(t, db, "Cust", "cust@b.com", models.RoleCustomer)

	input := handlers.CreateVehicleInput{
		VehicleName:        "Corolla",
		RegistrationNumber: "DHK-1234",
		DailyRentPrice:     100,
	}

	w := doRequest(t, router, "POST", "/api/v1/vehicles", input, tokenFor(t, customer))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, router, "POST", "/api/v1/vehicles", input, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateVehicleValidation(t *testing.T) {
	router, db := setupTest(t)
	admin := createUser(t, db, "Admin", "admin@b.com", models.RoleAdmin)
	adminToken := tokenFor(t, admin)

	// Missing required fields
	w := doRequest(t, router, "POST", "/api/v1/vehicles",
		handlers.CreateVehicleInput{VehicleName: "Corolla"}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Negative price
	w = doRequest(t, router, "POST", "/api/v1/vehicles", handlers.CreateVehicleInput{
		VehicleName: "Corolla", RegistrationNumber: "DHK-1", DailyRentPrice: -5,
	}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown type
	w = doRequest(t, router, "POST", "/api/v1/vehicles", handlers.CreateVehicleInput{
		VehicleName: "Corolla", RegistrationNumber: "DHK-1", DailyRentPrice: 100, Type: "boat",
	}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown availability status
	w = doRequest(t, router, "POST", "/api/v1/vehicles", handlers.CreateVehicleInput{
		VehicleName: "Corolla", RegistrationNumber: "DHK-1", DailyRentPrice: 100, AvailabilityStatus: "lost",
	}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateVehicleDuplicateRegistration(t *testing.T) {
	router, db := setupTest(t)
	admin := createUser(t, db, "Admin", "admin@b.com", models.RoleAdmin)
	createVehicle(t, db, "Corolla", "DHK-1234", 100)

	w := doRequest(t, router, "POST", "/api/v1/vehicles", handlers.CreateVehicleInput{
		VehicleName:        "Civic",
		RegistrationNumber: "DHK-1234",
		DailyRentPrice:     120,
	}, tokenFor(t, admin))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListAndGetVehiclesArePublic(t *testing.T) {
	router, db := setupTest(t)
	vehicle := createVehicle(t, db, "Corolla", "DHK-1234", 100)

	w := doRequest(t, router, "GET", "/api/v1/vehicles", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["data"].([]interface{}), 1)

	w = doRequest(t, router, "GET", fmt.Sprintf("/api/v1/vehicles/%d", vehicle.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, "GET", "/api/v1/vehicles/9999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateVehicleMerge(t *testing.T) {
	router, db := setupTest(t)
	admin := createUser(t, db, "Admin", "admin@b.com", models.RoleAdmin)
	vehicle := createVehicle(t, db, "Corolla", "DHK-1234", 100)
	adminToken := tokenFor(t, admin)

	// Partial update keeps the other fields
	w := doRequest(t, router, "PUT", fmt.Sprintf("/api/v1/vehicles/%d", vehicle.ID),
		map[string]interface{}{"daily_rent_price": 150}, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(150), data["daily_rent_price"])
	assert.Equal(t, "Corolla", data["vehicle_name"])
	assert.Equal(t, "DHK-1234", data["registration_number"])

	// Merged record is re-validated
	w = doRequest(t, router, "PUT", fmt.Sprintf("/api/v1/vehicles/%d", vehicle.ID),
		map[string]interface{}{"daily_rent_price": 0}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Registration uniqueness excludes self: re-sending the same number is fine
	w = doRequest(t, router, "PUT", fmt.Sprintf("/api/v1/vehicles/%d", vehicle.ID),
		map[string]interface{}{"registration_number": "DHK-1234"}, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	// But colliding with another vehicle is a conflict
	createVehicle(t, db, "Civic", "DHK-9999", 120)
	w = doRequest(t, router, "PUT", fmt.Sprintf("/api/v1/vehicles/%d", vehicle.ID),
		map[string]interface{}{"registration_number": "DHK-9999"}, adminToken)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteVehicleCascadesBookings(t *testing.T) {
	router, db := setupTest(t)
	admin := createUser(t, db, "Admin", "admin@b.com", models.RoleAdmin)
	customer := createUser(t, db, "Cust", "cust@b.com", models.RoleCustomer)
	vehicle := createVehicle(t, db, "Corolla", "DHK-1234", 100)

	booking := models.Booking{
		CustomerID: customer.ID,
		VehicleID:  vehicle.ID,
		RentStart:  models.NewDate(2024, 1, 1),
		RentEnd:    models.NewDate(2024, 1, 3),
		TotalPrice: 300,
		Status:     models.BookingActive,
	}
	require.NoError(t, db.Create(&booking).Error)

	w := doRequest(t, router, "DELETE", fmt.Sprintf("/api/v1/vehicles/%d", vehicle.ID), nil, tokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Where("vehicle_id = ?", vehicle.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count, "bookings must cascade with the vehicle")

	w = doRequest(t, router, "DELETE", fmt.Sprintf("/api/v1/vehicles/%d", vehicle.ID), nil, tokenFor(t, admin))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
