// helpers_test.go - Shared fixtures for the handler tests
// Each test gets a fresh SQLite database and a router wired like the
// real server.

package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"vehicle-rental-backend/config"
	"vehicle-rental-backend/database"
	"vehicle-rental-backend/handlers"
	"vehicle-rental-backend/middleware"
	"vehicle-rental-backend/models"
	"vehicle-rental-backend/services"
	"vehicle-rental-backend/token"
)

const testSecret = "testsecret"

// setupTest creates a fresh test DB and a fully wired router.
func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		DBPath:    filepath.Join(t.TempDir(), "test.db"),
		JWTSecret: testSecret,
		TokenTTL:  time.Hour,
	}
	db, err := database.Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	authHandler := handlers.NewAuthHandler(services.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL))
	userHandler := handlers.NewUserHandler(services.NewUserService(db))
	vehicleHandler := handlers.NewVehicleHandler(services.NewVehicleService(db))
	bookingHandler := handlers.NewBookingHandler(services.NewBookingService(db))

	r := gin.New()
	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)

	users := v1.Group("/users")
	users.GET("", middleware.Auth(db, cfg.JWTSecret, models.RoleAdmin), userHandler.List)
	users.GET("/:userId", middleware.Auth(db, cfg.JWTSecret), userHandler.Get)
	users.PUT("/:userId", middleware.Auth(db, cfg.JWTSecret), userHandler.Update)
	users.DELETE("/:userId", middleware.Auth(db, cfg.JWTSecret, models.RoleAdmin), userHandler.Delete)

	vehicles := v1.Group("/vehicles")
	vehicles.GET("", vehicleHandler.List)
	vehicles.GET("/:vehicleId", vehicleHandler.Get)
	vehicles.POST("", middleware.Auth(db, cfg.JWTSecret, models.RoleAdmin), vehicleHandler.Create)
	vehicles.PUT("/:vehicleId", middleware.Auth(db, cfg.JWTSecret, models.RoleAdmin), vehicleHandler.Update)
	vehicles.DELETE("/:vehicleId", middleware.Auth(db, cfg.JWTSecret, models.RoleAdmin), vehicleHandler.Delete)

	bookings := v1.Group("/bookings")
	bookings.Use(middleware.Auth(db, cfg.JWTSecret, models.RoleAdmin, models.RoleCustomer))
	bookings.GET("", bookingHandler.List)
	bookings.POST("", bookingHandler.Create)
	bookings.PUT("/:bookingId", bookingHandler.UpdateStatus)

	return r, db
}

// createUser inserts a user directly and returns it. The raw password
// is always "secret123".
func createUser(t *testing.T, db *gorm.DB, name, email, role string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.User{Name: name, Email: email, Password: string(hash), Phone: "0123456789", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// createVehicle inserts a vehicle directly and returns it.
func createVehicle(t *testing.T, db *gorm.DB, name, reg string, price float64) models.Vehicle {
	t.Helper()
	vehicle := models.Vehicle{
		VehicleName:        name,
		Type:               models.TypeCar,
		RegistrationNumber: reg,
		DailyRentPrice:     price,
		AvailabilityStatus: models.StatusAvailable,
	}
	require.NoError(t, db.Create(&vehicle).Error)
	return vehicle
}

// tokenFor signs a bearer token for the given user.
func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	signed, err := token.Generate(testSecret, &user, time.Hour)
	require.NoError(t, err)
	return signed
}

// doRequest serves one JSON request and returns the recorder.
func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeBody parses the response envelope.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
