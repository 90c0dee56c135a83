// main.go - Entry point for the vehicle rental backend server

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/sirupsen/logrus"   // Structured logging
	"gorm.io/gorm"                 // GORM ORM

	"vehicle-rental-backend/config"
	"vehicle-rental-backend/database"
	"vehicle-rental-backend/handlers"
	"vehicle-rental-backend/middleware"
	"vehicle-rental-backend/models"
	"vehicle-rental-backend/services"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	// STEP 1: Load configuration and open the database
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.WithError(err).Fatal("DB connection error")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Error("DB close error")
		}
	}()

	// STEP 2: Build the router
	router := newRouter(db, cfg, log)

	// STEP 3: Start the auto-return sweeper and the web server
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweeper := services.NewSweeper(services.NewBookingService(db), log, cfg.SweepInterval)
	go sweeper.Run(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	// STEP 4: Wait for a shutdown signal, then drain
	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown error")
	}
}

// newRouter wires middleware, handlers and routes.
func newRouter(db *gorm.DB, cfg *config.Config, log *logrus.Logger) *gin.Engine {
	authSvc := services.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL)
	userSvc := services.NewUserService(db)
	vehicleSvc := services.NewVehicleService(db)
	bookingSvc := services.NewBookingService(db)

	authHandler := handlers.NewAuthHandler(authSvc)
	userHandler := handlers.NewUserHandler(userSvc)
	vehicleHandler := handlers.NewVehicleHandler(vehicleSvc)
	bookingHandler := handlers.NewBookingHandler(bookingSvc)

	admin := models.RoleAdmin
	customer := models.RoleCustomer

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(log), gin.Recovery())

	v1 := r.Group("/api/v1")

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
	}

	// Users (admin only, except update/get which allow self)
	users := v1.Group("/users")
	{
		users.GET("", middleware.Auth(db, cfg.JWTSecret, admin), userHandler.List)
		users.GET("/:userId", middleware.Auth(db, cfg.JWTSecret), userHandler.Get)
		users.PUT("/:userId", middleware.Auth(db, cfg.JWTSecret), userHandler.Update)
		users.DELETE("/:userId", middleware.Auth(db, cfg.JWTSecret, admin), userHandler.Delete)
	}

	// Vehicles (reads public, writes admin only)
	vehicles := v1.Group("/vehicles")
	{
		vehicles.GET("", vehicleHandler.List)
		vehicles.GET("/:vehicleId", vehicleHandler.Get)
		vehicles.POST("", middleware.Auth(db, cfg.JWTSecret, admin), vehicleHandler.Create)
		vehicles.PUT("/:vehicleId", middleware.Auth(db, cfg.JWTSecret, admin), vehicleHandler.Update)
		vehicles.DELETE("/:vehicleId", middleware.Auth(db, cfg.JWTSecret, admin), vehicleHandler.Delete)
	}

	// Bookings (any authenticated role; service scopes the data)
	bookings := v1.Group("/bookings")
	bookings.Use(middleware.Auth(db, cfg.JWTSecret, admin, customer))
	{
		bookings.GET("", bookingHandler.List)
		bookings.POST("", bookingHandler.Create)
		bookings.PUT("/:bookingId", bookingHandler.UpdateStatus)
	}

	return r
}
