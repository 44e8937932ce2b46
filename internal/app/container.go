package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ceylontrails/travel-booking-backend/internal/api"
	"github.com/ceylontrails/travel-booking-backend/internal/auth"
	"github.com/ceylontrails/travel-booking-backend/internal/booking"
	"github.com/ceylontrails/travel-booking-backend/internal/media"
	"github.com/ceylontrails/travel-booking-backend/internal/pkg/storage"
	"github.com/ceylontrails/travel-booking-backend/internal/tour"
	"github.com/ceylontrails/travel-booking-backend/internal/travelpackage"
	"github.com/ceylontrails/travel-booking-backend/internal/user"
	"github.com/ceylontrails/travel-booking-backend/internal/vehicle"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction             bool
	ProdOrigins              string
	DBPool                   *pgxpool.Pool
	JWTSecret                string
	JWTTTL                   time.Duration
	BcryptCost               int
	UploadDir                string
	DefaultCommissionPercent float64
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	fileStore, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("init media storage failed: %w", err)
	}

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Catalog modules
	tourRepo := tour.NewPgxRepository(cfg.DBPool)
	tourService := tour.NewService(tourRepo)

	vehicleRepo := vehicle.NewPgxRepository(cfg.DBPool)
	vehicleService := vehicle.NewService(vehicleRepo)

	packageRepo := travelpackage.NewPgxRepository(cfg.DBPool)
	packageService := travelpackage.NewService(packageRepo)

	// Booking module
	commissionEngine := booking.NewCommissionEngine(cfg.DefaultCommissionPercent)
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, tourService, vehicleService, packageService, commissionEngine)

	// Media module
	mediaRepo := media.NewPgxRepository(cfg.DBPool)
	mediaService := media.NewService(mediaRepo, fileStore)

	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		UserService:    userService,
		TourService:    tourService,
		VehicleService: vehicleService,
		PackageService: packageService,
		BookingService: bookingService,
		MediaService:   mediaService,
		JWTManager:     jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
