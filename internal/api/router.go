package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ceylontrails/travel-booking-backend/internal/auth"
	"github.com/ceylontrails/travel-booking-backend/internal/booking"
	bookingHttp "github.com/ceylontrails/travel-booking-backend/internal/booking/http"
	"github.com/ceylontrails/travel-booking-backend/internal/media"
	mediaHttp "github.com/ceylontrails/travel-booking-backend/internal/media/http"
	"github.com/ceylontrails/travel-booking-backend/internal/tour"
	tourHttp "github.com/ceylontrails/travel-booking-backend/internal/tour/http"
	"github.com/ceylontrails/travel-booking-backend/internal/travelpackage"
	packageHttp "github.com/ceylontrails/travel-booking-backend/internal/travelpackage/http"
	"github.com/ceylontrails/travel-booking-backend/internal/user"
	userHttp "github.com/ceylontrails/travel-booking-backend/internal/user/http"
	"github.com/ceylontrails/travel-booking-backend/internal/vehicle"
	vehicleHttp "github.com/ceylontrails/travel-booking-backend/internal/vehicle/http"
)

// Config carries everything the router needs to assemble middleware and
// register module routes.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService    user.Service
	TourService    tour.Service
	VehicleService vehicle.Service
	PackageService travelpackage.Service
	BookingService booking.Service
	MediaService   media.Service

	JWTManager *auth.JWTManager
}

// NewRouter assembles the gin engine: global middleware, CORS, and the /v1
// route tree for every module.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	optionalAuthMiddleware := auth.OptionalAuth(cfg.JWTManager)
	adminMiddleware := RequireAdmin(cfg.UserService)
	ownerMiddleware := RequireApprovedOwner(cfg.UserService)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	tourHandler := tourHttp.NewHandler(cfg.TourService)
	vehicleHandler := vehicleHttp.NewHandler(cfg.VehicleService)
	packageHandler := packageHttp.NewHandler(cfg.PackageService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	mediaHandler := mediaHttp.NewHandler(cfg.MediaService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		tourHttp.RegisterRoutes(v1, tourHandler, authMiddleware, adminMiddleware)
		vehicleHttp.RegisterRoutes(v1, vehicleHandler, authMiddleware, optionalAuthMiddleware, ownerMiddleware)
		packageHttp.RegisterRoutes(v1, packageHandler, authMiddleware, optionalAuthMiddleware, ownerMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, ownerMiddleware, adminMiddleware)
		mediaHttp.RegisterRoutes(v1, mediaHandler, authMiddleware, ownerMiddleware)
	}

	return r
}
