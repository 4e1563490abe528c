package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ujval10/EV-Recharge/internal/container"
	"github.com/ujval10/EV-Recharge/internal/handlers"
	"github.com/ujval10/EV-Recharge/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(200, gin.H{
				"status":  "OK",
				"service": "ev-recharge-api",
			})
		})

		// public routes
		v1.POST("/signup", handlers.Signup(c.UserService))
		v1.POST("/login", handlers.Login(c.UserService))
		v1.POST("/logout", handlers.Logout())

		v1.GET("/stations", handlers.ListStations(c.StationService))
		v1.GET("/stations/:id", handlers.GetStation(c.StationService))
		v1.GET("/map/config", handlers.MapConfig(c.Config.GoogleMapsAPIKey))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(c.UserService, c.Logger))
	{
		protected.GET("/profile", handlers.GetProfile(c.UserService))

		protected.POST("/bookings", handlers.CreateBooking(c.BookingService))
		protected.GET("/bookings", handlers.ListBookings(c.BookingService))

		protected.POST("/advisor/suggest", handlers.GetAiSuggestion(c.AdvisorService, c.Logger))
	}

	admin := protected.Group("/admin")
	admin.Use(middleware.AdminOnly(c.UserService, c.Logger))
	{
		admin.GET("/users", handlers.ListUsers(c.UserService))

		admin.GET("/stations", handlers.ListStations(c.StationService))
		admin.POST("/stations", handlers.CreateStation(c.StationService))
		admin.POST("/stations/seed", handlers.SeedStations(c.StationService))
		admin.DELETE("/stations/:id", handlers.DeleteStation(c.StationService))
		admin.POST("/stations/:id/slots/toggle", handlers.ToggleSlot(c.StationService))
		admin.GET("/stations/:id/watch", handlers.WatchStation(c.StationService, c.Logger))
	}

	return r
}
