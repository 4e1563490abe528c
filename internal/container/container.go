package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/supabase-community/supabase-go"
	"github.com/ujval10/EV-Recharge/internal/config"
	"github.com/ujval10/EV-Recharge/internal/models"
	"github.com/ujval10/EV-Recharge/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger *slog.Logger
	Config *config.Config
	// Database clients
	SupabaseClient *supabase.Client
	MongoDBClient  *mongo.Client
	UserService    *services.UserService
	StationService *services.StationService
	BookingService *services.BookingService
	AdvisorService *services.AdvisorService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	supabaseClient *supabase.Client,
	mongoDBClient *mongo.Client,
	suggestionModel services.SuggestionModel,
	cld *cloudinary.Cloudinary,
) *Container {
	// Initialize repositories
	supa := models.SupabaseNewRepo(supabaseClient)
	mongoRepo := models.MongodbNewRepo(mongoDBClient)

	userService := services.NewUserService(supa, mongoRepo)
	stationService := services.NewStationService(mongoRepo, cld)
	bookingService := services.NewBookingService(mongoRepo, mongoRepo)
	advisorService := services.NewAdvisorService(suggestionModel)

	return &Container{
		Logger:         logger,
		Config:         cfg,
		SupabaseClient: supabaseClient,
		MongoDBClient:  mongoDBClient,
		UserService:    userService,
		StationService: stationService,
		BookingService: bookingService,
		AdvisorService: advisorService,
	}
}
