package routes

import (
	"context"
	"net/http"
	"os"
	"strings"

	"ZamCare/internal/analytics"
	"ZamCare/internal/auth"
	"ZamCare/internal/children"
	"ZamCare/internal/config"
	"ZamCare/internal/donations"
	"ZamCare/internal/notifications"
	"ZamCare/internal/sponsors"
	"ZamCare/internal/stories"
	"ZamCare/internal/uploads"
	"ZamCare/internal/volunteering"
	"ZamCare/pkg/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("server",
	fx.Provide(
		config.NewLogger,
		config.NewMongoDBConfig,
		config.NewMongoDBClient,
		config.NewResendConfig,
		config.NewEmailService,
		config.NewCloudinaryConfig,
		config.NewCloudinaryClient,
		middleware.NewEnforcer,
		NewServerConfig,
		NewEchoServer,

		fx.Annotate(auth.NewUserRepository, fx.As(new(auth.Repository))),
		fx.Annotate(children.NewChildRepository, fx.As(new(children.Repository))),
		fx.Annotate(donations.NewDonationRepository, fx.As(new(donations.Repository))),
		fx.Annotate(sponsors.NewSponsorRepository, fx.As(new(sponsors.Repository))),
		fx.Annotate(stories.NewStoryRepository, fx.As(new(stories.Repository))),
		fx.Annotate(volunteering.NewVolunteeringRepository, fx.As(new(volunteering.Repository))),
		fx.Annotate(notifications.NewNotificationRepository, fx.As(new(notifications.Repository))),
		fx.Annotate(analytics.NewAnalyticsRepository, fx.As(new(analytics.Repository))),

		auth.NewUserService,
		children.NewChildService,
		donations.NewDonationService,
		sponsors.NewSponsorService,
		stories.NewStoryService,
		volunteering.NewVolunteeringService,
		notifications.NewNotificationService,
		analytics.NewAnalyticsService,

		newDonationNotifier,
		newVolunteerNotifier,
		newVolunteerMailer,

		auth.NewAuthHandler,
		children.NewChildHandler,
		donations.NewDonationHandler,
		sponsors.NewSponsorHandler,
		stories.NewStoryHandler,
		volunteering.NewVolunteeringHandler,
		notifications.NewNotificationHandler,
		analytics.NewAnalyticsHandler,
		uploads.NewUploadHandler,
	),
	fx.Invoke(RegisterRoutes))

// The notification service fans out to the domain-local Notifier
// interfaces; email acknowledgements ride on the shared Resend client.

func newDonationNotifier(s *notifications.NotificationService) donations.Notifier {
	return s
}

func newVolunteerNotifier(s *notifications.NotificationService) volunteering.Notifier {
	return s
}

func newVolunteerMailer(s *config.EmailService) volunteering.Mailer {
	return s
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

func NewServerConfig() *ServerConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	origins := []string{"*"}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	return &ServerConfig{Port: port, AllowedOrigins: origins}
}

func NewEchoServer(lc fx.Lifecycle, cfg *ServerConfig, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Server starting", zap.String("port", cfg.Port))
			go func() {
				if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
					logger.Fatal("Failed to start the server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down the server")
			return e.Shutdown(ctx)
		},
	})
	return e
}

func RegisterRoutes(
	e *echo.Echo,
	enforcer *casbin.Enforcer,
	logger *zap.Logger,
	authHandler *auth.AuthHandler,
	childHandler *children.ChildHandler,
	donationHandler *donations.DonationHandler,
	sponsorHandler *sponsors.SponsorHandler,
	storyHandler *stories.StoryHandler,
	volunteeringHandler *volunteering.VolunteeringHandler,
	notificationHandler *notifications.NotificationHandler,
	analyticsHandler *analytics.AnalyticsHandler,
	uploadHandler *uploads.UploadHandler,
) {
	api := e.Group("/api")
	guard := middleware.RBAC(enforcer, logger)

	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/profile", authHandler.Profile, middleware.JWT)

	api.GET("/children", childHandler.GetChildren)
	api.GET("/children/:id", childHandler.GetChild)
	api.POST("/children", childHandler.CreateChild, middleware.JWT, guard)
	api.PUT("/children/:id", childHandler.UpdateChild, middleware.JWT, guard)
	api.DELETE("/children/:id", childHandler.DeleteChild, middleware.JWT, guard)
	api.POST("/children/:id/reports", childHandler.AddProgressReport, middleware.JWT, guard)

	api.GET("/donations", donationHandler.GetDonations, middleware.JWT, guard)
	api.POST("/donations", donationHandler.CreateDonation, middleware.JWT)
	api.GET("/donations/stats", donationHandler.GetDonationStats)

	api.GET("/sponsors", sponsorHandler.GetSponsors, middleware.JWT, guard)
	api.POST("/sponsors", sponsorHandler.CreateSponsor, middleware.JWT)

	api.GET("/stories", storyHandler.GetStories)
	api.GET("/stories/:id", storyHandler.GetStory)
	api.POST("/stories", storyHandler.CreateStory, middleware.JWT, guard)
	api.PUT("/stories/:id", storyHandler.UpdateStory, middleware.JWT, guard)
	api.DELETE("/stories/:id", storyHandler.DeleteStory, middleware.JWT, guard)

	api.GET("/tasks", volunteeringHandler.GetTasks)
	api.GET("/tasks/:id", volunteeringHandler.GetTask)
	api.POST("/tasks", volunteeringHandler.CreateTask, middleware.JWT, guard)
	api.PUT("/tasks/:id", volunteeringHandler.UpdateTask, middleware.JWT, guard)
	api.POST("/tasks/:id/assign", volunteeringHandler.AssignVolunteer, middleware.JWT, guard)

	api.GET("/volunteers", volunteeringHandler.GetVolunteers, middleware.JWT, guard)
	api.GET("/volunteers/:id", volunteeringHandler.GetVolunteer, middleware.JWT, guard)
	api.POST("/volunteers", volunteeringHandler.CreateVolunteer, middleware.OptionalJWT)
	api.PUT("/volunteers/:id", volunteeringHandler.UpdateVolunteer, middleware.JWT, guard)
	api.POST("/volunteers/:id/hours", volunteeringHandler.LogHours, middleware.JWT, guard)

	api.GET("/notifications", notificationHandler.GetNotifications, middleware.JWT)
	api.PUT("/notifications/:id", notificationHandler.MarkAsRead, middleware.JWT)

	api.GET("/analytics/dashboard", analyticsHandler.GetDashboard, middleware.JWT, guard)

	api.POST("/upload", uploadHandler.UploadImage, middleware.JWT, guard)
}
