package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/placement-go-api/internal/config"
	"github.com/noah-isme/placement-go-api/internal/database"
	"github.com/noah-isme/placement-go-api/internal/handler"
	"github.com/noah-isme/placement-go-api/internal/middleware"
	"github.com/noah-isme/placement-go-api/internal/models"
	"github.com/noah-isme/placement-go-api/internal/repository"
	"github.com/noah-isme/placement-go-api/internal/router"
	"github.com/noah-isme/placement-go-api/internal/service"
	cloud "github.com/noah-isme/placement-go-api/pkg/cloudinary"
	"github.com/noah-isme/placement-go-api/pkg/mailer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Drive{},
		&models.DriveAssignment{},
		&models.DriveShare{},
		&models.Application{},
		&models.Notification{},
		&models.Resource{},
		&models.Project{},
		&models.Experience{},
		&models.Accomplishment{},
		&models.Certificate{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, running without cache and cross-node fan-out")
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	natsConn, err := database.ConnectNATS(cfg.NatsURL, cfg.AppName)
	if err != nil {
		logger.Warn().Err(err).Msg("nats unavailable, running without broker fan-out")
		natsConn = nil
	}
	if natsConn != nil {
		defer natsConn.Close()
	}

	var photoStore service.PhotoStore
	if cfg.CloudinaryCloudName != "" {
		uploader, err := cloud.New(cloud.Config{
			CloudName: cfg.CloudinaryCloudName,
			APIKey:    cfg.CloudinaryAPIKey,
			APISecret: cfg.CloudinaryAPISecret,
			Folder:    cfg.CloudinaryUploadFolder,
		}, logger)
		if err != nil {
			log.Fatalf("failed to create cloudinary client: %v", err)
		}
		photoStore = uploader
	}

	mail := mailer.New(mailer.Config{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		Username:  cfg.SMTPUsername,
		Password:  cfg.SMTPPassword,
		FromName:  cfg.SMTPFromName,
		FromEmail: cfg.SMTPFromEmail,
	}, logger)

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	driveRepo := repository.NewDriveRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	portfolioRepo := repository.NewPortfolioRepository(db)

	notificationService := service.NewNotificationService(notificationRepo, redisClient, "placement", natsConn, cfg.UnreadCountCacheTTL, logger)
	authService := service.NewAuthService(userRepo, profileRepo, mail, cfg.JWTSecret, cfg.TokenTTL, logger)
	coordinatorService := service.NewCoordinatorService(userRepo, mail, logger)
	userService := service.NewUserService(userRepo, logger)
	driveService := service.NewDriveService(driveRepo, userRepo, profileRepo, notificationService, mail, logger)
	applicationService := service.NewApplicationService(applicationRepo, driveRepo, notificationService, logger)
	exportService := service.NewExportService(userRepo, profileRepo, driveRepo, applicationRepo, redisClient, logger)
	profileService := service.NewProfileService(profileRepo, photoStore, exportService, logger)
	resourceService := service.NewResourceService(resourceRepo, logger)
	portfolioService := service.NewPortfolioService(portfolioRepo, logger)
	resumeService := service.NewResumeService(userRepo, profileRepo, portfolioRepo, logger)

	ctx, stopConsumers := context.WithCancel(context.Background())
	defer stopConsumers()
	notificationService.Start(ctx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger, AllowOrigins: cfg.CORSAllowOrigins})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:         handler.NewAuthHandler(authService, logger),
		ProfileHandler:      handler.NewProfileHandler(profileService, logger),
		DriveHandler:        handler.NewDriveHandler(driveService, logger),
		ApplicationHandler:  handler.NewApplicationHandler(applicationService, logger),
		NotificationHandler: handler.NewNotificationHandler(notificationService, logger, cfg.SSEKeepAlive),
		CoordinatorHandler:  handler.NewCoordinatorHandler(coordinatorService, logger),
		StudentHandler:      handler.NewStudentHandler(userService, logger),
		ResourceHandler:     handler.NewResourceHandler(resourceService, logger),
		PortfolioHandler:    handler.NewPortfolioHandler(portfolioService, logger),
		ResumeHandler:       handler.NewResumeHandler(resumeService, logger),
		ExportHandler:       handler.NewExportHandler(exportService, logger),
		JWTMiddleware:       middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
