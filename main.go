// main.go
package main

import (
	"context"
	"log"

	"garatge-booking/cmd"
	"garatge-booking/internal/data/repository"
	"garatge-booking/internal/usecase"
	"garatge-booking/internal/wire"
	"garatge-booking/pkg/database"
	"garatge-booking/pkg/gcal"
	"garatge-booking/pkg/mailer"
	"garatge-booking/pkg/upload"
	"garatge-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// External clients: calendar, email, uploads, optional cache
	cal, err := gcal.NewGoogleCalendar(context.Background(), gcal.Config{
		ClientID:     config.Calendar.ClientID,
		ClientSecret: config.Calendar.ClientSecret,
		RefreshToken: config.Calendar.RefreshToken,
		CalendarID:   config.Calendar.CalendarID,
		TimeZone:     config.Calendar.TimeZone,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to init calendar client", zap.Error(err))
	}

	uploader, err := upload.NewCloudinaryUploader(
		config.Cloudinary.CloudName,
		config.Cloudinary.APIKey,
		config.Cloudinary.APISecret,
		config.Cloudinary.Folder,
		logger,
	)
	if err != nil {
		logger.Fatal("Failed to init upload client", zap.Error(err))
	}

	clients := usecase.Clients{
		Calendar: cal,
		Mailer:   mailer.NewResendMailer(config.Email.APIKey, config.Email.From, logger),
		Uploader: uploader,
	}

	if config.Redis.Enabled {
		clients.Cache = redis.NewClient(&redis.Options{
			Addr:     config.Redis.Addr,
			Password: config.Redis.Password,
			DB:       config.Redis.DB,
		})
		logger.Info("Availability cache enabled", zap.String("addr", config.Redis.Addr))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, clients, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
