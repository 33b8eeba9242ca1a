package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/willowworks/batrack/internal/config"
	"github.com/willowworks/batrack/internal/db"
	"github.com/willowworks/batrack/internal/repository"
	"github.com/willowworks/batrack/internal/service"
	"github.com/willowworks/batrack/internal/storage"
)

type App struct {
	Cfg     *config.Config
	DB      *sqlx.DB
	Storage storage.Storage

	UserRepository repository.UserRepository

	AuthService    *service.AuthService
	SessionService *service.SessionService
	UploadService  *service.UploadService
	BatService     *service.BatService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	batRepository := repository.NewBatRepository(database)
	sessionRepository := repository.NewSessionRepository(database)

	// Storage
	imageStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Services
	authService := service.NewAuthService(userRepository)
	sessionService := service.NewSessionService(
		sessionRepository,
		cfg.SessionSecret,
		cfg.IsProduction(),
		cfg.SessionExpiry,
	)
	uploadService := service.NewUploadService(imageStorage)
	batService := service.NewBatService(batRepository, uploadService)

	return &App{
		Cfg:     cfg,
		DB:      database,
		Storage: imageStorage,

		UserRepository: userRepository,

		AuthService:    authService,
		SessionService: sessionService,
		UploadService:  uploadService,
		BatService:     batService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
