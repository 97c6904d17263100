package app

import (
	"net/http"

	"pet-tracker-go/internal/config"
	"pet-tracker-go/internal/db"
	entriesdomain "pet-tracker-go/internal/domain/entries"
	petsdomain "pet-tracker-go/internal/domain/pets"
	trackersdomain "pet-tracker-go/internal/domain/trackers"
	uploadsdomain "pet-tracker-go/internal/domain/uploads"
	entriesrepo "pet-tracker-go/internal/repository/postgres/entries"
	petsrepo "pet-tracker-go/internal/repository/postgres/pets"
	trackersrepo "pet-tracker-go/internal/repository/postgres/trackers"
	"pet-tracker-go/internal/transport/httpserver"
	"pet-tracker-go/internal/transport/httpserver/handler"
	"pet-tracker-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg := config.Load()

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	petsService := petsdomain.NewService(petsrepo.NewPostgres(dbConn))
	trackersService := trackersdomain.NewService(trackersrepo.NewPostgres(dbConn))
	entriesService := entriesdomain.NewService(entriesrepo.NewPostgres(dbConn))
	uploadsService := uploadsdomain.NewService(
		uploadsdomain.NewDiskStore(cfg.Upload.Dir),
		cfg.Upload.PublicPath,
		cfg.Upload.MaxSize,
	)

	handlers := handler.New(petsService, trackersService, entriesService, uploadsService, log)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers)

	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
