package main

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	userapp "github.com/muhammadheryan/user-directory/application/user"
	"github.com/muhammadheryan/user-directory/cmd/config"
	userRepo "github.com/muhammadheryan/user-directory/repository/user"
	"github.com/muhammadheryan/user-directory/transport"
	"github.com/muhammadheryan/user-directory/utils/logger"
	validatorx "github.com/muhammadheryan/user-directory/utils/validator"
	"go.uber.org/zap"
)

// @title USER DIRECTORY API
// @version 1.0
// @description User directory CRUD API Documentation
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	if cfg.Database.URL == "" {
		logger.Fatal("DATABASE_URL is missing")
	}

	// Connect to database
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	validatorx.Init()

	// Initialize repositories and application layers
	UserRepo := userRepo.NewUserRepository(db)
	UserApp := userapp.NewUserApp(UserRepo)

	httpTransport := transport.NewTransport(UserApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
