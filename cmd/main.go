package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	userapp "github.com/vibecommerce/user-service/application/user"
	"github.com/vibecommerce/user-service/cmd/config"
	_ "github.com/vibecommerce/user-service/docs"
	userRepo "github.com/vibecommerce/user-service/repository/user"
	"github.com/vibecommerce/user-service/thirdparty/rabbitmq"
	"github.com/vibecommerce/user-service/transport"
	"github.com/vibecommerce/user-service/utils/logger"
	"go.uber.org/zap"
)

// @title USER SERVICE API
// @version 1.0
// @description Users CRUD API Documentation
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Event publisher is optional; the service runs without a broker
	var publisher userapp.EventPublisher
	if cfg.RabbitMQ.Enabled {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer func() {
			_ = pub.Close()
		}()
		publisher = pub
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, publisher)

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
