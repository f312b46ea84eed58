package main

import (
	"go.uber.org/zap"

	"actioninbox/internal/api"
	"actioninbox/internal/config"
	"actioninbox/internal/db"
	"actioninbox/internal/inbox"
	"actioninbox/internal/mq"
	"actioninbox/internal/repository"
	"actioninbox/internal/service"
	"actioninbox/internal/util"
)

func main() {
	// Load config
	cfg := config.Load()

	logger := util.NewLogger()
	defer logger.Sync()

	// Init DB
	dbConn, err := db.NewConnection(cfg.DB, logger)
	if err != nil {
		logger.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	// Init RabbitMQ Publisher
	publisher, err := mq.NewPublisher(cfg.MQ.URL)
	if err != nil {
		logger.Fatal("failed to init publisher", zap.Error(err))
	}
	defer publisher.Close()

	// Init Repositories
	userRepo := repository.NewUserRepository(dbConn)
	messageRepo := repository.NewMessageRepository(dbConn)

	// Init Services
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret)
	ingestService := service.NewIngestService(messageRepo, publisher)
	agent := inbox.NewAgent(logger)

	// Init Handlers
	authHandler := api.NewAuthHandler(authService)
	analyzeHandler := api.NewAnalyzeHandler(agent, logger)
	ingestHandler := api.NewIngestHandler(ingestService)
	queryHandler := api.NewMessageQueryHandler(messageRepo)

	// Router
	router := api.NewRouter(authHandler, analyzeHandler, ingestHandler, queryHandler, publisher, cfg.JWT.Secret)

	// Start API server
	if err := router.Run(cfg.Server.Port); err != nil {
		logger.Fatal("server start failed", zap.Error(err))
	}
}
