package main

import (
	"time"

	"go.uber.org/zap"

	"actioninbox/internal/config"
	"actioninbox/internal/db"
	"actioninbox/internal/inbox"
	"actioninbox/internal/mq"
	"actioninbox/internal/mqhandler"
	redisclient "actioninbox/internal/redis"
	"actioninbox/internal/repository"
	"actioninbox/internal/util"
)

func main() {
	// Load config
	cfg := config.Load()

	logger := util.NewLogger()
	defer logger.Sync()

	logger.Info("Starting analysis worker...")

	// Init Redis
	rdb := redisclient.NewRedisClient(cfg.Redis)
	defer rdb.Close()

	deduper := util.NewDeduper(rdb, time.Hour, logger)

	// Init DB
	dbConn, err := db.NewConnection(cfg.DB, logger)
	if err != nil {
		logger.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	logger.Info("Database connection established")

	// Init Repositories
	messageRepo := repository.NewMessageRepository(dbConn)
	analysisRepo := repository.NewAnalysisRepository(dbConn)
	auditRepo := repository.NewAuditRepository(dbConn)

	// Dead letter publisher for poison messages
	dlqPublisher, err := mq.NewPublisher(cfg.MQ.URL)
	if err != nil {
		logger.Fatal("failed to init DLQ publisher", zap.Error(err))
	}
	defer dlqPublisher.Close()
	if err := dlqPublisher.EnsureDLQ(mq.RoutingKeyMessageReceived); err != nil {
		logger.Fatal("failed to declare DLQ", zap.Error(err))
	}

	// Init engine + handlers
	agent := inbox.NewAgent(logger)
	analyzeHandler := mqhandler.NewMessageReceivedAnalyzeHandler(messageRepo, analysisRepo, agent, deduper, dlqPublisher, logger)
	auditHandler := mqhandler.NewMessageReceivedAuditHandler(auditRepo, logger)

	// (1) Consumer for analysis
	logger.Info("Initializing analyze consumer", zap.String("queue", "message.received.analyze.q"))
	consumerAnalyze, err := mq.NewConsumer(cfg.MQ.URL, "message.received.analyze.q", mq.RoutingKeyMessageReceived, logger)
	if err != nil {
		logger.Fatal("failed to init analyze consumer", zap.Error(err))
	}
	consumerAnalyze.SetHandler(analyzeHandler.HandleMessageReceived)
	go func() {
		logger.Info("Starting analyze consumer")
		if err := consumerAnalyze.StartConsuming(); err != nil {
			logger.Fatal("analyze consumer failed", zap.Error(err))
		}
	}()
	defer consumerAnalyze.Close()

	// (2) Consumer for the audit log
	logger.Info("Initializing audit consumer", zap.String("queue", "message.received.audit.q"))
	consumerAudit, err := mq.NewConsumer(cfg.MQ.URL, "message.received.audit.q", mq.RoutingKeyMessageReceived, logger)
	if err != nil {
		logger.Fatal("failed to init audit consumer", zap.Error(err))
	}
	consumerAudit.SetHandler(auditHandler.HandleMessageReceived)
	go func() {
		logger.Info("Starting audit consumer")
		if err := consumerAudit.StartConsuming(); err != nil {
			logger.Fatal("audit consumer failed", zap.Error(err))
		}
	}()
	defer consumerAudit.Close()

	logger.Info("All consumers started, worker is ready to process messages")

	// Keep worker running
	select {}
}
