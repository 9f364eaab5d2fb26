package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arthasetu/loan-service/internal/application/usecase"
	"github.com/arthasetu/loan-service/internal/domain/service"
	"github.com/arthasetu/loan-service/internal/infrastructure/config"
	infrakafka "github.com/arthasetu/loan-service/internal/infrastructure/kafka"
	pgRepo "github.com/arthasetu/loan-service/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/arthasetu/loan-service/internal/presentation/grpc"
	"github.com/arthasetu/loan-service/internal/presentation/rest"
	pkgkafka "github.com/arthasetu/loan-service/pkg/kafka"
	"github.com/arthasetu/loan-service/pkg/observability"
	pkgpostgres "github.com/arthasetu/loan-service/pkg/postgres"
)

func main() {
	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	logger.Info("starting loan service",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
	)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Database -----------------------------------------------------------
	dbCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(ctx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	if err := pkgpostgres.RunMigrations(dbCfg.DSN(), cfg.MigrationsDir); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// --- Metrics ------------------------------------------------------------
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to init metrics", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := meterProvider.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics shutdown error", "error", err)
		}
	}()

	// --- Infrastructure adapters -------------------------------------------
	loanRepo := pgRepo.NewLoanRepo(pool)
	paymentRepo := pgRepo.NewPaymentRepo(pool)

	producer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	defer producer.Close()
	publisher := infrakafka.NewEventPublisher(producer, logger)

	ledger := service.NewPaymentLedger()
	locks := usecase.NewLoanLocks()

	// --- Use cases ----------------------------------------------------------
	createLoanUC := usecase.NewCreateLoanUseCase(loanRepo, publisher)
	getLoanUC := usecase.NewGetLoanUseCase(loanRepo)
	scheduleUC := usecase.NewGenerateScheduleUseCase(loanRepo)
	simulateUC := usecase.NewSimulatePrepaymentUseCase(loanRepo)
	calcForeclosureUC := usecase.NewCalculateForeclosureUseCase(loanRepo)
	procForeclosureUC := usecase.NewProcessForeclosureUseCase(loanRepo, publisher, locks)
	recordPaymentUC := usecase.NewRecordPaymentUseCase(loanRepo, publisher, locks)
	historyUC := usecase.NewPaymentHistoryUseCase(loanRepo, paymentRepo, ledger)
	detectMissedUC := usecase.NewDetectMissedPaymentsUseCase(loanRepo, paymentRepo, ledger, publisher, locks)
	analyzeUC := usecase.NewAnalyzeLoanUseCase(loanRepo, paymentRepo)

	// --- gRPC server --------------------------------------------------------
	handler := grpcPresentation.NewLoanHandler(
		createLoanUC, getLoanUC, scheduleUC, simulateUC,
		calcForeclosureUC, procForeclosureUC, recordPaymentUC,
		historyUC, detectMissedUC, analyzeUC,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger, cfg.TLS.CertFile, cfg.TLS.KeyFile, cfg.TLS.CAFile)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			logger.Error("gRPC server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- HTTP health and metrics server -------------------------------------
	mux := http.NewServeMux()
	rest.NewHealthHandler(pool, logger).RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful shutdown --------------------------------------------------
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig.String())

	grpcServer.GracefulStop()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("loan service stopped")
}
