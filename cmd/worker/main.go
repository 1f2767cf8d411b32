package main

import (
	"NovedadesAPI/internal/adapter"
	"NovedadesAPI/internal/config"
	"NovedadesAPI/internal/document"
	"NovedadesAPI/internal/queue"
	"NovedadesAPI/internal/repository"
	"NovedadesAPI/internal/service"
	"NovedadesAPI/internal/worker"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.LoadAppConfig()

	// The API owns migrations; the worker only consumes the schema.
	cfg.DBMigrate = false

	client := config.InitEnt(cfg)
	defer func() {
		if err := client.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
		}
	}()

	s3Client := config.NewS3Client(cfg)
	if s3Client == nil {
		slog.Error("Failed to initialize S3 client")
		os.Exit(1)
	}

	redisAdapter, err := adapter.NewRedisAdapter(cfg)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}

	storageAdapter := adapter.NewStorageAdapter(cfg, s3Client)
	renderQueue := queue.NewRenderQueue(redisAdapter, cfg)
	reportRepository := repository.NewReportRepository(client)

	renderService := service.NewRenderService(
		reportRepository,
		storageAdapter,
		document.NewPDFRenderer(),
		document.NewDocxRenderer(),
	)

	w := worker.New(cfg, renderQueue, renderService, reportRepository)
	w.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down render worker...")
	w.Stop()
}
