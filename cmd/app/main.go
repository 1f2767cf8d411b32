package main

import (
	"NovedadesAPI/internal/adapter"
	"NovedadesAPI/internal/bootstrap"
	"NovedadesAPI/internal/config"
	"fmt"
	"log/slog"
	"net/http"
	"os"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.LoadAppConfig()

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

	httpClient := config.NewHTTPClient()
	validate := config.NewValidator()
	chiMux := config.NewChi(cfg)

	bootstrap.Init(cfg, client, validate, s3Client, httpClient, redisAdapter, chiMux)

	addr := fmt.Sprintf(":%s", cfg.AppPort)
	slog.Info("Starting NovedadesAPI", "port", cfg.AppPort)

	if err := http.ListenAndServe(addr, chiMux); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
