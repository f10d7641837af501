package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vitos/cointrackr/internal/infrastructure/coingecko"
	"github.com/vitos/cointrackr/internal/infrastructure/logger"
	"github.com/vitos/cointrackr/internal/usecase"
	"github.com/vitos/cointrackr/internal/web"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Config struct {
	API struct {
		BaseURL  string `yaml:"base_url"`
		KeyEnv   string `yaml:"key_env"`
		Currency string `yaml:"currency"`
	} `yaml:"api"`
	Refresh struct {
		IntervalMinutes int `yaml:"interval_minutes"`
	} `yaml:"refresh"`
	Server struct {
		Port     int `yaml:"port"`
		PageSize int `yaml:"page_size"`
	} `yaml:"server"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

func loadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func main() {
	// 1. Load Config (.env holds the API key)
	_ = godotenv.Load()

	cfg, err := loadConfig("config/config.yaml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Init Logger
	log, err := logger.NewLogger(cfg.Logging.Level)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// 3. Init API Client
	apiKey := os.Getenv(cfg.API.KeyEnv)
	client := coingecko.NewClient(cfg.API.BaseURL, apiKey, cfg.API.Currency)

	// 4. Init Store and Refresh Service
	store := usecase.NewSnapshotStore()

	interval := time.Duration(cfg.Refresh.IntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	refresh := usecase.NewRefreshService(client, store, interval, log)

	ctx := context.Background()
	refresh.Start(ctx)

	// 5. Init Web Server
	if err := web.InitTemplates("internal/web/templates"); err != nil {
		log.Fatal("Failed to initialize templates", zap.Error(err))
	}
	port := cfg.Server.Port
	if port == 0 {
		port = 8080 // Default
	}

	server := web.NewServer(port, store, refresh, cfg.Server.PageSize, log)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// 6. Wait for Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := refresh.Stop(shutdownCtx); err != nil {
		log.Error("Refresh loop did not stop cleanly", zap.Error(err))
	}
	server.Shutdown(shutdownCtx)
}
