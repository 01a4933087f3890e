package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Dan9191/budget-alerts/internal/config"
	"github.com/Dan9191/budget-alerts/internal/handler"
	"github.com/Dan9191/budget-alerts/internal/integrations/ynab"
	"github.com/Dan9191/budget-alerts/internal/service"
	"github.com/Dan9191/budget-alerts/internal/utils/email"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load local .env if present
	if err := godotenv.Load(); err == nil {
		logger.Debug("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize layers
	ynabClient := ynab.NewClient(cfg, logger)
	mailer := email.NewSender(cfg, logger)
	svc := service.NewService(ynabClient, mailer, cfg.Thresholds, logger)
	h := handler.NewHandler(svc)

	// Setup router
	r := mux.NewRouter()
	r.HandleFunc("/check", h.RunCheck).Methods("POST")
	r.HandleFunc("/health", h.Health).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
