package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/Practicum-HomeworkBot/internal/api/handlers/health"
	"github.com/m04kA/Practicum-HomeworkBot/internal/api/middleware"
	"github.com/m04kA/Practicum-HomeworkBot/internal/config"
	"github.com/m04kA/Practicum-HomeworkBot/internal/integrations/practicum"
	"github.com/m04kA/Practicum-HomeworkBot/internal/service/statuses"
	"github.com/m04kA/Practicum-HomeworkBot/internal/service/telegram"
	"github.com/m04kA/Practicum-HomeworkBot/internal/worker"
	"github.com/m04kA/Practicum-HomeworkBot/pkg/logger"
	"github.com/m04kA/Practicum-HomeworkBot/pkg/metrics"
)

func main() {
	// .env опционален: в контейнере переменные приходят из окружения
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting Practicum-HomeworkBot...")

	// КРИТИЧНО: проверяем секреты ДО любых сетевых вызовов.
	// При отсутствии хотя бы одного процесс завершается внутри проверки.
	config.MustCheckTokens(cfg, log)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем Telegram Bot API
	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		log.Fatal("Failed to initialize Telegram Bot API: %v", err)
	}
	log.Info("Telegram Bot API initialized (@%s)", bot.Self.UserName)

	// Инициализируем Telegram Service
	telegramSvc := telegram.NewService(bot)
	log.Info("Telegram service initialized")

	// Инициализируем клиент API Практикума
	practicumClient := practicum.NewClient(
		cfg.Practicum.Endpoint,
		cfg.Practicum.Token,
		time.Duration(cfg.Practicum.Timeout)*time.Second,
	)
	log.Info("Practicum client initialized (endpoint=%s)", cfg.Practicum.Endpoint)

	// Инициализируем сервис статусов
	statusesSvc := statuses.NewService()

	// Запускаем опросчик статусов
	poller := worker.NewPoller(
		practicumClient,
		statusesSvc,
		telegramSvc,
		log,
		metricsCollector,
		cfg.Telegram.ChatID,
		time.Duration(cfg.Worker.PollInterval)*time.Second,
	)
	if err := poller.Start(); err != nil {
		log.Fatal("Failed to start poller: %v", err)
	}
	log.Info("Homework status poller started (interval=%ds)", cfg.Worker.PollInterval)

	// Настраиваем роутер health/metrics
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	healthHandler := health.NewHandler()
	r.HandleFunc("/health", healthHandler.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Запускаем HTTP сервер
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")

	// Останавливаем опросчик ПЕРЕД сервером
	poller.Stop()

	// Graceful shutdown HTTP сервера
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Stopped gracefully")
}
