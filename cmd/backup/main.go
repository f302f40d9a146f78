package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"log/slog"

	"github.com/central-university-dev/guild-backup/internal/api"
	"github.com/central-university-dev/guild-backup/internal/api/handlers"
	"github.com/central-university-dev/guild-backup/internal/backup"
	"github.com/central-university-dev/guild-backup/internal/backup/repository"
	"github.com/central-university-dev/guild-backup/internal/common/metrics"
	"github.com/central-university-dev/guild-backup/internal/common/middleware"
	"github.com/central-university-dev/guild-backup/internal/config"
	"github.com/central-university-dev/guild-backup/internal/database"
	"github.com/central-university-dev/guild-backup/internal/discord"
	"github.com/central-university-dev/guild-backup/internal/events/kafka"
	"github.com/central-university-dev/guild-backup/internal/scheduler"
	"github.com/central-university-dev/guild-backup/pkg"
	"github.com/central-university-dev/guild-backup/pkg/txs"
)

func gracefulShutdown(
	server *http.Server,
	metricsServer *metrics.MetricsServer,
	retentionScheduler *scheduler.RetentionScheduler,
	kafkaConsumer *kafka.Consumer,
	redisGuard *backup.RedisRunGuard,
	stopCh <-chan struct{},
	appLogger *slog.Logger,
) {
	<-stopCh
	appLogger.Info("Получен сигнал завершения")

	retentionScheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Ошибка при остановке HTTP сервера",
			"error", err,
		)
	}

	if err := metricsServer.Stop(ctx); err != nil {
		appLogger.Error("Ошибка при остановке сервера метрик",
			"error", err,
		)
	}

	if kafkaConsumer != nil {
		if err := kafkaConsumer.Close(); err != nil {
			appLogger.Error("Ошибка при закрытии Kafka консьюмера",
				"error", err,
			)
		}
	}

	if redisGuard != nil {
		if err := redisGuard.Close(); err != nil {
			appLogger.Error("Ошибка при закрытии соединения с Redis",
				"error", err,
			)
		}
	}

	appLogger.Info("Сервер успешно остановлен")
}

func startHTTPServer(server *http.Server, port int, stopCh chan<- struct{}, appLogger *slog.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		appLogger.Info("Получен системный сигнал",
			"signal", sig.String(),
		)
		close(stopCh)
	}()

	go func() {
		appLogger.Info("Запуск HTTP сервера сервиса резервного копирования",
			"port", port,
		)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Ошибка при запуске HTTP сервера",
				"error", err,
			)
			close(stopCh)
		}
	}()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка запуска сервиса: %v\n", err)
		os.Exit(1)
	}
}

//nolint:funlen // Длина функции обусловлена необходимостью последовательной инициализации всех компонентов.
func run() error {
	appLogger := pkg.NewLogger(os.Stdout)

	cfg := config.LoadConfig()

	ctx := context.Background()

	db, err := database.NewPostgresDB(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при подключении к базе данных",
			"error", err,
		)

		return fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	defer db.Close()

	if err := db.ApplyMigrations(); err != nil {
		appLogger.Error("Ошибка при применении миграций",
			"error", err,
		)

		return err
	}

	txManager := txs.NewTxManager(db.Pool, appLogger)

	repoFactory := repository.NewFactory(db, txManager, cfg, appLogger)

	backupRepo, err := repoFactory.CreateBackupRepository()
	if err != nil {
		appLogger.Error("Ошибка при создании репозитория резервных копий",
			"error", err,
		)

		return err
	}

	discordClient := discord.NewClient(cfg, appLogger)

	collector := backup.NewCollector(
		discordClient,
		backup.NewInviteExtractor(),
		cfg.MessageScanLimit,
		appLogger,
	)

	notifier := backup.NewNotifier(discordClient, cfg, appLogger)

	var guard backup.RunGuard

	var redisGuard *backup.RedisRunGuard

	if cfg.UseRedisRunGuard {
		redisGuard, err = backup.NewRedisRunGuard(cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB, cfg.RunGuardTTL, appLogger)
		if err != nil {
			appLogger.Error("Ошибка при подключении к Redis",
				"error", err,
			)

			appLogger.Warn("Продолжаем с локальной защитой от повторного запуска")

			guard = backup.NewMemoryRunGuard()
		} else {
			appLogger.Info("Распределённая защита от повторного запуска успешно инициализирована")

			guard = redisGuard
		}
	} else {
		guard = backup.NewMemoryRunGuard()
	}

	backupService := backup.NewBackupService(
		discordClient,
		collector,
		notifier,
		backupRepo,
		guard,
		cfg,
		appLogger,
	)

	var kafkaConsumer *kafka.Consumer

	if strings.EqualFold(cfg.EventTransport, "KAFKA") {
		brokers := strings.Split(cfg.KafkaBrokers, ",")
		kafkaConsumer = kafka.NewConsumer(
			brokers,
			"guild-backup-group",
			cfg.TopicGuildLeave,
			cfg.TopicDeadLetterQueue,
			backupService,
			appLogger,
		)

		kafkaConsumer.Start(ctx)
		appLogger.Info("Kafka консьюмер успешно запущен")
	}

	retentionScheduler := scheduler.NewRetentionScheduler(
		backupRepo,
		cfg.RetentionCheckInterval,
		cfg.RetentionDays,
		appLogger,
	)
	retentionScheduler.Start()

	metricsServer := metrics.NewMetricsServer(cfg.MetricsPort, appLogger)

	go func() {
		if err := metricsServer.Start(ctx); err != nil {
			appLogger.Error("Ошибка при запуске сервера метрик",
				"error", err,
			)
		}
	}()

	backupHandler := handlers.NewBackupHandler(backupService, appLogger)

	router := api.NewRouter(backupHandler)

	rateLimiter := middleware.NewRateLimiterMiddleware(
		ctx,
		cfg.RateLimitRequests,
		cfg.RateLimitWindow,
		appLogger,
	)

	metricsMiddleware := middleware.NewMetricsMiddleware()

	serverWithMiddleware := rateLimiter.Middleware(metricsMiddleware.Middleware(router))

	httpServer := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           serverWithMiddleware,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopCh := make(chan struct{})

	startHTTPServer(httpServer, cfg.ServerPort, stopCh, appLogger)

	gracefulShutdown(httpServer, metricsServer, retentionScheduler, kafkaConsumer, redisGuard, stopCh, appLogger)

	return nil
}
