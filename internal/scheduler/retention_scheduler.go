package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/central-university-dev/guild-backup/internal/common/metrics"
	"github.com/go-co-op/gocron"
)

type RetentionRepository interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// RetentionScheduler периодически удаляет записи резервных копий,
// вышедшие за пределы срока хранения.
type RetentionScheduler struct {
	scheduler     *gocron.Scheduler
	repo          RetentionRepository
	logger        *slog.Logger
	interval      time.Duration
	retentionDays int
}

func NewRetentionScheduler(
	repo RetentionRepository,
	interval time.Duration,
	retentionDays int,
	logger *slog.Logger,
) *RetentionScheduler {
	scheduler := gocron.NewScheduler(time.UTC)

	return &RetentionScheduler{
		scheduler:     scheduler,
		repo:          repo,
		logger:        logger,
		interval:      interval,
		retentionDays: retentionDays,
	}
}

func (s *RetentionScheduler) Start() {
	s.logger.Info("Запуск планировщика очистки истории",
		"interval", s.interval.String(),
		"retentionDays", s.retentionDays,
	)

	_, err := s.scheduler.Every(s.interval).Do(func() {
		ctx := context.Background()
		s.Sweep(ctx)
	})

	if err != nil {
		s.logger.Error("Ошибка при настройке планировщика",
			"error", err,
		)

		return
	}

	s.scheduler.StartAsync()
}

// Sweep выполняет один проход очистки и обновляет метрику числа записей.
func (s *RetentionScheduler) Sweep(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)

	deleted, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Error("Ошибка при очистке устаревших записей",
			"error", err,
		)

		return
	}

	if deleted > 0 {
		s.logger.Info("Удалены устаревшие записи резервных копий",
			"deleted", deleted,
			"cutoff", cutoff.Format(time.RFC3339),
		)
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("Ошибка при подсчёте записей резервных копий",
			"error", err,
		)

		return
	}

	metrics.StoredBackups.Set(float64(count))
}

func (s *RetentionScheduler) Stop() {
	s.logger.Info("Остановка планировщика очистки истории")
	s.scheduler.Stop()
}
