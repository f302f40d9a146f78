package backup

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/central-university-dev/guild-backup/internal/common/metrics"
	"github.com/central-university-dev/guild-backup/internal/config"
	domainerrors "github.com/central-university-dev/guild-backup/internal/domain/errors"
	"github.com/central-university-dev/guild-backup/internal/domain/models"
)

// BackupRepository хранит историю завершённых запусков резервного
// копирования. Ошибки хранения не влияют на исход запуска.
type BackupRepository interface {
	Save(ctx context.Context, record *models.BackupRecord) error

	FindByGuildID(ctx context.Context, guildID string) ([]*models.BackupRecord, error)

	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	Count(ctx context.Context) (int64, error)
}

// BackupService — верхний уровень рабочего процесса: разрешение сообщества,
// сбор приглашений, доставка и запись в историю. Любая неперехваченная ошибка
// поглощается на этой границе.
type BackupService struct {
	client    DiscordClient
	collector *Collector
	notifier  *Notifier
	repo      BackupRepository
	guard     RunGuard
	cfg       *config.Config
	logger    *slog.Logger
}

func NewBackupService(
	client DiscordClient,
	collector *Collector,
	notifier *Notifier,
	repo BackupRepository,
	guard RunGuard,
	cfg *config.Config,
	logger *slog.Logger,
) *BackupService {
	return &BackupService{
		client:    client,
		collector: collector,
		notifier:  notifier,
		repo:      repo,
		guard:     guard,
		cfg:       cfg,
		logger:    logger,
	}
}

// HandleGuildLeave — автоматический путь: вызывается при выходе из
// сообщества. Выполняется только при включённой настройке автокопирования.
// Ошибки наружу не распространяются.
func (s *BackupService) HandleGuildLeave(ctx context.Context, guildID string) {
	if !s.cfg.AutoBackupOnLeave {
		s.logger.Debug("Автоматическое резервное копирование отключено",
			"guildID", guildID,
		)

		return
	}

	_ = s.runBackup(ctx, guildID, models.TriggerAuto)
}

// BackupNow — ручной путь: всегда выполняется, исход возвращается
// вызывающему для показа пользователю.
func (s *BackupService) BackupNow(ctx context.Context, guildID string) *models.BackupResult {
	return s.runBackup(ctx, guildID, models.TriggerManual)
}

func (s *BackupService) History(ctx context.Context, guildID string) ([]*models.BackupRecord, error) {
	return s.repo.FindByGuildID(ctx, guildID)
}

//nolint:funlen // Последовательность шагов рабочего процесса.
func (s *BackupService) runBackup(ctx context.Context, guildID string, trigger models.TriggerKind) (result *models.BackupResult) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Паника при резервном копировании",
				"guildID", guildID,
				"panic", r,
			)

			result = &models.BackupResult{Status: models.BackupStatusFailed}
		}

		metrics.RecordBackup(string(trigger), string(result.Status), time.Since(start))
	}()

	s.logger.Info("Запуск резервного копирования приглашений",
		"guildID", guildID,
		"trigger", trigger,
	)

	acquired, err := s.guard.TryAcquire(ctx, guildID)
	if err != nil {
		// Защита от параллельных запусков недоступна: продолжаем без неё.
		acquired = true
	}

	if !acquired {
		s.logger.Warn("Резервное копирование уже выполняется",
			"guildID", guildID,
		)

		return &models.BackupResult{Status: models.BackupStatusAlreadyRunning}
	}

	defer s.guard.Release(ctx, guildID)

	guild, err := s.client.GetGuild(ctx, guildID)
	if err != nil {
		var notFoundErr *domainerrors.ErrGuildNotFound
		if errors.As(err, &notFoundErr) {
			s.logger.Warn("Сообщество не найдено, резервное копирование пропущено",
				"guildID", guildID,
			)

			return &models.BackupResult{Status: models.BackupStatusGuildNotFound}
		}

		s.logger.Error("Ошибка при получении сообщества",
			"guildID", guildID,
			"error", err,
		)

		return &models.BackupResult{Status: models.BackupStatusFailed}
	}

	set := s.collector.Collect(ctx, guild)

	if set.Len() == 0 {
		s.logger.Info("Приглашения не найдены",
			"guildID", guildID,
		)

		return &models.BackupResult{Status: models.BackupStatusNothingFound}
	}

	status := models.BackupStatusSuccess
	delivered := true

	if err := s.notifier.Notify(ctx, guild, set); err != nil {
		// Ошибка доставки уже залогирована нотификатором.
		status = models.BackupStatusFailed
		delivered = false
	}

	s.saveRecord(ctx, guild, trigger, set, delivered)

	s.logger.Info("Резервное копирование завершено",
		"guildID", guildID,
		"invites", set.Len(),
		"status", status,
	)

	return &models.BackupResult{Status: status, InviteCount: set.Len()}
}

func (s *BackupService) saveRecord(
	ctx context.Context,
	guild *models.Guild,
	trigger models.TriggerKind,
	set *models.InviteSet,
	delivered bool,
) {
	if s.repo == nil {
		return
	}

	record := &models.BackupRecord{
		GuildID:     guild.ID,
		GuildName:   guild.Name,
		Trigger:     trigger,
		InviteCodes: set.Codes(),
		Delivered:   delivered,
	}

	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error("Ошибка при сохранении записи истории резервных копий",
			"guildID", guild.ID,
			"error", err,
		)
	}
}
