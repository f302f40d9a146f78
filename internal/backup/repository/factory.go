package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/central-university-dev/guild-backup/internal/config"
	"github.com/central-university-dev/guild-backup/internal/database"
	"github.com/central-university-dev/guild-backup/internal/domain/errors"
	"github.com/central-university-dev/guild-backup/internal/domain/models"
	"github.com/central-university-dev/guild-backup/internal/backup/repository/orm"
	sqlrepo "github.com/central-university-dev/guild-backup/internal/backup/repository/sql"
	"github.com/central-university-dev/guild-backup/pkg/txs"
)

type BackupRepository interface {
	Save(ctx context.Context, record *models.BackupRecord) error

	FindByGuildID(ctx context.Context, guildID string) ([]*models.BackupRecord, error)

	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	Count(ctx context.Context) (int64, error)
}

type Factory struct {
	db        *database.PostgresDB
	txManager *txs.TxManager
	config    *config.Config
	logger    *slog.Logger
}

func NewFactory(db *database.PostgresDB, txManager *txs.TxManager, config *config.Config, logger *slog.Logger) *Factory {
	return &Factory{
		db:        db,
		txManager: txManager,
		config:    config,
		logger:    logger,
	}
}

func (f *Factory) CreateBackupRepository() (BackupRepository, error) {
	switch f.config.DatabaseAccessType {
	case config.SquirrelAccess:
		f.logger.Info("Создание ORM (Squirrel) репозитория резервных копий")
		return orm.NewBackupRepository(f.db, f.txManager), nil
	case config.SQLAccess:
		f.logger.Info("Создание SQL репозитория резервных копий")
		return sqlrepo.NewBackupRepository(f.db), nil
	default:
		return nil, &errors.ErrUnknownDBAccessType{AccessType: string(f.config.DatabaseAccessType)}
	}
}
