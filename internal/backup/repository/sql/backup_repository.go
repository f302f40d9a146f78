package sql

import (
	"context"
	"fmt"
	"time"

	"github.com/central-university-dev/guild-backup/internal/database"
	customerrors "github.com/central-university-dev/guild-backup/internal/domain/errors"
	"github.com/central-university-dev/guild-backup/internal/domain/models"
	"github.com/central-university-dev/guild-backup/pkg/txs"
)

type BackupRepository struct {
	db *database.PostgresDB
}

func NewBackupRepository(db *database.PostgresDB) *BackupRepository {
	return &BackupRepository{db: db}
}

func (r *BackupRepository) Save(ctx context.Context, record *models.BackupRecord) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	if record.InviteCodes == nil {
		record.InviteCodes = []string{}
	}

	err := querier.QueryRow(ctx,
		`INSERT INTO backups (guild_id, guild_name, trigger_kind, invite_codes, delivered, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		record.GuildID, record.GuildName, string(record.Trigger), record.InviteCodes, record.Delivered, record.CreatedAt,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении записи резервной копии: %w", err)
	}

	return nil
}

func (r *BackupRepository) FindByGuildID(ctx context.Context, guildID string) ([]*models.BackupRecord, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	rows, err := querier.Query(ctx,
		`SELECT id, guild_id, guild_name, trigger_kind, invite_codes, delivered, created_at
		 FROM backups
		 WHERE guild_id = $1
		 ORDER BY created_at DESC`,
		guildID,
	)
	if err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "поиск записей резервных копий", Cause: err}
	}
	defer rows.Close()

	var records []*models.BackupRecord

	for rows.Next() {
		var (
			record  models.BackupRecord
			trigger string
		)

		if err := rows.Scan(&record.ID, &record.GuildID, &record.GuildName, &trigger,
			&record.InviteCodes, &record.Delivered, &record.CreatedAt); err != nil {
			return nil, &customerrors.ErrSQLScan{Entity: "записи резервной копии", Cause: err}
		}

		record.Trigger = models.TriggerKind(trigger)
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "поиск записей резервных копий", Cause: err}
	}

	return records, nil
}

func (r *BackupRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	tag, err := querier.Exec(ctx, "DELETE FROM backups WHERE created_at < $1", cutoff)
	if err != nil {
		return 0, &customerrors.ErrSQLExecution{Operation: "удаление устаревших записей", Cause: err}
	}

	return tag.RowsAffected(), nil
}

func (r *BackupRepository) Count(ctx context.Context) (int64, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	var count int64

	if err := querier.QueryRow(ctx, "SELECT COUNT(*) FROM backups").Scan(&count); err != nil {
		return 0, &customerrors.ErrSQLExecution{Operation: "подсчёт записей резервных копий", Cause: err}
	}

	return count, nil
}
