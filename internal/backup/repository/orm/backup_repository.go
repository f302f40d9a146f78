package orm

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/central-university-dev/guild-backup/internal/database"
	customerrors "github.com/central-university-dev/guild-backup/internal/domain/errors"
	"github.com/central-university-dev/guild-backup/internal/domain/models"
	"github.com/central-university-dev/guild-backup/pkg/txs"
)

type BackupRepository struct {
	db        *database.PostgresDB
	sq        sq.StatementBuilderType
	txManager *txs.TxManager
}

func NewBackupRepository(db *database.PostgresDB, txManager *txs.TxManager) *BackupRepository {
	return &BackupRepository{
		db:        db,
		sq:        sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		txManager: txManager,
	}
}

func (r *BackupRepository) Save(ctx context.Context, record *models.BackupRecord) error {
	return r.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		querier := txs.GetQuerier(ctx, r.db.Pool)

		if record.CreatedAt.IsZero() {
			record.CreatedAt = time.Now()
		}

		if record.InviteCodes == nil {
			record.InviteCodes = []string{}
		}

		insertQuery := r.sq.Insert("backups").
			Columns("guild_id", "guild_name", "trigger_kind", "invite_codes", "delivered", "created_at").
			Values(record.GuildID, record.GuildName, string(record.Trigger),
				record.InviteCodes, record.Delivered, record.CreatedAt).
			Suffix("RETURNING id")

		query, args, err := insertQuery.ToSql()
		if err != nil {
			return &customerrors.ErrBuildSQLQuery{Operation: "сохранение записи резервной копии", Cause: err}
		}

		if err := querier.QueryRow(ctx, query, args...).Scan(&record.ID); err != nil {
			return &customerrors.ErrSQLExecution{Operation: "сохранение записи резервной копии", Cause: err}
		}

		return nil
	})
}

func (r *BackupRepository) FindByGuildID(ctx context.Context, guildID string) ([]*models.BackupRecord, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	selectQuery := r.sq.Select("id", "guild_id", "guild_name", "trigger_kind", "invite_codes", "delivered", "created_at").
		From("backups").
		Where(sq.Eq{"guild_id": guildID}).
		OrderBy("created_at DESC")

	query, args, err := selectQuery.ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "поиск записей резервных копий", Cause: err}
	}

	rows, err := querier.Query(ctx, query, args...)
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

	deleteQuery := r.sq.Delete("backups").Where(sq.Lt{"created_at": cutoff})

	query, args, err := deleteQuery.ToSql()
	if err != nil {
		return 0, &customerrors.ErrBuildSQLQuery{Operation: "удаление устаревших записей", Cause: err}
	}

	tag, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, &customerrors.ErrSQLExecution{Operation: "удаление устаревших записей", Cause: err}
	}

	return tag.RowsAffected(), nil
}

func (r *BackupRepository) Count(ctx context.Context) (int64, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	countQuery := r.sq.Select("COUNT(*)").From("backups")

	query, args, err := countQuery.ToSql()
	if err != nil {
		return 0, &customerrors.ErrBuildSQLQuery{Operation: "подсчёт записей резервных копий", Cause: err}
	}

	var count int64

	if err := querier.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, &customerrors.ErrSQLExecution{Operation: "подсчёт записей резервных копий", Cause: err}
	}

	return count, nil
}
