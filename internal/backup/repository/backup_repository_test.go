package repository_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/central-university-dev/guild-backup/internal/backup/repository"
	"github.com/central-university-dev/guild-backup/internal/config"
	"github.com/central-university-dev/guild-backup/internal/database"
	"github.com/central-university-dev/guild-backup/internal/domain/models"
	"github.com/central-university-dev/guild-backup/pkg/txs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDatabase(ctx context.Context, logger *slog.Logger) (*database.PostgresDB, func(), error) {
	dbName := "testdb"
	dbUser := "testuser"
	dbPassword := "testpassword"

	container, err := postgres.Run(ctx,
		"postgres:16",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(10*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось запустить контейнер postgres: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось получить хост контейнера: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось получить порт контейнера: %w", err)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", dbUser, dbPassword, host, port.Port(), dbName)

	migrationsPath, _ := filepath.Abs("../../../migrations")
	migrateURL := fmt.Sprintf("file://%s", migrationsPath)

	m, err := migrate.New(migrateURL, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось создать экземпляр migrate: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return nil, nil, fmt.Errorf("не удалось применить миграции: %w", err)
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return nil, nil, fmt.Errorf("ошибка закрытия источника миграций: %w", sourceErr)
	}

	if dbErr != nil {
		return nil, nil, fmt.Errorf("ошибка закрытия подключения БД миграций: %w", dbErr)
	}

	testCfg := &config.Config{
		DatabaseURL:     dsn,
		DatabaseMaxConn: 5,
	}

	db, err := database.NewPostgresDB(ctx, testCfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось подключиться к тестовой БД: %w", err)
	}

	cleanup := func() {
		db.Close()

		if err := container.Terminate(ctx); err != nil {
			logger.Error("Не удалось остановить контейнер postgres", "error", err)
		}
	}

	return db, cleanup, nil
}

func clearBackups(ctx context.Context, t *testing.T, db *database.PostgresDB) {
	t.Helper()

	_, err := db.Pool.Exec(ctx, "DELETE FROM backups")
	require.NoError(t, err, "Не удалось очистить таблицу backups")

	_, err = db.Pool.Exec(ctx, "ALTER SEQUENCE backups_id_seq RESTART WITH 1")
	require.NoError(t, err)
}

//nolint:funlen // Общий прогон сценариев для обоих типов доступа.
func runTestsForConfig(t *testing.T, accessType config.AccessType) {
	t.Helper()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, cleanup, err := setupTestDatabase(ctx, logger)
	require.NoError(t, err, "Ошибка настройки тестовой базы данных")

	defer cleanup()

	testCfg := &config.Config{
		DatabaseAccessType: accessType,
	}

	txManager := txs.NewTxManager(db.Pool, logger)
	factory := repository.NewFactory(db, txManager, testCfg, logger)

	repo, err := factory.CreateBackupRepository()
	require.NoError(t, err, "Ошибка создания BackupRepository для %s", accessType)

	t.Run("Save and FindByGuildID", func(t *testing.T) {
		clearBackups(ctx, t, db)

		record := &models.BackupRecord{
			GuildID:     "g1",
			GuildName:   "Test Guild",
			Trigger:     models.TriggerManual,
			InviteCodes: []string{"abc123", "xyz789"},
			Delivered:   true,
		}

		require.NoError(t, repo.Save(ctx, record))
		assert.NotZero(t, record.ID)

		records, err := repo.FindByGuildID(ctx, "g1")
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, "g1", records[0].GuildID)
		assert.Equal(t, "Test Guild", records[0].GuildName)
		assert.Equal(t, models.TriggerManual, records[0].Trigger)
		assert.Equal(t, []string{"abc123", "xyz789"}, records[0].InviteCodes)
		assert.True(t, records[0].Delivered)
		assert.False(t, records[0].CreatedAt.IsZero())
	})

	t.Run("FindByGuildID returns newest first", func(t *testing.T) {
		clearBackups(ctx, t, db)

		older := &models.BackupRecord{
			GuildID:   "g1",
			GuildName: "Test Guild",
			Trigger:   models.TriggerAuto,
			CreatedAt: time.Now().Add(-time.Hour),
		}
		newer := &models.BackupRecord{
			GuildID:   "g1",
			GuildName: "Test Guild",
			Trigger:   models.TriggerManual,
			CreatedAt: time.Now(),
		}

		require.NoError(t, repo.Save(ctx, older))
		require.NoError(t, repo.Save(ctx, newer))

		records, err := repo.FindByGuildID(ctx, "g1")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, models.TriggerManual, records[0].Trigger)
		assert.Equal(t, models.TriggerAuto, records[1].Trigger)
	})

	t.Run("FindByGuildID unknown guild", func(t *testing.T) {
		clearBackups(ctx, t, db)

		records, err := repo.FindByGuildID(ctx, "unknown")
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("DeleteOlderThan and Count", func(t *testing.T) {
		clearBackups(ctx, t, db)

		old := &models.BackupRecord{
			GuildID:   "g1",
			GuildName: "Test Guild",
			Trigger:   models.TriggerAuto,
			CreatedAt: time.Now().AddDate(0, 0, -100),
		}
		fresh := &models.BackupRecord{
			GuildID:   "g1",
			GuildName: "Test Guild",
			Trigger:   models.TriggerAuto,
			CreatedAt: time.Now(),
		}

		require.NoError(t, repo.Save(ctx, old))
		require.NoError(t, repo.Save(ctx, fresh))

		deleted, err := repo.DeleteOlderThan(ctx, time.Now().AddDate(0, 0, -90))
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Empty invite codes roundtrip", func(t *testing.T) {
		clearBackups(ctx, t, db)

		record := &models.BackupRecord{
			GuildID:   "g1",
			GuildName: "Test Guild",
			Trigger:   models.TriggerAuto,
		}

		require.NoError(t, repo.Save(ctx, record))

		records, err := repo.FindByGuildID(ctx, "g1")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Empty(t, records[0].InviteCodes)
	})
}

func TestBackupRepository_SQL(t *testing.T) {
	if testing.Short() {
		t.Skip("Пропускаем интеграционный тест в режиме short")
	}

	runTestsForConfig(t, config.SQLAccess)
}

func TestBackupRepository_Squirrel(t *testing.T) {
	if testing.Short() {
		t.Skip("Пропускаем интеграционный тест в режиме short")
	}

	runTestsForConfig(t, config.SquirrelAccess)
}
