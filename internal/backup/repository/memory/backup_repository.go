package memory

import (
	"context"
	"sync"
	"time"

	"github.com/central-university-dev/guild-backup/internal/domain/models"
)

// BackupRepository — хранилище истории в памяти, используется когда база
// данных не настроена, и в тестах.
type BackupRepository struct {
	records map[int64]*models.BackupRecord
	nextID  int64
	mu      sync.RWMutex
}

func NewBackupRepository() *BackupRepository {
	return &BackupRepository{
		records: make(map[int64]*models.BackupRecord),
		nextID:  1,
	}
}

func (r *BackupRepository) Save(_ context.Context, record *models.BackupRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	record.ID = r.nextID
	r.nextID++

	stored := *record
	r.records[stored.ID] = &stored

	return nil
}

func (r *BackupRepository) FindByGuildID(_ context.Context, guildID string) ([]*models.BackupRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.BackupRecord

	for _, record := range r.records {
		if record.GuildID == guildID {
			copied := *record
			result = append(result, &copied)
		}
	}

	return result, nil
}

func (r *BackupRepository) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64

	for id, record := range r.records {
		if record.CreatedAt.Before(cutoff) {
			delete(r.records, id)
			deleted++
		}
	}

	return deleted, nil
}

func (r *BackupRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.records)), nil
}
