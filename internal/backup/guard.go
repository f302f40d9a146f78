package backup

import (
	"context"
	"sync"
)

// RunGuard не допускает одновременных запусков резервного копирования для
// одного сообщества (например, ручного поверх уже идущего автоматического).
type RunGuard interface {
	TryAcquire(ctx context.Context, guildID string) (bool, error)

	Release(ctx context.Context, guildID string)
}

type MemoryRunGuard struct {
	running map[string]struct{}
	mu      sync.Mutex
}

func NewMemoryRunGuard() *MemoryRunGuard {
	return &MemoryRunGuard{
		running: make(map[string]struct{}),
	}
}

func (g *MemoryRunGuard) TryAcquire(_ context.Context, guildID string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.running[guildID]; exists {
		return false, nil
	}

	g.running[guildID] = struct{}{}

	return true, nil
}

func (g *MemoryRunGuard) Release(_ context.Context, guildID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.running, guildID)
}
