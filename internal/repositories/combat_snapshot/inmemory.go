package combatsnapshot

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/KirkDiggler/battlemap-api/internal/errors"
	"github.com/KirkDiggler/battlemap-api/internal/pkg/clock"
)

type inMemoryEntry struct {
	data      []byte
	expiresAt time.Time
}

type inMemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]inMemoryEntry
	clock   clock.Clock
	ttl     time.Duration
}

// NewInMemoryRepository creates a process local snapshot store. Entries are
// serialized so callers never share combatant pointers with the store.
func NewInMemoryRepository(clk clock.Clock, ttl time.Duration) Repository {
	if clk == nil {
		clk = clock.New()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &inMemoryRepository{
		entries: make(map[string]inMemoryEntry),
		clock:   clk,
		ttl:     ttl,
	}
}

var _ Repository = (*inMemoryRepository)(nil)

func (r *inMemoryRepository) Load(_ context.Context, input LoadInput) (*LoadOutput, error) {
	if input.CampaignID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	r.mu.RLock()
	entry, ok := r.entries[input.CampaignID]
	r.mu.RUnlock()

	if !ok || r.clock.Now().After(entry.expiresAt) {
		return &LoadOutput{}, nil
	}

	var data combatSnapshotData
	if err := json.Unmarshal(entry.data, &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal combat snapshot")
	}
	return &LoadOutput{Snapshot: data.toSnapshot()}, nil
}

func (r *inMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.CampaignID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument(errSnapshotNil)
	}

	now := r.clock.Now()
	stored := *input.Snapshot
	stored.SavedAt = now

	data, err := json.Marshal(fromSnapshot(&stored))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal combat snapshot")
	}

	r.mu.Lock()
	r.entries[input.CampaignID] = inMemoryEntry{data: data, expiresAt: now.Add(r.ttl)}
	r.mu.Unlock()

	return &SaveOutput{Snapshot: &stored}, nil
}

func (r *inMemoryRepository) Clear(_ context.Context, input ClearInput) (*ClearOutput, error) {
	if input.CampaignID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[input.CampaignID]
	delete(r.entries, input.CampaignID)
	return &ClearOutput{Cleared: ok && !r.clock.Now().After(entry.expiresAt)}, nil
}
