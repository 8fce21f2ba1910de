package combatsnapshot

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/battlemap-api/internal/errors"
	"github.com/KirkDiggler/battlemap-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/battlemap-api/internal/redis"
)

const (
	// Key pattern: combat_snapshot:{campaign_id}
	snapshotKeyPrefix = "combat_snapshot:"

	errCampaignIDEmpty = "campaign ID cannot be empty"
	errSnapshotNil     = "snapshot cannot be nil"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL defaults to DefaultTTL
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.TTL < 0 {
		vb.InvalidField("TTL", "cannot be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a Redis backed snapshot store
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.CampaignID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	data, err := r.client.Get(ctx, buildKey(input.CampaignID)).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return &LoadOutput{}, nil
		}
		return nil, errors.Wrapf(err, "failed to load combat snapshot for campaign %s", input.CampaignID)
	}

	var snapshot combatSnapshotData
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal combat snapshot for campaign %s", input.CampaignID)
	}

	return &LoadOutput{Snapshot: snapshot.toSnapshot()}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.CampaignID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument(errSnapshotNil)
	}

	stored := *input.Snapshot
	stored.SavedAt = r.clock.Now()

	data, err := json.Marshal(fromSnapshot(&stored))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal combat snapshot")
	}

	if err := r.client.Set(ctx, buildKey(input.CampaignID), data, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store combat snapshot for campaign %s", input.CampaignID)
	}

	return &SaveOutput{Snapshot: &stored}, nil
}

func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.CampaignID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	deleted, err := r.client.Del(ctx, buildKey(input.CampaignID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to clear combat snapshot for campaign %s", input.CampaignID)
	}

	return &ClearOutput{Cleared: deleted > 0}, nil
}

func buildKey(campaignID string) string {
	return snapshotKeyPrefix + campaignID
}
