// Package combatsnapshot stores in-progress encounters so combat survives a
// reload or a server restart. A missing snapshot means no combat is running.
package combatsnapshot

import (
	"context"
	"time"

	"github.com/KirkDiggler/battlemap-api/internal/combat"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=combatsnapshotmock github.com/KirkDiggler/battlemap-api/internal/repositories/combat_snapshot Repository

// DefaultTTL bounds how long an abandoned encounter is kept.
const DefaultTTL = 7 * 24 * time.Hour

// LoadInput contains parameters for loading a snapshot
type LoadInput struct {
	CampaignID string
}

// LoadOutput holds the saved snapshot, nil when none exists.
type LoadOutput struct {
	Snapshot *combat.Snapshot
}

// SaveInput contains parameters for saving a snapshot
type SaveInput struct {
	CampaignID string
	Snapshot   *combat.Snapshot
}

// SaveOutput contains the stored snapshot stamped with SavedAt
type SaveOutput struct {
	Snapshot *combat.Snapshot
}

// ClearInput contains parameters for clearing a snapshot
type ClearInput struct {
	CampaignID string
}

// ClearOutput reports whether a snapshot existed
type ClearOutput struct {
	Cleared bool
}

// Repository is the combat snapshot store, keyed by campaign.
type Repository interface {
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}
