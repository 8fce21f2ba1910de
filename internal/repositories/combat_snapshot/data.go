package combatsnapshot

import (
	"time"

	"github.com/KirkDiggler/battlemap-api/internal/combat"
)

// combatSnapshotData is the stored form. It carries a version so older
// snapshots can be migrated when the combatant shape changes.
type combatSnapshotData struct {
	Version    int                   `json:"version"`
	InCombat   bool                  `json:"is_in_combat"`
	Combatants []*combat.Combatant   `json:"combatants"`
	TurnIndex  int                   `json:"turn_index"`
	Round      int                   `json:"round"`
	RollLog    []combat.RollLogEntry `json:"initiative_roll_log,omitempty"`
	SavedAt    time.Time             `json:"saved_at"`
}

const currentVersion = 1

func fromSnapshot(s *combat.Snapshot) *combatSnapshotData {
	return &combatSnapshotData{
		Version:    currentVersion,
		InCombat:   s.InCombat,
		Combatants: s.Combatants,
		TurnIndex:  s.TurnIndex,
		Round:      s.Round,
		RollLog:    s.InitiativeRollLog,
		SavedAt:    s.SavedAt,
	}
}

func (d *combatSnapshotData) toSnapshot() *combat.Snapshot {
	round := d.Round
	if d.Version == 0 && d.InCombat && round == 0 {
		// snapshots written before rounds were tracked
		round = 1
	}
	return &combat.Snapshot{
		InCombat:          d.InCombat,
		Combatants:        d.Combatants,
		TurnIndex:         d.TurnIndex,
		Round:             round,
		InitiativeRollLog: d.RollLog,
		SavedAt:           d.SavedAt,
	}
}
