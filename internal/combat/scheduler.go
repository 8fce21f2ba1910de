package combat

import (
	"time"

	"github.com/KirkDiggler/battlemap-api/internal/errors"
)

// TurnHooks is notified as turns change hands. The board uses it to expire
// status effects on the tokens behind the combatants.
type TurnHooks interface {
	OnTurnEnd(c *Combatant)
	OnTurnStart(c *Combatant)
}

// NoopHooks ignores turn changes.
type NoopHooks struct{}

func (NoopHooks) OnTurnEnd(*Combatant)   {}
func (NoopHooks) OnTurnStart(*Combatant) {}

// Snapshot is the durable form of an encounter.
type Snapshot struct {
	InCombat          bool           `json:"is_in_combat"`
	Combatants        []*Combatant   `json:"combatants"`
	TurnIndex         int            `json:"turn_index"`
	Round             int            `json:"round"`
	InitiativeRollLog []RollLogEntry `json:"initiative_roll_log,omitempty"`
	SavedAt           time.Time      `json:"saved_at"`
}

// Transition describes a turn change so the caller can refocus on the new
// active token.
type Transition struct {
	Ending   *Combatant `json:"ending"`
	Starting *Combatant `json:"starting"`
	Round    int        `json:"round"`
}

// Scheduler owns the ordered combatants and the turn pointer.
type Scheduler struct {
	hooks      TurnHooks
	combatants []*Combatant
	turnIndex  int
	round      int
	rollLog    []RollLogEntry
}

// NewScheduler returns an idle scheduler. A nil hooks value disables hooks.
func NewScheduler(hooks TurnHooks) *Scheduler {
	if hooks == nil {
		hooks = NoopHooks{}
	}
	return &Scheduler{hooks: hooks}
}

// SetHooks replaces the turn hooks.
func (s *Scheduler) SetHooks(hooks TurnHooks) {
	if hooks == nil {
		hooks = NoopHooks{}
	}
	s.hooks = hooks
}

// InCombat reports whether an encounter is running.
func (s *Scheduler) InCombat() bool {
	return len(s.combatants) > 0
}

// Start installs an ordered roster and begins the first turn.
func (s *Scheduler) Start(ordered []*Combatant, rollLog []RollLogEntry) (*Combatant, error) {
	if s.InCombat() {
		return nil, errors.FailedPrecondition("combat is already in progress")
	}
	if len(ordered) == 0 {
		return nil, errors.FailedPrecondition("cannot start combat without combatants")
	}

	s.combatants = ordered
	s.turnIndex = 0
	s.round = 1
	s.rollLog = append([]RollLogEntry(nil), rollLog...)

	first := s.combatants[0]
	s.hooks.OnTurnStart(first)
	first.ResetForTurn()
	return first, nil
}

// NextTurn ends the active combatant's turn and starts the next one. Only
// the starting combatant's resources are reset.
func (s *Scheduler) NextTurn() (Transition, error) {
	if !s.InCombat() {
		return Transition{}, errors.FailedPrecondition("combat is not in progress")
	}

	ending := s.combatants[s.turnIndex]
	next := (s.turnIndex + 1) % len(s.combatants)
	starting := s.combatants[next]

	s.hooks.OnTurnEnd(ending)
	s.hooks.OnTurnStart(starting)

	s.turnIndex = next
	if next == 0 {
		s.round++
	}
	starting.ResetForTurn()

	return Transition{Ending: ending, Starting: starting, Round: s.round}, nil
}

// End clears the encounter. Status tags on tokens are left to the caller.
func (s *Scheduler) End() bool {
	wasInCombat := s.InCombat()
	s.combatants = nil
	s.turnIndex = 0
	s.round = 0
	s.rollLog = nil
	return wasInCombat
}

// Active returns the combatant whose turn it is, or nil out of combat.
func (s *Scheduler) Active() *Combatant {
	if !s.InCombat() {
		return nil
	}
	return s.combatants[s.turnIndex]
}

// IsActive reports whether it is tokenID's turn.
func (s *Scheduler) IsActive(tokenID string) bool {
	active := s.Active()
	return active != nil && active.TokenID == tokenID
}

// Find returns the combatant for a token, or nil.
func (s *Scheduler) Find(tokenID string) *Combatant {
	for _, c := range s.combatants {
		if c.TokenID == tokenID {
			return c
		}
	}
	return nil
}

// Combatants returns the ordered roster.
func (s *Scheduler) Combatants() []*Combatant {
	return s.combatants
}

// TurnIndex returns the active position in the roster.
func (s *Scheduler) TurnIndex() int {
	return s.turnIndex
}

// Round returns the current round, 1 based, or 0 out of combat.
func (s *Scheduler) Round() int {
	return s.round
}

// RollLog returns the initiative rolls that produced the roster.
func (s *Scheduler) RollLog() []RollLogEntry {
	return s.rollLog
}

// Remove drops a combatant whose token left the scene. When the active
// combatant is removed the next one in order becomes active without an
// end hook; its turn starts normally. Removing the last combatant ends combat.
func (s *Scheduler) Remove(tokenID string) bool {
	idx := -1
	for i, c := range s.combatants {
		if c.TokenID == tokenID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	s.combatants = append(s.combatants[:idx:idx], s.combatants[idx+1:]...)
	if len(s.combatants) == 0 {
		s.End()
		return true
	}

	wasActive := idx == s.turnIndex
	if idx < s.turnIndex {
		s.turnIndex--
	}
	if s.turnIndex >= len(s.combatants) {
		s.turnIndex = 0
		s.round++
	}
	if wasActive {
		active := s.combatants[s.turnIndex]
		s.hooks.OnTurnStart(active)
		active.ResetForTurn()
	}
	return true
}

// Snapshot copies the scheduler state.
func (s *Scheduler) Snapshot() *Snapshot {
	return &Snapshot{
		InCombat:          s.InCombat(),
		Combatants:        copyCombatants(s.combatants),
		TurnIndex:         s.turnIndex,
		Round:             s.round,
		InitiativeRollLog: append([]RollLogEntry(nil), s.rollLog...),
	}
}

// Restore replaces the scheduler state with a saved snapshot. A nil or
// finished snapshot leaves the scheduler idle.
func (s *Scheduler) Restore(snap *Snapshot) error {
	if snap == nil || !snap.InCombat {
		s.End()
		return nil
	}

	if len(snap.Combatants) == 0 {
		return errors.InvalidArgument("combat snapshot has no combatants")
	}
	if snap.TurnIndex < 0 || snap.TurnIndex >= len(snap.Combatants) {
		return errors.InvalidArgumentf("combat snapshot turn index %d out of bounds", snap.TurnIndex).
			WithMeta("combatants", len(snap.Combatants))
	}

	s.combatants = copyCombatants(snap.Combatants)
	s.turnIndex = snap.TurnIndex
	s.round = snap.Round
	if s.round < 1 {
		s.round = 1
	}
	s.rollLog = append([]RollLogEntry(nil), snap.InitiativeRollLog...)
	return nil
}

func copyCombatants(in []*Combatant) []*Combatant {
	if in == nil {
		return nil
	}
	out := make([]*Combatant, len(in))
	for i, c := range in {
		cp := *c
		out[i] = &cp
	}
	return out
}
