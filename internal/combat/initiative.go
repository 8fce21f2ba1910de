package combat

import (
	"fmt"
	"math"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/battlemap-api/internal/entities"
	"github.com/KirkDiggler/battlemap-api/internal/errors"
)

// Manual initiative bounds.
const (
	MinInitiative = -10
	MaxInitiative = 40
)

// DexModifier is the standard ability modifier, floor((score-10)/2).
func DexModifier(score int) int {
	return int(math.Floor(float64(score-10) / 2))
}

// InitiativeEntry is one line of the initiative dialog. Initiative is nil
// until it is rolled or entered.
type InitiativeEntry struct {
	TokenID     string             `json:"token_id"`
	Name        string             `json:"name"`
	ImageURL    string             `json:"image_url,omitempty"`
	Kind        entities.TokenKind `json:"kind"`
	Dexterity   int                `json:"dexterity"`
	DexModifier int                `json:"dex_modifier"`
	Speed       int                `json:"speed"`
	Initiative  *int               `json:"initiative,omitempty"`
}

// RollLogEntry records one initiative roll.
type RollLogEntry struct {
	TokenID  string `json:"token_id"`
	Name     string `json:"name"`
	Roll     int    `json:"roll"`
	Modifier int    `json:"modifier"`
	Total    int    `json:"total"`
}

// Description renders the roll the way the tracker shows it.
func (e RollLogEntry) Description() string {
	sign := "+"
	mod := e.Modifier
	if mod < 0 {
		sign = "-"
		mod = -mod
	}
	return fmt.Sprintf("%s rolled d20 (%d) %s %d = %d", e.Name, e.Roll, sign, mod, e.Total)
}

// StatBlocks resolves a token's linked record.
type StatBlocks struct {
	Characters map[string]*entities.CharacterRecord
	Enemies    map[string]*entities.EnemyRecord
}

// Roster is the initiative dialog state for one encounter.
type Roster struct {
	Entries []*InitiativeEntry `json:"entries"`
	// Missing lists tokens whose linked record could not be found; they
	// fall back to default dexterity and speed.
	Missing []string       `json:"missing,omitempty"`
	Log     []RollLogEntry `json:"log,omitempty"`
}

// BuildRoster creates one entry per token, reading dexterity and speed from
// the linked character or enemy record.
func BuildRoster(tokens []*entities.Token, stats StatBlocks) *Roster {
	roster := &Roster{Entries: make([]*InitiativeEntry, 0, len(tokens))}

	for _, token := range tokens {
		dex := entities.DefaultDexterity
		speed := entities.DefaultSpeed
		found := true

		switch {
		case token.CharacterID != "":
			if rec, ok := stats.Characters[token.CharacterID]; ok {
				dex, speed = rec.Dexterity, entities.SpeedOrDefault(rec.Speed)
			} else {
				found = false
			}
		case token.EnemyID != "":
			if rec, ok := stats.Enemies[token.EnemyID]; ok {
				dex, speed = rec.Dexterity, entities.SpeedOrDefault(rec.Speed)
			} else {
				found = false
			}
		}
		if !found {
			roster.Missing = append(roster.Missing, token.ID)
		}

		roster.Entries = append(roster.Entries, &InitiativeEntry{
			TokenID:     token.ID,
			Name:        token.Name,
			ImageURL:    token.ImageURL,
			Kind:        token.Kind,
			Dexterity:   dex,
			DexModifier: DexModifier(dex),
			Speed:       speed,
		})
	}

	return roster
}

// Find returns the entry for a token or nil.
func (r *Roster) Find(tokenID string) *InitiativeEntry {
	for _, e := range r.Entries {
		if e.TokenID == tokenID {
			return e
		}
	}
	return nil
}

// Set records a manually entered initiative.
func (r *Roster) Set(tokenID string, value int) error {
	entry := r.Find(tokenID)
	if entry == nil {
		return errors.NotFoundf("token %s is not in the initiative roster", tokenID)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("initiative", value, MinInitiative, MaxInitiative, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	entry.Initiative = &value
	return nil
}

// Roll rolls d20 plus the dexterity modifier for one entry and logs it.
func (r *Roster) Roll(tokenID string, roller dice.Roller) (RollLogEntry, error) {
	entry := r.Find(tokenID)
	if entry == nil {
		return RollLogEntry{}, errors.NotFoundf("token %s is not in the initiative roster", tokenID)
	}

	roll, err := roller.Roll(20)
	if err != nil {
		return RollLogEntry{}, errors.Wrap(err, "failed to roll initiative")
	}

	total := roll + entry.DexModifier
	entry.Initiative = &total

	logEntry := RollLogEntry{
		TokenID:  entry.TokenID,
		Name:     entry.Name,
		Roll:     roll,
		Modifier: entry.DexModifier,
		Total:    total,
	}
	r.Log = append(r.Log, logEntry)
	return logEntry, nil
}

// RollAll rolls for every entry, or only those still unset.
func (r *Roster) RollAll(roller dice.Roller, onlyUnset bool) ([]RollLogEntry, error) {
	var rolled []RollLogEntry
	for _, entry := range r.Entries {
		if onlyUnset && entry.Initiative != nil {
			continue
		}
		logEntry, err := r.Roll(entry.TokenID, roller)
		if err != nil {
			return rolled, err
		}
		rolled = append(rolled, logEntry)
	}
	return rolled, nil
}

// Pending returns the tokens still waiting for an initiative value.
func (r *Roster) Pending() []string {
	var pending []string
	for _, e := range r.Entries {
		if e.Initiative == nil {
			pending = append(pending, e.TokenID)
		}
	}
	return pending
}

// Order turns a complete roster into the combat order: initiative
// descending, then dexterity modifier descending. Exact ties keep roster
// order.
func Order(entries []*InitiativeEntry) ([]*Combatant, error) {
	if len(entries) == 0 {
		return nil, errors.FailedPrecondition("cannot start combat without combatants")
	}

	var pending []string
	for _, e := range entries {
		if e.Initiative == nil {
			pending = append(pending, e.Name)
		}
	}
	if len(pending) > 0 {
		return nil, errors.FailedPreconditionf("%d combatants still need initiative", len(pending)).
			WithMeta("pending", pending)
	}

	combatants := make([]*Combatant, 0, len(entries))
	for _, e := range entries {
		c := &Combatant{
			TokenID:     e.TokenID,
			Name:        e.Name,
			ImageURL:    e.ImageURL,
			DexModifier: e.DexModifier,
			Initiative:  *e.Initiative,
			Speed:       e.Speed,
		}
		c.ResetForTurn()
		combatants = append(combatants, c)
	}

	sort.SliceStable(combatants, func(i, j int) bool {
		if combatants[i].Initiative != combatants[j].Initiative {
			return combatants[i].Initiative > combatants[j].Initiative
		}
		return combatants[i].DexModifier > combatants[j].DexModifier
	})

	return combatants, nil
}

// Clone returns a deep copy.
func (r *Roster) Clone() *Roster {
	if r == nil {
		return nil
	}
	cp := &Roster{
		Entries: make([]*InitiativeEntry, len(r.Entries)),
		Missing: append([]string(nil), r.Missing...),
		Log:     append([]RollLogEntry(nil), r.Log...),
	}
	for i, e := range r.Entries {
		entry := *e
		if e.Initiative != nil {
			v := *e.Initiative
			entry.Initiative = &v
		}
		cp.Entries[i] = &entry
	}
	return cp
}
