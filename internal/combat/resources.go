// Package combat holds the action economy ledger, the initiative roster and
// the turn scheduler. Nothing in it is safe for concurrent use; callers
// serialize access per board.
package combat

import (
	"github.com/KirkDiggler/battlemap-api/internal/errors"
)

// Resource is one slot of the per-round action economy.
type Resource string

const (
	ResourceAction      Resource = "action"
	ResourceBonusAction Resource = "bonus_action"
	ResourceReaction    Resource = "reaction"
)

// Label is the player-facing name of the resource.
func (r Resource) Label() string {
	switch r {
	case ResourceBonusAction:
		return "bonus action"
	default:
		return string(r)
	}
}

// Combatant is a token's projection into an encounter.
type Combatant struct {
	TokenID           string `json:"token_id"`
	Name              string `json:"name"`
	ImageURL          string `json:"image_url,omitempty"`
	DexModifier       int    `json:"dex_modifier"`
	Initiative        int    `json:"initiative"`
	Speed             int    `json:"speed"`
	HasAction         bool   `json:"has_action"`
	HasBonusAction    bool   `json:"has_bonus_action"`
	HasReaction       bool   `json:"has_reaction"`
	MovementRemaining int    `json:"movement_remaining"`
}

// ResetForTurn makes every slot available again and reseeds movement.
func (c *Combatant) ResetForTurn() {
	c.HasAction = true
	c.HasBonusAction = true
	c.HasReaction = true
	c.MovementRemaining = c.Speed
}

// Has reports whether the resource is still unused this round.
func (c *Combatant) Has(r Resource) bool {
	switch r {
	case ResourceAction:
		return c.HasAction
	case ResourceBonusAction:
		return c.HasBonusAction
	case ResourceReaction:
		return c.HasReaction
	}
	return false
}

// Consume marks the resource used. It fails without mutating when the
// resource is already spent.
func (c *Combatant) Consume(r Resource) error {
	if !c.Has(r) {
		return errors.FailedPreconditionf("no %s remaining", r.Label()).
			WithMeta("token_id", c.TokenID).
			WithMeta("resource", string(r))
	}
	c.set(r, false)
	return nil
}

// Refund returns a consumed resource. Used to undo a command whose
// persistence failed.
func (c *Combatant) Refund(r Resource) {
	c.set(r, true)
}

func (c *Combatant) set(r Resource, available bool) {
	switch r {
	case ResourceAction:
		c.HasAction = available
	case ResourceBonusAction:
		c.HasBonusAction = available
	case ResourceReaction:
		c.HasReaction = available
	}
}
