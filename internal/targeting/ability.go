// Package targeting resolves ability activations: action economy checks,
// range gated target selection and the status effects abilities apply.
package targeting

import (
	"strings"

	"github.com/KirkDiggler/battlemap-api/internal/combat"
	"github.com/KirkDiggler/battlemap-api/internal/entities"
	"github.com/KirkDiggler/battlemap-api/internal/geometry"
)

// AbilityKind tags the source of an ability.
type AbilityKind string

const (
	AbilitySpell   AbilityKind = "spell"
	AbilityAction  AbilityKind = "action"
	AbilityMonster AbilityKind = "monster"
)

const helpAbility = "help"

// selfStatuses maps the convenience actions to the status they toggle.
var selfStatuses = map[string]entities.Status{
	"dodge":     entities.StatusDodging,
	"disengage": entities.StatusDisengaged,
	"hide":      entities.StatusHidden,
}

// Ability is anything a token can activate. Cost and Range are derived once,
// at construction.
type Ability struct {
	Kind        AbilityKind         `json:"kind"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	SpellLevel  int                 `json:"spell_level,omitempty"`
	Cost        combat.Resource     `json:"cost"`
	Range       *geometry.RangeInfo `json:"range,omitempty"`
}

// NewSpell builds an ability from a spell. Casting time decides the cost and
// the structured range field decides the reach.
func NewSpell(spell entities.SpellRecord) Ability {
	a := Ability{
		Kind:        AbilitySpell,
		Name:        spell.Name,
		Description: spell.Description,
		SpellLevel:  spell.Level,
		Cost:        CostFromCastingTime(spell.CastingTime),
	}
	if info, ok := geometry.ParseSpellRange(spell.Range); ok {
		a.Range = &info
	}
	return a
}

// NewAction builds an ability from a character action.
func NewAction(action entities.ActionRecord) Ability {
	return newDeclared(AbilityAction, action)
}

// NewMonsterAbility builds an ability from a monster stat block action.
func NewMonsterAbility(action entities.ActionRecord) Ability {
	return newDeclared(AbilityMonster, action)
}

func newDeclared(kind AbilityKind, action entities.ActionRecord) Ability {
	a := Ability{
		Kind:        kind,
		Name:        action.Name,
		Description: action.Description,
		Cost:        CostFromActionType(action.Type),
	}
	if _, ok := a.SelfStatus(); ok {
		a.Cost = combat.ResourceAction
		return a
	}
	if info, ok := geometry.ParseDescription(action.Description); ok {
		a.Range = &info
	} else if a.IsHelp() {
		a.Range = &geometry.RangeInfo{Kind: geometry.RangeTouch, Feet: geometry.TouchFeet}
	}
	return a
}

// CostFromCastingTime reads "1 bonus action", "1 reaction, which you take
// when..." and similar. Anything else costs an action.
func CostFromCastingTime(castingTime string) combat.Resource {
	lower := strings.ToLower(castingTime)
	switch {
	case strings.Contains(lower, "bonus"):
		return combat.ResourceBonusAction
	case strings.Contains(lower, "reaction"):
		return combat.ResourceReaction
	default:
		return combat.ResourceAction
	}
}

// CostFromActionType maps a declared action type, defaulting to an action.
func CostFromActionType(t entities.ActionType) combat.Resource {
	switch t {
	case entities.ActionTypeBonusAction:
		return combat.ResourceBonusAction
	case entities.ActionTypeReaction:
		return combat.ResourceReaction
	default:
		return combat.ResourceAction
	}
}

// SelfStatus returns the status a convenience action toggles on its user.
func (a Ability) SelfStatus() (entities.Status, bool) {
	if a.Kind == AbilitySpell {
		return "", false
	}
	status, ok := selfStatuses[strings.ToLower(strings.TrimSpace(a.Name))]
	return status, ok
}

// IsHelp reports whether this is the Help action.
func (a Ability) IsHelp() bool {
	return a.Kind != AbilitySpell && strings.EqualFold(strings.TrimSpace(a.Name), helpAbility)
}

// needsTarget reports whether activation must wait for a target.
func (a Ability) needsTarget() bool {
	return a.Range != nil && a.Range.Kind != geometry.RangeSelf
}
