package targeting

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/battlemap-api/internal/combat"
	"github.com/KirkDiggler/battlemap-api/internal/entities"
	"github.com/KirkDiggler/battlemap-api/internal/errors"
	"github.com/KirkDiggler/battlemap-api/internal/geometry"
)

// Combat is the slice of the turn scheduler the resolver consults.
type Combat interface {
	InCombat() bool
	IsActive(tokenID string) bool
	Find(tokenID string) *combat.Combatant
}

var _ Combat = (*combat.Scheduler)(nil)

// OutcomeKind says how an activation ended.
type OutcomeKind string

const (
	OutcomeSelfApplied    OutcomeKind = "self_applied"
	OutcomeResolved       OutcomeKind = "resolved"
	OutcomeAwaitingTarget OutcomeKind = "awaiting_target"
)

// Session is a pending activation waiting for a target. It is never persisted.
type Session struct {
	Ability          Ability           `json:"ability"`
	CasterID         string            `json:"caster_id"`
	Ellipse          *geometry.Ellipse `json:"ellipse,omitempty"`
	InitiatingCombat bool              `json:"initiating_combat"`
}

// StatusChange is one status toggle made by a resolution.
type StatusChange struct {
	TokenID string          `json:"token_id"`
	Status  entities.Status `json:"status"`
	Applied bool            `json:"applied"`
}

// Outcome reports what an activation or target selection did. Consumed and
// Effects describe every mutation so the caller can undo them.
type Outcome struct {
	Kind           OutcomeKind     `json:"kind"`
	Ability        Ability         `json:"ability"`
	ActorID        string          `json:"actor_id"`
	TargetID       string          `json:"target_id,omitempty"`
	DistanceFeet   int             `json:"distance_feet,omitempty"`
	Consumed       combat.Resource `json:"consumed,omitempty"`
	Effects        []StatusChange  `json:"effects,omitempty"`
	OpenInitiative bool            `json:"open_initiative"`
	Session        *Session        `json:"session,omitempty"`
	Message        string          `json:"message,omitempty"`
}

// Resolver is the targeting state machine for one board. It is idle when
// Session returns nil.
type Resolver struct {
	combat  Combat
	session *Session
}

// NewResolver creates an idle resolver over the given combat state.
func NewResolver(c Combat) *Resolver {
	return &Resolver{combat: c}
}

// Session returns the pending activation, or nil when idle.
func (r *Resolver) Session() *Session {
	return r.session
}

// Cancel abandons a pending activation. It reports whether one was pending.
func (r *Resolver) Cancel() bool {
	pending := r.session != nil
	r.session = nil
	return pending
}

// Activate starts an ability on behalf of actorID. Any previous pending
// activation is replaced. On error nothing changes except that the previous
// session is dropped.
func (r *Resolver) Activate(scene *entities.Scene, actorID string, ability Ability) (*Outcome, error) {
	r.session = nil

	if actorID == "" {
		return nil, errors.InvalidArgument("select a token before using an ability")
	}
	actor := scene.FindToken(actorID)
	if actor == nil {
		return nil, errors.NotFoundf("token %s is not on the scene", actorID)
	}

	combatant, err := r.checkEconomy(actor, ability.Cost)
	if err != nil {
		return nil, err
	}

	if status, ok := ability.SelfStatus(); ok {
		return r.applySelf(actor, combatant, ability, status)
	}

	initiating := !r.combat.InCombat()

	if !ability.needsTarget() {
		outcome := &Outcome{
			Kind:           OutcomeResolved,
			Ability:        ability,
			ActorID:        actor.ID,
			TargetID:       actor.ID,
			OpenInitiative: initiating,
			Message:        fmt.Sprintf("%s used %s", actor.Name, ability.Name),
		}
		if combatant != nil {
			if err := combatant.Consume(ability.Cost); err != nil {
				return nil, err
			}
			outcome.Consumed = ability.Cost
		}
		return outcome, nil
	}

	session := &Session{
		Ability:          ability,
		CasterID:         actor.ID,
		InitiatingCombat: initiating,
	}
	if ability.Range.Kind == geometry.RangeRanged {
		ellipse := geometry.RangeEllipse(actor.Position, *ability.Range, scene.Dimensions())
		session.Ellipse = &ellipse
	}
	r.session = session

	return &Outcome{
		Kind:    OutcomeAwaitingTarget,
		Ability: ability,
		ActorID: actor.ID,
		Session: session,
	}, nil
}

// SelectTarget completes the pending activation against targetID. An out of
// range target leaves the session pending; every other rejection ends it.
// The actor's resource is consumed only after every check passed.
func (r *Resolver) SelectTarget(scene *entities.Scene, targetID string) (*Outcome, error) {
	session := r.session
	if session == nil {
		return nil, errors.FailedPrecondition("no ability is waiting for a target")
	}

	caster := scene.FindToken(session.CasterID)
	if caster == nil {
		r.session = nil
		return nil, errors.NotFoundf("casting token %s left the scene", session.CasterID)
	}
	target := scene.FindToken(targetID)
	if target == nil {
		return nil, errors.NotFoundf("token %s is not on the scene", targetID)
	}

	ability := session.Ability
	distance := geometry.DistanceFeet(caster.Position, target.Position, scene.Dimensions())
	if distance > float64(ability.Range.Feet) {
		measured := int(math.Round(distance))
		return nil, errors.OutOfRangef("%s is %d ft away; %s reaches %d ft", target.Name, measured, ability.Name, ability.Range.Feet).
			WithMeta("distance_ft", measured).
			WithMeta("range_ft", ability.Range.Feet)
	}

	if ability.IsHelp() {
		if target.ID == caster.ID {
			r.session = nil
			return nil, errors.InvalidArgument("cannot help yourself")
		}
		if target.Kind != entities.TokenKindCharacter {
			r.session = nil
			return nil, errors.InvalidArgumentf("%s can only help a character", caster.Name).
				WithMeta("target_kind", string(target.Kind))
		}
	}

	combatant, err := r.checkEconomy(caster, ability.Cost)
	if err != nil {
		r.session = nil
		return nil, err
	}

	outcome := &Outcome{
		Kind:           OutcomeResolved,
		Ability:        ability,
		ActorID:        caster.ID,
		TargetID:       target.ID,
		DistanceFeet:   int(math.Round(distance)),
		OpenInitiative: session.InitiatingCombat && !r.combat.InCombat(),
		Message:        fmt.Sprintf("%s used %s on %s", caster.Name, ability.Name, target.Name),
	}

	if combatant != nil {
		if err := combatant.Consume(ability.Cost); err != nil {
			r.session = nil
			return nil, err
		}
		outcome.Consumed = ability.Cost
	}
	if ability.IsHelp() && target.AddStatus(entities.StatusHelping) {
		outcome.Effects = append(outcome.Effects, StatusChange{TokenID: target.ID, Status: entities.StatusHelping, Applied: true})
	}

	r.session = nil
	return outcome, nil
}

// checkEconomy enforces turn order and resource availability while in
// combat. It returns the actor's combatant, or nil out of combat.
func (r *Resolver) checkEconomy(actor *entities.Token, cost combat.Resource) (*combat.Combatant, error) {
	if !r.combat.InCombat() {
		return nil, nil
	}
	if !r.combat.IsActive(actor.ID) {
		return nil, errors.FailedPreconditionf("not your turn, %s", actor.Name).
			WithMeta("token_id", actor.ID)
	}
	combatant := r.combat.Find(actor.ID)
	if combatant == nil {
		return nil, errors.Internalf("active token %s has no combatant", actor.ID)
	}
	if !combatant.Has(cost) {
		return nil, errors.FailedPreconditionf("no %s remaining", cost.Label()).
			WithMeta("token_id", actor.ID).
			WithMeta("resource", string(cost))
	}
	return combatant, nil
}

func (r *Resolver) applySelf(actor *entities.Token, combatant *combat.Combatant, ability Ability, status entities.Status) (*Outcome, error) {
	outcome := &Outcome{
		Kind:     OutcomeSelfApplied,
		Ability:  ability,
		ActorID:  actor.ID,
		TargetID: actor.ID,
	}

	if combatant != nil {
		if err := combatant.Consume(combat.ResourceAction); err != nil {
			return nil, err
		}
		outcome.Consumed = combat.ResourceAction
	}

	change := StatusChange{TokenID: actor.ID, Status: status}
	if actor.HasStatus(status) {
		actor.RemoveStatus(status)
		outcome.Message = fmt.Sprintf("%s is no longer %s", actor.Name, status)
	} else {
		actor.AddStatus(status)
		change.Applied = true
		outcome.Message = fmt.Sprintf("%s is now %s", actor.Name, status)
	}
	outcome.Effects = []StatusChange{change}
	return outcome, nil
}

// Revert undoes the status effects of an outcome, newest first.
func Revert(scene *entities.Scene, effects []StatusChange) {
	for i := len(effects) - 1; i >= 0; i-- {
		change := effects[i]
		token := scene.FindToken(change.TokenID)
		if token == nil {
			continue
		}
		if change.Applied {
			token.RemoveStatus(change.Status)
		} else {
			token.AddStatus(change.Status)
		}
	}
}
