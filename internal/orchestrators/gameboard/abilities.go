package gameboard

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/battlemap-api/internal/combat"
	"github.com/KirkDiggler/battlemap-api/internal/entities"
	"github.com/KirkDiggler/battlemap-api/internal/errors"
	"github.com/KirkDiggler/battlemap-api/internal/repositories/documents"
	"github.com/KirkDiggler/battlemap-api/internal/targeting"
)

// standardActions are available to every token.
var standardActions = []entities.ActionRecord{
	{Name: "Dodge", Description: "Attacks against you have disadvantage until your next turn."},
	{Name: "Disengage", Description: "Your movement doesn't provoke opportunity attacks this turn."},
	{Name: "Hide", Description: "Make a Dexterity (Stealth) check to hide."},
	{Name: "Help", Description: "Give an adjacent ally advantage on their next check."},
}

// ListAbilities returns the standard actions plus whatever the token's
// linked record declares, with the token's remaining action economy while
// combat runs
func (o *orchestrator) ListAbilities(ctx context.Context, input *ListAbilitiesInput) (*ListAbilitiesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.TokenID == "" {
		return nil, errors.InvalidArgument("token_id is required")
	}

	ctx, span := o.startSpan(ctx, "ListAbilities", input.CampaignID)
	defer span.End()

	b, unlock, err := o.lockBoard(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	scene, err := b.requireScene()
	if err != nil {
		return nil, err
	}
	token := scene.FindToken(input.TokenID)
	if token == nil {
		return nil, errors.NotFoundf("token %s is not on the scene", input.TokenID)
	}

	abilities := make([]targeting.Ability, 0, len(standardActions))
	for _, action := range standardActions {
		abilities = append(abilities, targeting.NewAction(action))
	}

	switch {
	case token.CharacterID != "":
		rec, err := documents.GetAs[entities.CharacterRecord](ctx, o.docs, documents.CollectionCharacters, token.CharacterID)
		if err != nil {
			logRecordError("character", token.CharacterID, err)
			break
		}
		for _, action := range rec.Actions {
			abilities = append(abilities, targeting.NewAction(action))
		}
		for _, spell := range rec.Spells {
			abilities = append(abilities, targeting.NewSpell(spell))
		}
	case token.EnemyID != "":
		rec, err := documents.GetAs[entities.EnemyRecord](ctx, o.docs, documents.CollectionEnemies, token.EnemyID)
		if err != nil {
			logRecordError("enemy", token.EnemyID, err)
			break
		}
		for _, action := range rec.Actions {
			abilities = append(abilities, targeting.NewMonsterAbility(action))
		}
	}

	out := &ListAbilitiesOutput{Abilities: abilities}
	if c := b.scheduler.Find(token.ID); c != nil {
		economy := *c
		out.Economy = &economy
		out.YourTurn = b.scheduler.IsActive(token.ID)
	}
	return out, nil
}

// resolveAbility builds an ability from an inline description or a catalog
// reference.
func (o *orchestrator) resolveAbility(ctx context.Context, ref *AbilityRef) (targeting.Ability, error) {
	if ref == nil {
		return targeting.Ability{}, errors.InvalidArgument("ability is required")
	}

	switch ref.Kind {
	case targeting.AbilitySpell:
		if ref.SpellKey != "" {
			if o.catalog == nil {
				return targeting.Ability{}, errors.FailedPreconditionf("spell %s cannot be looked up without a catalog", ref.SpellKey)
			}
			spell, err := o.catalog.GetSpell(ctx, ref.SpellKey)
			if err != nil {
				return targeting.Ability{}, errors.Wrapf(err, "failed to look up spell %s", ref.SpellKey)
			}
			return targeting.NewSpell(*spell), nil
		}
		if ref.Name == "" {
			return targeting.Ability{}, errors.InvalidArgument("spell name or spell_key is required")
		}
		return targeting.NewSpell(entities.SpellRecord{
			Name:        ref.Name,
			Level:       ref.SpellLevel,
			CastingTime: ref.CastingTime,
			Range:       ref.Range,
			Description: ref.Description,
		}), nil

	case targeting.AbilityAction:
		if ref.Name == "" {
			return targeting.Ability{}, errors.InvalidArgument("action name is required")
		}
		return targeting.NewAction(entities.ActionRecord{
			Name:        ref.Name,
			Description: ref.Description,
			Type:        ref.ActionType,
		}), nil

	case targeting.AbilityMonster:
		if ref.Name == "" {
			return targeting.Ability{}, errors.InvalidArgument("monster ability name is required")
		}
		if ref.MonsterKey != "" {
			if o.catalog == nil {
				return targeting.Ability{}, errors.FailedPreconditionf("monster %s cannot be looked up without a catalog", ref.MonsterKey)
			}
			action, err := o.catalog.GetMonsterAbility(ctx, ref.MonsterKey, ref.Name)
			if err != nil {
				return targeting.Ability{}, errors.Wrapf(err, "failed to look up %s for %s", ref.Name, ref.MonsterKey)
			}
			return targeting.NewMonsterAbility(*action), nil
		}
		return targeting.NewMonsterAbility(entities.ActionRecord{
			Name:        ref.Name,
			Description: ref.Description,
			Type:        ref.ActionType,
		}), nil
	}

	return targeting.Ability{}, errors.InvalidArgumentf("unknown ability kind %q", ref.Kind)
}

// ActivateAbility starts an ability for a token
func (o *orchestrator) ActivateAbility(ctx context.Context, input *ActivateAbilityInput) (*ActivateAbilityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.startSpan(ctx, "ActivateAbility", input.CampaignID)
	defer span.End()

	ability, err := o.resolveAbility(ctx, input.Ability)
	if err != nil {
		return nil, err
	}

	b, unlock, err := o.lockBoard(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	scene, err := b.requireScene()
	if err != nil {
		return nil, err
	}

	var outcome *targeting.Outcome
	warning, err := o.updateScene(ctx, b, command{
		name: "use " + ability.Name,
		apply: func() (mutation, error) {
			var err error
			outcome, err = b.resolver.Activate(scene, input.ActorID, ability)
			if err != nil {
				return mutatedNothing, err
			}
			return outcomeMutation(outcome), nil
		},
		undo: func() {
			o.revertOutcome(b, outcome)
		},
	})
	if err != nil {
		return nil, err
	}

	out := &ActivateAbilityOutput{Outcome: outcome, Warning: warning}
	if outcome.Kind != targeting.OutcomeAwaitingTarget {
		o.publishOutcome(ctx, b, outcome)
	}
	if outcome.OpenInitiative {
		out.Initiative = o.openInitiative(ctx, b, scene)
	}
	return out, nil
}

// SelectTarget completes the pending ability. An ability used out of combat
// opens the initiative dialog.
func (o *orchestrator) SelectTarget(ctx context.Context, input *SelectTargetInput) (*SelectTargetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.TargetID == "" {
		return nil, errors.InvalidArgument("target_id is required")
	}

	ctx, span := o.startSpan(ctx, "SelectTarget", input.CampaignID)
	defer span.End()

	b, unlock, err := o.lockBoard(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	scene, err := b.requireScene()
	if err != nil {
		return nil, err
	}

	var outcome *targeting.Outcome
	warning, err := o.updateScene(ctx, b, command{
		name: "select target",
		apply: func() (mutation, error) {
			var err error
			outcome, err = b.resolver.SelectTarget(scene, input.TargetID)
			if err != nil {
				return mutatedNothing, err
			}
			return outcomeMutation(outcome), nil
		},
		undo: func() {
			o.revertOutcome(b, outcome)
		},
	})
	if err != nil {
		return nil, err
	}

	o.publishOutcome(ctx, b, outcome)

	out := &SelectTargetOutput{Outcome: outcome, Warning: warning}
	if outcome.OpenInitiative {
		out.Initiative = o.openInitiative(ctx, b, scene)
	}
	return out, nil
}

// openInitiative builds the initiative dialog for the active scene unless
// one is already open.
func (o *orchestrator) openInitiative(ctx context.Context, b *board, scene *entities.Scene) *combat.Roster {
	if b.roster == nil {
		b.roster = combat.BuildRoster(scene.Tokens, o.loadStatBlocks(ctx, scene.Tokens))
	}
	return b.roster.Clone()
}

// CancelTargeting abandons the pending ability
func (o *orchestrator) CancelTargeting(ctx context.Context, input *CancelTargetingInput) (*CancelTargetingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.startSpan(ctx, "CancelTargeting", input.CampaignID)
	defer span.End()

	b, unlock, err := o.lockBoard(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return &CancelTargetingOutput{Cancelled: b.resolver.Cancel()}, nil
}

// outcomeMutation maps what a resolution touched to what must be saved.
func outcomeMutation(outcome *targeting.Outcome) mutation {
	switch {
	case outcome.Kind == targeting.OutcomeAwaitingTarget:
		return mutatedNothing
	case len(outcome.Effects) > 0:
		return mutatedScene
	case outcome.Consumed != "":
		return mutatedCombat
	}
	return mutatedNothing
}

// revertOutcome undoes a resolution's status effects and refunds its cost.
func (o *orchestrator) revertOutcome(b *board, outcome *targeting.Outcome) {
	if outcome == nil {
		return
	}
	if b.scene != nil {
		targeting.Revert(b.scene, outcome.Effects)
	}
	if outcome.Consumed == "" {
		return
	}
	if c := b.scheduler.Find(outcome.ActorID); c != nil {
		c.Refund(outcome.Consumed)
	} else {
		slog.Error("Cannot refund resource, combatant is gone",
			"campaign_id", b.campaign.ID,
			"token_id", outcome.ActorID,
		)
	}
}

func (o *orchestrator) publishOutcome(ctx context.Context, b *board, outcome *targeting.Outcome) {
	actor := b.scene.FindToken(outcome.ActorID)
	var target *entities.Token
	if outcome.TargetID != "" {
		target = b.scene.FindToken(outcome.TargetID)
	}
	o.publish(ctx, b.campaign.ID, EventAbilityUsed, actor, target, outcome.Message)
	o.publishStatusChanges(ctx, b, outcome.Effects)
}
