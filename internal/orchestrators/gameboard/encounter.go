package gameboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/battlemap-api/internal/combat"
	"github.com/KirkDiggler/battlemap-api/internal/entities"
	"github.com/KirkDiggler/battlemap-api/internal/errors"
	"github.com/KirkDiggler/battlemap-api/internal/repositories/documents"
	"github.com/KirkDiggler/battlemap-api/internal/targeting"
)

// PrepareInitiative opens the initiative dialog for the active scene
func (o *orchestrator) PrepareInitiative(ctx context.Context, input *PrepareInitiativeInput) (*PrepareInitiativeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.startSpan(ctx, "PrepareInitiative", input.CampaignID)
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
	if b.scheduler.InCombat() {
		return nil, errors.FailedPrecondition("combat is already in progress")
	}

	tokens, err := selectTokens(scene, input.TokenIDs)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, errors.FailedPrecondition("there are no tokens on the scene to roll initiative for")
	}

	b.roster = combat.BuildRoster(tokens, o.loadStatBlocks(ctx, tokens))

	if len(b.roster.Missing) > 0 {
		slog.Warn("Initiative roster uses default stats",
			"campaign_id", b.campaign.ID,
			"token_ids", b.roster.Missing,
		)
	}

	return &PrepareInitiativeOutput{Roster: b.roster.Clone()}, nil
}

// selectTokens returns the requested tokens in scene order, or every token
// when ids is empty.
func selectTokens(scene *entities.Scene, ids []string) ([]*entities.Token, error) {
	if len(ids) == 0 {
		return append([]*entities.Token(nil), scene.Tokens...), nil
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		if scene.FindToken(id) == nil {
			return nil, errors.NotFoundf("token %s is not on the scene", id)
		}
		wanted[id] = true
	}

	tokens := make([]*entities.Token, 0, len(wanted))
	for _, t := range scene.Tokens {
		if wanted[t.ID] {
			tokens = append(tokens, t)
		}
	}
	return tokens, nil
}

// loadStatBlocks reads the records tokens link to. Records that cannot be
// read are left out and the roster falls back to defaults.
func (o *orchestrator) loadStatBlocks(ctx context.Context, tokens []*entities.Token) combat.StatBlocks {
	stats := combat.StatBlocks{
		Characters: make(map[string]*entities.CharacterRecord),
		Enemies:    make(map[string]*entities.EnemyRecord),
	}

	for _, token := range tokens {
		switch {
		case token.CharacterID != "":
			if _, ok := stats.Characters[token.CharacterID]; ok {
				continue
			}
			rec, err := documents.GetAs[entities.CharacterRecord](ctx, o.docs, documents.CollectionCharacters, token.CharacterID)
			if err != nil {
				logRecordError("character", token.CharacterID, err)
				continue
			}
			stats.Characters[token.CharacterID] = rec
		case token.EnemyID != "":
			if _, ok := stats.Enemies[token.EnemyID]; ok {
				continue
			}
			rec, err := documents.GetAs[entities.EnemyRecord](ctx, o.docs, documents.CollectionEnemies, token.EnemyID)
			if err != nil {
				logRecordError("enemy", token.EnemyID, err)
				continue
			}
			stats.Enemies[token.EnemyID] = rec
		}
	}

	return stats
}

func logRecordError(kind, id string, err error) {
	if errors.IsNotFound(err) {
		return
	}
	slog.Warn("Failed to load linked record",
		"kind", kind,
		"id", id,
		"error", err,
	)
}

// RollInitiative rolls for one roster entry, or all of them
func (o *orchestrator) RollInitiative(ctx context.Context, input *RollInitiativeInput) (*RollInitiativeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.startSpan(ctx, "RollInitiative", input.CampaignID)
	defer span.End()

	b, unlock, err := o.lockBoard(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if b.roster == nil {
		return nil, errors.FailedPrecondition("initiative has not been prepared")
	}

	var rolled []combat.RollLogEntry
	if input.TokenID != "" {
		entry, err := b.roster.Roll(input.TokenID, o.roller)
		if err != nil {
			return nil, err
		}
		rolled = []combat.RollLogEntry{entry}
	} else {
		rolled, err = b.roster.RollAll(o.roller, input.OnlyUnset)
		if err != nil {
			return nil, err
		}
	}

	for _, entry := range rolled {
		slog.Info("Initiative rolled",
			"campaign_id", b.campaign.ID,
			"token_id", entry.TokenID,
			"roll", entry.Description(),
		)
	}

	return &RollInitiativeOutput{Rolled: rolled, Roster: b.roster.Clone()}, nil
}

// SetInitiative records a manually entered initiative
func (o *orchestrator) SetInitiative(ctx context.Context, input *SetInitiativeInput) (*SetInitiativeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.TokenID == "" {
		return nil, errors.InvalidArgument("token_id is required")
	}

	ctx, span := o.startSpan(ctx, "SetInitiative", input.CampaignID)
	defer span.End()

	b, unlock, err := o.lockBoard(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if b.roster == nil {
		return nil, errors.FailedPrecondition("initiative has not been prepared")
	}
	if err := b.roster.Set(input.TokenID, input.Value); err != nil {
		return nil, err
	}

	return &SetInitiativeOutput{Roster: b.roster.Clone()}, nil
}

// StartCombat orders the roster and starts the first turn
func (o *orchestrator) StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.startSpan(ctx, "StartCombat", input.CampaignID)
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
	if b.scheduler.InCombat() {
		return nil, errors.FailedPrecondition("combat is already in progress")
	}
	if b.roster == nil {
		return nil, errors.FailedPrecondition("initiative has not been prepared")
	}

	// tokens removed while the dialog was open drop out
	entries := make([]*combat.InitiativeEntry, 0, len(b.roster.Entries))
	for _, e := range b.roster.Entries {
		if scene.FindToken(e.TokenID) != nil {
			entries = append(entries, e)
		}
	}
	ordered, err := combat.Order(entries)
	if err != nil {
		return nil, err
	}

	roster := b.roster
	warning, err := o.updateScene(ctx, b, command{
		name: "start combat",
		apply: func() (mutation, error) {
			b.expired = nil
			if _, err := b.scheduler.Start(ordered, roster.Log); err != nil {
				return mutatedNothing, err
			}
			b.roster = nil
			b.resolver.Cancel()
			return expiryMutation(b.expired), nil
		},
		undo: func() {
			targeting.Revert(scene, b.expired)
			b.scheduler.End()
			b.roster = roster
		},
	})
	if err != nil {
		return nil, err
	}

	first := b.scheduler.Active()
	slog.Info("Combat started",
		"campaign_id", b.campaign.ID,
		"combatants", len(ordered),
		"first", first.TokenID,
	)

	o.publish(ctx, b.campaign.ID, EventCombatStarted, nil, nil,
		fmt.Sprintf("Combat started with %d combatants", len(ordered)))
	o.publishStatusChanges(ctx, b, b.expired)
	o.publish(ctx, b.campaign.ID, EventTurnStarted, scene.FindToken(first.TokenID), nil,
		fmt.Sprintf("Round 1: %s's turn", first.Name))

	return &StartCombatOutput{
		Combat:  b.combatView(),
		Expired: b.expired,
		Warning: warning,
	}, nil
}

// NextTurn advances the turn. Any pending targeting is abandoned.
func (o *orchestrator) NextTurn(ctx context.Context, input *NextTurnInput) (*NextTurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.startSpan(ctx, "NextTurn", input.CampaignID)
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
	if !b.scheduler.InCombat() {
		return nil, errors.FailedPrecondition("combat is not in progress")
	}

	b.resolver.Cancel()

	previous := b.scheduler.Snapshot()
	var transition combat.Transition
	warning, err := o.updateScene(ctx, b, command{
		name: "next turn",
		apply: func() (mutation, error) {
			b.expired = nil
			t, err := b.scheduler.NextTurn()
			if err != nil {
				return mutatedNothing, err
			}
			transition = t
			return expiryMutation(b.expired), nil
		},
		undo: func() {
			targeting.Revert(scene, b.expired)
			if err := b.scheduler.Restore(previous); err != nil {
				slog.Error("Failed to restore combat after reverted turn",
					"campaign_id", b.campaign.ID,
					"error", err,
				)
			}
		},
	})
	if err != nil {
		return nil, err
	}

	o.publishStatusChanges(ctx, b, b.expired)
	o.publish(ctx, b.campaign.ID, EventTurnStarted, scene.FindToken(transition.Starting.TokenID), nil,
		fmt.Sprintf("Round %d: %s's turn", transition.Round, transition.Starting.Name))

	ending, starting := *transition.Ending, *transition.Starting
	transition.Ending, transition.Starting = &ending, &starting

	return &NextTurnOutput{
		Transition: transition,
		Combat:     b.combatView(),
		Expired:    b.expired,
		Warning:    warning,
	}, nil
}

// expiryMutation reports a scene change when turn hooks touched statuses.
func expiryMutation(expired []targeting.StatusChange) mutation {
	if len(expired) > 0 {
		return mutatedScene
	}
	return mutatedCombat
}

// EndCombat ends the encounter. Statuses stay on the tokens unless the
// board is configured to clear them.
func (o *orchestrator) EndCombat(ctx context.Context, input *EndCombatInput) (*EndCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.startSpan(ctx, "EndCombat", input.CampaignID)
	defer span.End()

	b, unlock, err := o.lockBoard(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	b.resolver.Cancel()
	b.roster = nil
	if !b.scheduler.InCombat() {
		return &EndCombatOutput{Ended: false}, nil
	}

	previous := b.scheduler.Snapshot()
	var cleared []targeting.StatusChange
	warning, err := o.updateScene(ctx, b, command{
		name: "end combat",
		apply: func() (mutation, error) {
			b.scheduler.End()
			if o.clearOnCombatEnd && b.scene != nil {
				cleared = clearCombatStatuses(b.scene)
			}
			if len(cleared) > 0 {
				return mutatedScene, nil
			}
			return mutatedCombat, nil
		},
		undo: func() {
			if b.scene != nil {
				targeting.Revert(b.scene, cleared)
			}
			if err := b.scheduler.Restore(previous); err != nil {
				slog.Error("Failed to restore combat after reverted end",
					"campaign_id", b.campaign.ID,
					"error", err,
				)
			}
		},
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Combat ended",
		"campaign_id", b.campaign.ID,
		"rounds", previous.Round,
		"cleared_statuses", len(cleared),
	)

	o.publishStatusChanges(ctx, b, cleared)
	o.publish(ctx, b.campaign.ID, EventCombatEnded, nil, nil,
		fmt.Sprintf("Combat ended after %d rounds", previous.Round))

	return &EndCombatOutput{
		Ended:   true,
		Cleared: cleared,
		Warning: warning,
	}, nil
}

func clearCombatStatuses(scene *entities.Scene) []targeting.StatusChange {
	var cleared []targeting.StatusChange
	for _, token := range scene.Tokens {
		for _, status := range entities.CombatStatuses {
			if token.RemoveStatus(status) {
				cleared = append(cleared, targeting.StatusChange{TokenID: token.ID, Status: status})
			}
		}
	}
	return cleared
}

// GetCombatState returns the turn tracker and any open initiative dialog
func (o *orchestrator) GetCombatState(ctx context.Context, input *GetCombatStateInput) (*GetCombatStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.startSpan(ctx, "GetCombatState", input.CampaignID)
	defer span.End()

	b, unlock, err := o.lockBoard(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return &GetCombatStateOutput{
		Combat: b.combatView(),
		Roster: b.roster.Clone(),
	}, nil
}
