package gameboard

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/battlemap-api/internal/combat"
	"github.com/KirkDiggler/battlemap-api/internal/entities"
	"github.com/KirkDiggler/battlemap-api/internal/errors"
	"github.com/KirkDiggler/battlemap-api/internal/geometry"
	"github.com/KirkDiggler/battlemap-api/internal/repositories/documents"
	"github.com/KirkDiggler/battlemap-api/internal/targeting"
)

// Scene size bounds, in grid squares.
const (
	MinSceneSquares = 1
	MaxSceneSquares = 200
)

// CreateScene adds a scene to a campaign
func (o *orchestrator) CreateScene(ctx context.Context, input *CreateSceneInput) (*CreateSceneOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("campaign_id", input.CampaignID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateRange("width_squares", input.WidthSquares, MinSceneSquares, MaxSceneSquares, vb)
	errors.ValidateRange("height_squares", input.HeightSquares, MinSceneSquares, MaxSceneSquares, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	ctx, span := o.startSpan(ctx, "CreateScene", input.CampaignID)
	defer span.End()

	b, unlock, err := o.lockBoard(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	activate := input.Activate || b.scene == nil
	if activate && b.scheduler.InCombat() {
		return nil, errors.FailedPrecondition("end combat before switching scenes")
	}

	now := o.clock.Now()
	scene := &entities.Scene{
		ID:            o.ids.Scene.Generate(),
		CampaignID:    b.campaign.ID,
		Name:          input.Name,
		BackgroundURL: input.BackgroundURL,
		WidthSquares:  input.WidthSquares,
		HeightSquares: input.HeightSquares,
		Active:        activate,
		Tokens:        []*entities.Token{},
		Shapes:        []*entities.Shape{},
		Narrations:    []*entities.Narration{},
		CreatedAt:     now,
	}
	if err := o.persistScene(ctx, scene); err != nil {
		return nil, errors.Wrap(err, "failed to save scene")
	}

	previous := *b.campaign
	b.campaign.SceneIDs = append(slices.Clone(b.campaign.SceneIDs), scene.ID)
	if activate {
		b.campaign.ActiveSceneID = scene.ID
	}
	if err := o.persistCampaign(ctx, b.campaign); err != nil {
		*b.campaign = previous
		o.deleteSceneDocument(ctx, scene.ID)
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to add scene to campaign")
	}

	if activate {
		o.deactivate(ctx, b.scene)
		b.scene = scene
		b.resetInteraction()
	}

	slog.Info("Scene created",
		"campaign_id", b.campaign.ID,
		"scene_id", scene.ID,
		"active", activate,
	)

	return &CreateSceneOutput{Scene: scene.Clone(), Campaign: b.campaign.Clone()}, nil
}

// ActivateScene switches the board to another scene
func (o *orchestrator) ActivateScene(ctx context.Context, input *ActivateSceneInput) (*ActivateSceneOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SceneID == "" {
		return nil, errors.InvalidArgument("scene_id is required")
	}

	ctx, span := o.startSpan(ctx, "ActivateScene", input.CampaignID)
	defer span.End()

	b, unlock, err := o.lockBoard(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if b.sceneID() == input.SceneID {
		return &ActivateSceneOutput{Board: b.view()}, nil
	}
	if b.scheduler.InCombat() {
		return nil, errors.FailedPrecondition("end combat before switching scenes")
	}
	if !slices.Contains(b.campaign.SceneIDs, input.SceneID) {
		return nil, errors.NotFoundf("scene %s is not part of campaign %s", input.SceneID, b.campaign.ID)
	}

	next, err := documents.GetAs[entities.Scene](ctx, o.docs, documents.CollectionScenes, input.SceneID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load scene %s", input.SceneID)
	}

	previousActive := b.campaign.ActiveSceneID
	b.campaign.ActiveSceneID = next.ID
	if err := o.persistCampaign(ctx, b.campaign); err != nil {
		b.campaign.ActiveSceneID = previousActive
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to switch scenes")
	}

	o.deactivate(ctx, b.scene)
	o.activate(ctx, next)
	b.scene = next
	b.resetInteraction()

	return &ActivateSceneOutput{Board: b.view()}, nil
}

// DeleteScene removes a scene from its campaign
func (o *orchestrator) DeleteScene(ctx context.Context, input *DeleteSceneInput) (*DeleteSceneOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SceneID == "" {
		return nil, errors.InvalidArgument("scene_id is required")
	}

	ctx, span := o.startSpan(ctx, "DeleteScene", input.CampaignID)
	defer span.End()

	b, unlock, err := o.lockBoard(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	idx := slices.Index(b.campaign.SceneIDs, input.SceneID)
	if idx < 0 {
		return nil, errors.NotFoundf("scene %s is not part of campaign %s", input.SceneID, b.campaign.ID)
	}
	if len(b.campaign.SceneIDs) <= 1 {
		return nil, errors.FailedPrecondition("cannot delete the last scene of a campaign").
			WithMeta("scene_id", input.SceneID)
	}

	deletingActive := b.campaign.ActiveSceneID == input.SceneID
	if deletingActive && b.scheduler.InCombat() {
		return nil, errors.FailedPrecondition("end combat before deleting the active scene")
	}

	remaining := slices.Delete(slices.Clone(b.campaign.SceneIDs), idx, idx+1)

	var next *entities.Scene
	if deletingActive {
		next, err = documents.GetAs[entities.Scene](ctx, o.docs, documents.CollectionScenes, remaining[0])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load scene %s", remaining[0])
		}
	}

	previous := *b.campaign
	b.campaign.SceneIDs = remaining
	if deletingActive {
		b.campaign.ActiveSceneID = next.ID
	}
	if err := o.persistCampaign(ctx, b.campaign); err != nil {
		*b.campaign = previous
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to remove scene from campaign")
	}

	o.deleteSceneDocument(ctx, input.SceneID)

	if deletingActive {
		o.activate(ctx, next)
		b.scene = next
		b.resetInteraction()
	}

	slog.Info("Scene deleted",
		"campaign_id", b.campaign.ID,
		"scene_id", input.SceneID,
		"active_scene_id", b.campaign.ActiveSceneID,
	)

	return &DeleteSceneOutput{Campaign: b.campaign.Clone()}, nil
}

// AddToken places a token on the active scene
func (o *orchestrator) AddToken(ctx context.Context, input *AddTokenInput) (*AddTokenOutput, error) {
	if input == nil || input.Token == nil {
		return nil, errors.InvalidArgument("token is required")
	}

	ctx, span := o.startSpan(ctx, "AddToken", input.CampaignID)
	defer span.End()

	spec := *input.Token
	if err := o.fillFromCatalog(ctx, &spec); err != nil {
		return nil, err
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", spec.Name, vb)
	if !spec.Kind.Valid() {
		vb.InvalidField("kind", fmt.Sprintf("unknown token kind %q", spec.Kind))
	}
	if spec.MaxHP != nil && *spec.MaxHP <= 0 {
		vb.InvalidField("max_hp", "must be positive")
	}
	if err := vb.Build(); err != nil {
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

	token := &entities.Token{
		ID:          o.ids.Token.Generate(),
		Name:        spec.Name,
		ImageURL:    spec.ImageURL,
		Kind:        spec.Kind,
		Position:    geometry.Clamp(spec.Position),
		CharacterID: spec.CharacterID,
		EnemyID:     spec.EnemyID,
	}
	if spec.MaxHP != nil {
		maxHP, currentHP := *spec.MaxHP, *spec.MaxHP
		token.MaxHP = &maxHP
		token.CurrentHP = &currentHP
	}

	warning, err := o.updateScene(ctx, b, command{
		name: "add token",
		apply: func() (mutation, error) {
			scene.Tokens = append(scene.Tokens, token)
			return mutatedScene, nil
		},
		undo: func() {
			scene.RemoveToken(token.ID)
		},
	})
	if err != nil {
		return nil, err
	}

	return &AddTokenOutput{Token: token.Clone(), Warning: warning}, nil
}

// fillFromCatalog defaults a monster token's name, kind and hit points from
// its stat block.
func (o *orchestrator) fillFromCatalog(ctx context.Context, spec *TokenSpec) error {
	if spec.MonsterKey == "" {
		return nil
	}
	if spec.Kind == "" {
		spec.Kind = entities.TokenKindMonster
	}
	if spec.Name != "" && spec.MaxHP != nil {
		return nil
	}
	if o.catalog == nil {
		return errors.FailedPreconditionf("monster %s cannot be looked up without a catalog", spec.MonsterKey)
	}

	monster, err := o.catalog.GetMonster(ctx, spec.MonsterKey)
	if err != nil {
		return errors.Wrapf(err, "failed to look up monster %s", spec.MonsterKey)
	}
	if spec.Name == "" {
		spec.Name = monster.Name
	}
	if spec.MaxHP == nil && monster.HitPoints > 0 {
		hp := monster.HitPoints
		spec.MaxHP = &hp
	}
	return nil
}

// RemoveToken takes a token off the active scene and out of combat
func (o *orchestrator) RemoveToken(ctx context.Context, input *RemoveTokenInput) (*RemoveTokenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.TokenID == "" {
		return nil, errors.InvalidArgument("token_id is required")
	}

	ctx, span := o.startSpan(ctx, "RemoveToken", input.CampaignID)
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
	if scene.FindToken(input.TokenID) == nil {
		return nil, errors.NotFoundf("token %s is not on the scene", input.TokenID)
	}

	wasInCombat := b.scheduler.InCombat()
	wasActive := b.scheduler.IsActive(input.TokenID)
	previousCombat := b.scheduler.Snapshot()
	session := b.resolver.Session()

	var removed *entities.Token
	var idx int
	warning, err := o.updateScene(ctx, b, command{
		name: "remove token",
		apply: func() (mutation, error) {
			b.expired = nil
			removed, idx = scene.RemoveToken(input.TokenID)
			b.scheduler.Remove(input.TokenID)
			if session != nil && session.CasterID == input.TokenID {
				b.resolver.Cancel()
			}
			return mutatedScene, nil
		},
		undo: func() {
			scene.InsertToken(idx, removed)
			targeting.Revert(scene, b.expired)
			if err := b.scheduler.Restore(previousCombat); err != nil {
				slog.Error("Failed to restore combat after reverted removal",
					"campaign_id", b.campaign.ID,
					"error", err,
				)
			}
		},
	})
	if err != nil {
		return nil, err
	}

	switch {
	case wasInCombat && !b.scheduler.InCombat():
		o.publish(ctx, b.campaign.ID, EventCombatEnded, removed, nil,
			fmt.Sprintf("Combat ended: %s was the last combatant", removed.Name))
	case wasActive:
		active := b.scheduler.Active()
		o.publish(ctx, b.campaign.ID, EventTurnStarted, scene.FindToken(active.TokenID), nil,
			fmt.Sprintf("It is %s's turn", active.Name))
	}
	o.publishStatusChanges(ctx, b, b.expired)

	return &RemoveTokenOutput{
		Token:   removed.Clone(),
		Combat:  b.combatView(),
		Warning: warning,
	}, nil
}

// MoveToken moves a token. Only the active combatant pays movement; other
// tokens move freely.
func (o *orchestrator) MoveToken(ctx context.Context, input *MoveTokenInput) (*MoveTokenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.TokenID == "" {
		return nil, errors.InvalidArgument("token_id is required")
	}

	ctx, span := o.startSpan(ctx, "MoveToken", input.CampaignID)
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

	from := token.Position
	to := geometry.Clamp(input.Position)
	feet := geometry.MovementFeet(from, to, scene.Dimensions())

	var combatant *combat.Combatant
	if b.scheduler.IsActive(token.ID) {
		combatant = b.scheduler.Find(token.ID)
	}

	var movement *combat.MovementResult
	var remainingBefore int
	warning, err := o.updateScene(ctx, b, command{
		name: "move token",
		apply: func() (mutation, error) {
			if combatant != nil {
				remainingBefore = combatant.MovementRemaining
				result, err := combatant.SpendMovement(feet, o.movementPolicy)
				if err != nil {
					return mutatedNothing, err
				}
				movement = &result
			}
			token.Position = to
			return mutatedScene, nil
		},
		undo: func() {
			token.Position = from
			if combatant != nil {
				combatant.MovementRemaining = remainingBefore
			}
		},
	})
	if err != nil {
		return nil, err
	}

	return &MoveTokenOutput{
		Token:        token.Clone(),
		DistanceFeet: feet,
		Movement:     movement,
		Warning:      warning,
	}, nil
}

// GetBoard returns everything needed to render the board
func (o *orchestrator) GetBoard(ctx context.Context, input *GetBoardInput) (*GetBoardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.startSpan(ctx, "GetBoard", input.CampaignID)
	defer span.End()

	b, unlock, err := o.lockBoard(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return &GetBoardOutput{Board: b.view()}, nil
}

func (o *orchestrator) activate(ctx context.Context, scene *entities.Scene) {
	o.setActive(ctx, scene, true)
}

func (o *orchestrator) deactivate(ctx context.Context, scene *entities.Scene) {
	o.setActive(ctx, scene, false)
}

// setActive flips the scene's display flag. The campaign's ActiveSceneID is
// authoritative, so a failed write is only logged.
func (o *orchestrator) setActive(ctx context.Context, scene *entities.Scene, active bool) {
	if scene == nil || scene.Active == active {
		return
	}
	scene.Active = active
	if err := o.persistScene(ctx, scene); err != nil {
		slog.Warn("Failed to update scene active flag",
			"scene_id", scene.ID,
			"active", active,
			"error", err,
		)
	}
}

func (o *orchestrator) deleteSceneDocument(ctx context.Context, sceneID string) {
	_, err := o.docs.Delete(ctx, documents.DeleteInput{Collection: documents.CollectionScenes, ID: sceneID})
	if err != nil && !errors.IsNotFound(err) {
		slog.Warn("Failed to delete scene document",
			"scene_id", sceneID,
			"error", err,
		)
	}
}
