package gameboard

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/battlemap-api/internal/entities"
	"github.com/KirkDiggler/battlemap-api/internal/errors"
	"github.com/KirkDiggler/battlemap-api/internal/repositories/documents"
)

// CreateCampaign starts an empty campaign
func (o *orchestrator) CreateCampaign(ctx context.Context, input *CreateCampaignInput) (*CreateCampaignOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := o.clock.Now()
	campaign := &entities.Campaign{
		ID:        o.ids.Campaign.Generate(),
		Name:      input.Name,
		OwnerID:   input.OwnerID,
		SceneIDs:  []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, span := o.startSpan(ctx, "CreateCampaign", campaign.ID)
	defer span.End()

	if err := documents.SaveAs(ctx, o.docs, documents.CollectionCampaigns, campaign.ID, campaign); err != nil {
		return nil, errors.Wrap(err, "failed to save campaign")
	}

	slog.Info("Campaign created",
		"campaign_id", campaign.ID,
		"owner_id", campaign.OwnerID,
	)

	return &CreateCampaignOutput{Campaign: campaign}, nil
}

// SaveCharacter stores a character record
func (o *orchestrator) SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	character := input.Character

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", character.ID, vb)
	errors.ValidateRequired("name", character.Name, vb)
	errors.ValidateRange("dexterity", character.Dexterity, 1, 30, vb)
	if character.Speed < 0 {
		vb.InvalidField("speed", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	ctx, span := o.startSpan(ctx, "SaveCharacter", "")
	defer span.End()

	if err := documents.SaveAs(ctx, o.docs, documents.CollectionCharacters, character.ID, character); err != nil {
		return nil, errors.Wrapf(err, "failed to save character %s", character.ID)
	}

	return &SaveCharacterOutput{Character: character}, nil
}

// SaveEnemy stores an enemy record
func (o *orchestrator) SaveEnemy(ctx context.Context, input *SaveEnemyInput) (*SaveEnemyOutput, error) {
	if input == nil || input.Enemy == nil {
		return nil, errors.InvalidArgument("enemy is required")
	}
	enemy := input.Enemy

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", enemy.ID, vb)
	errors.ValidateRequired("name", enemy.Name, vb)
	errors.ValidateRange("dexterity", enemy.Dexterity, 1, 30, vb)
	if enemy.Speed < 0 {
		vb.InvalidField("speed", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	ctx, span := o.startSpan(ctx, "SaveEnemy", "")
	defer span.End()

	if err := documents.SaveAs(ctx, o.docs, documents.CollectionEnemies, enemy.ID, enemy); err != nil {
		return nil, errors.Wrapf(err, "failed to save enemy %s", enemy.ID)
	}

	return &SaveEnemyOutput{Enemy: enemy}, nil
}
