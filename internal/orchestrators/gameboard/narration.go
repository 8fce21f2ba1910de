package gameboard

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/battlemap-api/internal/clients/narration"
	"github.com/KirkDiggler/battlemap-api/internal/entities"
	"github.com/KirkDiggler/battlemap-api/internal/errors"
)

// MaxPromptLength bounds a narration prompt, in bytes.
const MaxPromptLength = 2000

// Narrate generates a story beat for the active scene and stores it on the
// scene. The generator runs without the board lock held.
func (o *orchestrator) Narrate(ctx context.Context, input *NarrateInput) (*NarrateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	prompt := strings.TrimSpace(input.Prompt)
	if prompt == "" {
		return nil, errors.InvalidArgument("prompt is required")
	}
	if len(prompt) > MaxPromptLength {
		return nil, errors.InvalidArgumentf("prompt is longer than %d bytes", MaxPromptLength)
	}

	ctx, span := o.startSpan(ctx, "Narrate", input.CampaignID)
	defer span.End()

	request, sceneID, err := o.narrationRequest(ctx, input.CampaignID, prompt)
	if err != nil {
		return nil, err
	}

	result, err := o.narrator.Generate(ctx, request)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "narration failed")
	}
	if !result.Success {
		slog.Warn("Narration was not produced",
			"campaign_id", input.CampaignID,
			"reason", result.Error,
		)
		return nil, errors.Unavailablef("narration failed: %s", result.Error)
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
	if scene.ID != sceneID {
		return nil, errors.FailedPrecondition("the scene changed while the narration was generated").
			WithMeta("scene_id", sceneID)
	}

	entry := &entities.Narration{
		ID:        o.ids.Narration.Generate(),
		Prompt:    prompt,
		Text:      result.Text,
		CreatedAt: o.clock.Now(),
	}
	warning, err := o.updateScene(ctx, b, command{
		name: "narration",
		apply: func() (mutation, error) {
			scene.Narrations = append(scene.Narrations, entry)
			return mutatedScene, nil
		},
		undo: func() {
			scene.Narrations = scene.Narrations[:len(scene.Narrations)-1]
		},
	})
	if err != nil {
		return nil, err
	}

	return &NarrateOutput{Narration: entry, Warning: warning}, nil
}

// narrationRequest summarizes the active scene under the board lock.
func (o *orchestrator) narrationRequest(ctx context.Context, campaignID, prompt string) (*narration.GenerateInput, string, error) {
	b, unlock, err := o.lockBoard(ctx, campaignID)
	if err != nil {
		return nil, "", err
	}
	defer unlock()

	scene, err := b.requireScene()
	if err != nil {
		return nil, "", err
	}

	request := &narration.GenerateInput{
		CampaignID: campaignID,
		SceneName:  scene.Name,
		Prompt:     prompt,
		InCombat:   b.scheduler.InCombat(),
		Round:      b.scheduler.Round(),
		Tokens:     make([]narration.TokenSummary, 0, len(scene.Tokens)),
	}
	for _, t := range scene.Tokens {
		statuses := make([]string, len(t.Statuses))
		for i, s := range t.Statuses {
			statuses[i] = string(s)
		}
		request.Tokens = append(request.Tokens, narration.TokenSummary{
			Name:     t.Name,
			Kind:     string(t.Kind),
			Statuses: statuses,
		})
	}
	return request, scene.ID, nil
}
