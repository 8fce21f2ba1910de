// Package narration asks a language model for flavour text describing the
// current scene.
package narration

//go:generate mockgen -destination=mock/mock_generator.go -package=narrationmock github.com/KirkDiggler/battlemap-api/internal/clients/narration Generator

import (
	"context"
	"fmt"
	"strings"
)

// Generator produces narration for a prompt.
type Generator interface {
	// Generate returns errors.Unavailable when the backend cannot be reached.
	// A reachable backend that refuses the prompt reports Success false.
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// TokenSummary describes one token for the prompt.
type TokenSummary struct {
	Name     string
	Kind     string
	Statuses []string
}

// GenerateInput contains the prompt and the scene it is about
type GenerateInput struct {
	CampaignID string
	SceneName  string
	Prompt     string
	Tokens     []TokenSummary
	InCombat   bool
	Round      int
}

// GenerateOutput carries the narration result
type GenerateOutput struct {
	Success bool
	Text    string
	Error   string
}

// sceneContext renders the scene for the model.
func sceneContext(input *GenerateInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Scene: %s\n", input.SceneName)
	if input.InCombat {
		fmt.Fprintf(&b, "Combat is under way, round %d.\n", input.Round)
	}
	for _, t := range input.Tokens {
		fmt.Fprintf(&b, "- %s (%s)", t.Name, t.Kind)
		if len(t.Statuses) > 0 {
			fmt.Fprintf(&b, " [%s]", strings.Join(t.Statuses, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}
