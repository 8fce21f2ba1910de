package narration

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/KirkDiggler/battlemap-api/internal/errors"
)

const (
	// DefaultModel is used when Config.Model is empty
	DefaultModel = "gpt-4o-mini"

	systemPrompt = "You are the narrator of a Dungeons & Dragons session. " +
		"Describe what happens in two or three vivid sentences. Never decide rules outcomes."
)

// Config contains configuration for the OpenAI compatible generator.
type Config struct {
	// BaseURL of an OpenAI compatible API (optional)
	BaseURL string
	APIKey  string
	Model   string
	// Timeout for one generation (optional, defaults to 30 seconds)
	Timeout time.Duration
	// MaxRetries made by the client on transient failures
	MaxRetries int
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	vb := errors.NewValidationBuilder()
	if cfg.APIKey == "" && cfg.BaseURL == "" {
		vb.Field("APIKey", "is required unless BaseURL points at a keyless endpoint")
	}
	if cfg.MaxRetries < 0 {
		vb.InvalidField("MaxRetries", "cannot be negative")
	}
	return vb.Build()
}

type openAIGenerator struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAI creates a Generator backed by the chat completions API.
func NewOpenAI(cfg *Config) (Generator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []option.RequestOption{
		option.WithHTTPClient(&http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &openAIGenerator{
		client:  openai.NewClient(opts...),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

func (g *openAIGenerator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil || strings.TrimSpace(input.Prompt) == "" {
		return nil, errors.InvalidArgument("prompt is required")
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(sceneContext(input) + "\n" + input.Prompt),
		},
	})
	if err != nil {
		slog.Warn("narration request failed",
			"campaign_id", input.CampaignID,
			"error", err)
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "narration service unavailable")
	}

	if len(resp.Choices) == 0 {
		return &GenerateOutput{Error: "narrator returned no text"}, nil
	}
	choice := resp.Choices[0]
	text := strings.TrimSpace(choice.Message.Content)
	if text == "" {
		reason := "narrator returned no text"
		if choice.Message.Refusal != "" {
			reason = choice.Message.Refusal
		}
		return &GenerateOutput{Error: reason}, nil
	}

	return &GenerateOutput{Success: true, Text: text}, nil
}

// disabled is used when no narration backend is configured.
type disabled struct{}

// NewDisabled returns a Generator that always reports Unavailable.
func NewDisabled() Generator {
	return disabled{}
}

func (disabled) Generate(context.Context, *GenerateInput) (*GenerateOutput, error) {
	return nil, errors.Unavailable("narration is not configured")
}
