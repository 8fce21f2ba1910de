// Package catalog looks up spells and monster stat blocks from the D&D 5e API
// and converts them into the records abilities are built from.
package catalog

//go:generate mockgen -destination=mock/mock_client.go -package=catalogmock github.com/KirkDiggler/battlemap-api/internal/clients/catalog Client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apientities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/battlemap-api/internal/entities"
	"github.com/KirkDiggler/battlemap-api/internal/errors"
)

var (
	slugPattern  = regexp.MustCompile(`[^a-z0-9-]+`)
	dashesRegexp = regexp.MustCompile(`-+`)
)

// Slug turns a display name such as "Magic Missile" into an API key.
func Slug(s string) string {
	slug := strings.ToLower(strings.TrimSpace(s))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = dashesRegexp.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Client defines the catalog lookups the game board needs
type Client interface {
	// GetSpell fetches a spell by key or display name
	GetSpell(ctx context.Context, key string) (*entities.SpellRecord, error)

	// GetMonster fetches a monster stat block by key or display name
	GetMonster(ctx context.Context, key string) (*Monster, error)

	// GetMonsterAbility finds one named action in a monster stat block
	GetMonsterAbility(ctx context.Context, monsterKey, actionName string) (*entities.ActionRecord, error)
}

// Monster is the part of a stat block used on the board.
type Monster struct {
	Key       string
	Name      string
	HitPoints int
	Actions   []entities.ActionRecord
}

// api is the subset of the dnd5e client used here.
type api interface {
	GetSpell(key string) (*apientities.Spell, error)
	GetMonster(key string) (*apientities.Monster, error)
}

type client struct {
	api api
}

// Config contains configuration options for the catalog client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}

	vb := errors.NewValidationBuilder()
	if cfg.HTTPTimeout < 0 {
		vb.InvalidField("HTTPTimeout", "cannot be negative")
	}
	if cfg.CacheTTL < 0 {
		vb.InvalidField("CacheTTL", "cannot be negative")
	}
	return vb.Build()
}

// New creates a catalog client backed by the cached D&D 5e API client.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	return newClient(dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)), nil
}

func newClient(a api) *client {
	return &client{api: a}
}

func (c *client) GetSpell(_ context.Context, key string) (*entities.SpellRecord, error) {
	apiKey := Slug(key)
	if apiKey == "" {
		return nil, errors.InvalidArgument("spell key is required")
	}

	spell, err := c.api.GetSpell(apiKey)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get spell %s", apiKey)
	}
	if spell == nil {
		return nil, errors.NotFoundf("spell %s not found", apiKey)
	}

	return convertSpell(spell), nil
}

func (c *client) GetMonster(_ context.Context, key string) (*Monster, error) {
	apiKey := Slug(key)
	if apiKey == "" {
		return nil, errors.InvalidArgument("monster key is required")
	}

	monster, err := c.api.GetMonster(apiKey)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get monster %s", apiKey)
	}
	if monster == nil {
		return nil, errors.NotFoundf("monster %s not found", apiKey)
	}

	return convertMonster(monster), nil
}

func (c *client) GetMonsterAbility(ctx context.Context, monsterKey, actionName string) (*entities.ActionRecord, error) {
	if strings.TrimSpace(actionName) == "" {
		return nil, errors.InvalidArgument("action name is required")
	}

	monster, err := c.GetMonster(ctx, monsterKey)
	if err != nil {
		return nil, err
	}

	for i := range monster.Actions {
		if strings.EqualFold(monster.Actions[i].Name, strings.TrimSpace(actionName)) {
			action := monster.Actions[i]
			return &action, nil
		}
	}

	slog.Debug("monster action not found",
		"monster", monster.Key,
		"action", actionName,
		"available", len(monster.Actions))
	return nil, errors.NotFoundf("%s has no action named %s", monster.Name, actionName).
		WithMeta("monster_key", monster.Key)
}

func convertSpell(spell *apientities.Spell) *entities.SpellRecord {
	return &entities.SpellRecord{
		Key:         spell.Key,
		Name:        spell.Name,
		Level:       int(spell.SpellLevel),
		CastingTime: spell.CastingTime,
		Range:       spell.Range,
		Description: spellSummary(spell),
	}
}

// spellSummary is shown in the ability picker. The API client does not
// expose spell text, so it is assembled from the structured fields.
func spellSummary(spell *apientities.Spell) string {
	var parts []string
	if spell.SpellLevel == 0 {
		parts = append(parts, "Cantrip")
	} else {
		parts = append(parts, fmt.Sprintf("Level %d", spell.SpellLevel))
	}
	if spell.CastingTime != "" {
		parts = append(parts, "Casting Time: "+spell.CastingTime)
	}
	if spell.Range != "" {
		parts = append(parts, "Range: "+spell.Range)
	}
	if spell.Duration != "" {
		parts = append(parts, "Duration: "+spell.Duration)
	}
	return strings.Join(parts, ". ")
}

func convertMonster(monster *apientities.Monster) *Monster {
	out := &Monster{
		Key:       monster.Key,
		Name:      monster.Name,
		HitPoints: int(monster.HitPoints),
	}
	for _, action := range monster.MonsterActions {
		if action == nil {
			continue
		}
		out.Actions = append(out.Actions, entities.ActionRecord{
			Name:        action.Name,
			Description: action.Description,
			Type:        entities.ActionTypeAction,
		})
	}
	return out
}
