// Package gameboard runs campaign boards: scenes and tokens, initiative and
// turn order, ability targeting, measurement shapes and narration.
package gameboard

//go:generate mockgen -destination=mock/mock_service.go -package=gameboardmock github.com/KirkDiggler/battlemap-api/internal/orchestrators/gameboard Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/battlemap-api/internal/clients/catalog"
	"github.com/KirkDiggler/battlemap-api/internal/clients/narration"
	"github.com/KirkDiggler/battlemap-api/internal/combat"
	"github.com/KirkDiggler/battlemap-api/internal/errors"
	"github.com/KirkDiggler/battlemap-api/internal/pkg/clock"
	"github.com/KirkDiggler/battlemap-api/internal/pkg/idgen"
	combatsnapshot "github.com/KirkDiggler/battlemap-api/internal/repositories/combat_snapshot"
	"github.com/KirkDiggler/battlemap-api/internal/repositories/documents"
	"github.com/KirkDiggler/battlemap-api/internal/telemetry"
)

// Service defines the game board operations
type Service interface {
	// CreateCampaign starts an empty campaign
	CreateCampaign(ctx context.Context, input *CreateCampaignInput) (*CreateCampaignOutput, error)

	// SaveCharacter stores the character record tokens link to
	SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error)

	// SaveEnemy stores the enemy record tokens link to
	SaveEnemy(ctx context.Context, input *SaveEnemyInput) (*SaveEnemyOutput, error)

	// CreateScene adds a scene to a campaign
	CreateScene(ctx context.Context, input *CreateSceneInput) (*CreateSceneOutput, error)

	// ActivateScene switches the board to another scene
	ActivateScene(ctx context.Context, input *ActivateSceneInput) (*ActivateSceneOutput, error)

	// DeleteScene removes a scene; the last scene of a campaign cannot be removed
	DeleteScene(ctx context.Context, input *DeleteSceneInput) (*DeleteSceneOutput, error)

	// AddToken places a token on the active scene
	AddToken(ctx context.Context, input *AddTokenInput) (*AddTokenOutput, error)

	// RemoveToken takes a token off the active scene and out of combat
	RemoveToken(ctx context.Context, input *RemoveTokenInput) (*RemoveTokenOutput, error)

	// MoveToken moves a token, charging the active combatant's movement
	MoveToken(ctx context.Context, input *MoveTokenInput) (*MoveTokenOutput, error)

	// GetBoard returns everything needed to render the board
	GetBoard(ctx context.Context, input *GetBoardInput) (*GetBoardOutput, error)

	// PrepareInitiative opens the initiative dialog
	PrepareInitiative(ctx context.Context, input *PrepareInitiativeInput) (*PrepareInitiativeOutput, error)

	// RollInitiative rolls initiative for one or all roster entries
	RollInitiative(ctx context.Context, input *RollInitiativeInput) (*RollInitiativeOutput, error)

	// SetInitiative records a manually entered initiative
	SetInitiative(ctx context.Context, input *SetInitiativeInput) (*SetInitiativeOutput, error)

	// StartCombat orders the roster and starts the first turn
	StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error)

	// NextTurn advances the turn
	NextTurn(ctx context.Context, input *NextTurnInput) (*NextTurnOutput, error)

	// EndCombat ends the encounter
	EndCombat(ctx context.Context, input *EndCombatInput) (*EndCombatOutput, error)

	// GetCombatState returns the turn tracker
	GetCombatState(ctx context.Context, input *GetCombatStateInput) (*GetCombatStateOutput, error)

	// ListAbilities returns what a token can activate
	ListAbilities(ctx context.Context, input *ListAbilitiesInput) (*ListAbilitiesOutput, error)

	// ActivateAbility starts an ability
	ActivateAbility(ctx context.Context, input *ActivateAbilityInput) (*ActivateAbilityOutput, error)

	// SelectTarget completes the pending ability
	SelectTarget(ctx context.Context, input *SelectTargetInput) (*SelectTargetOutput, error)

	// CancelTargeting abandons the pending ability
	CancelTargeting(ctx context.Context, input *CancelTargetingInput) (*CancelTargetingOutput, error)

	// SelectTool picks a drawing tool
	SelectTool(ctx context.Context, input *SelectToolInput) (*SelectToolOutput, error)

	// BeginShape presses the active tool on the map
	BeginShape(ctx context.Context, input *BeginShapeInput) (*BeginShapeOutput, error)

	// DragShape updates the shape under the cursor
	DragShape(ctx context.Context, input *DragShapeInput) (*DragShapeOutput, error)

	// ReleaseShape stages the shape for confirmation
	ReleaseShape(ctx context.Context, input *ReleaseShapeInput) (*ReleaseShapeOutput, error)

	// ConfirmShape commits the staged shape to the scene
	ConfirmShape(ctx context.Context, input *ConfirmShapeInput) (*ConfirmShapeOutput, error)

	// CancelShape discards the live or staged shape
	CancelShape(ctx context.Context, input *CancelShapeInput) (*CancelShapeOutput, error)

	// AdjustViewport pans, zooms or resets the view
	AdjustViewport(ctx context.Context, input *AdjustViewportInput) (*AdjustViewportOutput, error)

	// Narrate generates a story beat for the active scene
	Narrate(ctx context.Context, input *NarrateInput) (*NarrateOutput, error)
}

// Config holds the dependencies for the game board orchestrator
type Config struct {
	Documents documents.Repository
	Snapshots combatsnapshot.Repository

	// Catalog is optional; without it abilities must be given inline.
	Catalog catalog.Client
	// Narrator defaults to a generator that reports Unavailable.
	Narrator narration.Generator
	// EventBus defaults to a private bus.
	EventBus events.EventBus
	// Roller defaults to the toolkit's crypto roller.
	Roller dice.Roller
	// IDs defaults to idgen.NewSet.
	IDs   idgen.Set
	Clock clock.Clock

	MovementPolicy           combat.MovementPolicy
	ClearStatusesOnCombatEnd bool

	Tracer trace.Tracer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Documents == nil {
		vb.RequiredField("Documents")
	}
	if c.Snapshots == nil {
		vb.RequiredField("Snapshots")
	}
	if _, err := combat.ParseMovementPolicy(string(c.MovementPolicy)); err != nil {
		vb.InvalidField("MovementPolicy", err.Error())
	}

	return vb.Build()
}

type orchestrator struct {
	docs      documents.Repository
	snapshots combatsnapshot.Repository
	catalog   catalog.Client
	narrator  narration.Generator
	bus       events.EventBus
	roller    dice.Roller
	ids       idgen.Set
	clock     clock.Clock
	tracer    trace.Tracer

	movementPolicy   combat.MovementPolicy
	clearOnCombatEnd bool

	mu     sync.RWMutex
	boards map[string]*board
}

// New creates a game board orchestrator with the provided dependencies
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	policy, _ := combat.ParseMovementPolicy(string(cfg.MovementPolicy))

	o := &orchestrator{
		docs:             cfg.Documents,
		snapshots:        cfg.Snapshots,
		catalog:          cfg.Catalog,
		narrator:         cfg.Narrator,
		bus:              cfg.EventBus,
		roller:           cfg.Roller,
		ids:              cfg.IDs,
		clock:            cfg.Clock,
		tracer:           cfg.Tracer,
		movementPolicy:   policy,
		clearOnCombatEnd: cfg.ClearStatusesOnCombatEnd,
		boards:           make(map[string]*board),
	}
	if o.narrator == nil {
		o.narrator = narration.NewDisabled()
	}
	if o.bus == nil {
		o.bus = events.NewBus()
	}
	if o.roller == nil {
		o.roller = dice.DefaultRoller
	}
	if o.ids.Campaign == nil {
		o.ids = idgen.NewSet()
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.tracer == nil {
		o.tracer = telemetry.Tracer()
	}

	o.subscribeActivity()

	return o, nil
}

// startSpan opens the span for one operation.
func (o *orchestrator) startSpan(ctx context.Context, op, campaignID string) (context.Context, trace.Span) {
	return o.tracer.Start(ctx, "gameboard."+op,
		trace.WithAttributes(attribute.String("campaign_id", campaignID)),
	)
}

// lockBoard loads the campaign's board and takes its lock. The caller must
// call the returned unlock.
func (o *orchestrator) lockBoard(ctx context.Context, campaignID string) (*board, func(), error) {
	if campaignID == "" {
		return nil, nil, errors.InvalidArgument("campaign_id is required")
	}

	b, err := o.board(ctx, campaignID)
	if err != nil {
		return nil, nil, err
	}
	b.mu.Lock()
	return b, b.mu.Unlock, nil
}

// board returns the cached board or loads it from the stores.
func (o *orchestrator) board(ctx context.Context, campaignID string) (*board, error) {
	o.mu.RLock()
	b, ok := o.boards[campaignID]
	o.mu.RUnlock()
	if ok {
		return b, nil
	}

	loaded, err := o.loadBoard(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if existing, ok := o.boards[campaignID]; ok {
		return existing, nil
	}
	o.boards[campaignID] = loaded

	slog.Info("Board loaded",
		"campaign_id", campaignID,
		"scene_id", loaded.sceneID(),
		"in_combat", loaded.scheduler.InCombat(),
	)
	return loaded, nil
}

// lookupBoard returns a cached board without loading it.
func (o *orchestrator) lookupBoard(campaignID string) *board {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.boards[campaignID]
}
