package gameboard

import (
	"time"

	"github.com/KirkDiggler/battlemap-api/internal/combat"
	"github.com/KirkDiggler/battlemap-api/internal/drawing"
	"github.com/KirkDiggler/battlemap-api/internal/entities"
	"github.com/KirkDiggler/battlemap-api/internal/geometry"
	"github.com/KirkDiggler/battlemap-api/internal/targeting"
)

// Input and output types double as the gRPC wire messages, so every field
// carries a JSON tag.

// ActivityEntry is one line of the board's activity feed.
type ActivityEntry struct {
	Type     string    `json:"type"`
	Message  string    `json:"message"`
	SourceID string    `json:"source_id,omitempty"`
	TargetID string    `json:"target_id,omitempty"`
	At       time.Time `json:"at"`
}

// CombatView is the turn tracker as shown to players.
type CombatView struct {
	InCombat   bool                  `json:"in_combat"`
	Round      int                   `json:"round,omitempty"`
	TurnIndex  int                   `json:"turn_index"`
	Active     *combat.Combatant     `json:"active,omitempty"`
	Combatants []*combat.Combatant   `json:"combatants,omitempty"`
	RollLog    []combat.RollLogEntry `json:"roll_log,omitempty"`
}

// BoardView is everything a client needs to render a campaign board.
type BoardView struct {
	Campaign     *entities.Campaign `json:"campaign"`
	Scene        *entities.Scene    `json:"scene,omitempty"`
	Combat       CombatView         `json:"combat"`
	Initiative   *combat.Roster     `json:"initiative,omitempty"`
	Targeting    *targeting.Session `json:"targeting,omitempty"`
	Tool         drawing.Tool       `json:"tool"`
	LastTool     drawing.Tool       `json:"last_tool"`
	Drawing      *entities.Shape    `json:"drawing,omitempty"`
	PendingShape *drawing.Pending   `json:"pending_shape,omitempty"`
	Viewport     drawing.Viewport   `json:"viewport"`
	Activity     []ActivityEntry    `json:"activity,omitempty"`
}

// CreateCampaignInput contains parameters for creating a campaign
type CreateCampaignInput struct {
	Name    string `json:"name"`
	OwnerID string `json:"owner_id,omitempty"`
}

// CreateCampaignOutput contains the created campaign
type CreateCampaignOutput struct {
	Campaign *entities.Campaign `json:"campaign"`
}

// SaveCharacterInput contains a character record to store
type SaveCharacterInput struct {
	Character *entities.CharacterRecord `json:"character"`
}

// SaveCharacterOutput contains the stored character record
type SaveCharacterOutput struct {
	Character *entities.CharacterRecord `json:"character"`
}

// SaveEnemyInput contains an enemy record to store
type SaveEnemyInput struct {
	Enemy *entities.EnemyRecord `json:"enemy"`
}

// SaveEnemyOutput contains the stored enemy record
type SaveEnemyOutput struct {
	Enemy *entities.EnemyRecord `json:"enemy"`
}

// CreateSceneInput contains parameters for adding a scene to a campaign
type CreateSceneInput struct {
	CampaignID    string `json:"campaign_id"`
	Name          string `json:"name"`
	BackgroundURL string `json:"background_url,omitempty"`
	WidthSquares  int    `json:"width_squares"`
	HeightSquares int    `json:"height_squares"`
	// Activate makes the new scene the active one. The first scene of a
	// campaign is always activated.
	Activate bool `json:"activate,omitempty"`
}

// CreateSceneOutput contains the created scene and the updated campaign
type CreateSceneOutput struct {
	Scene    *entities.Scene    `json:"scene"`
	Campaign *entities.Campaign `json:"campaign"`
}

// ActivateSceneInput selects the scene shown on the board
type ActivateSceneInput struct {
	CampaignID string `json:"campaign_id"`
	SceneID    string `json:"scene_id"`
}

// ActivateSceneOutput contains the board after the switch
type ActivateSceneOutput struct {
	Board *BoardView `json:"board"`
}

// DeleteSceneInput contains parameters for deleting a scene
type DeleteSceneInput struct {
	CampaignID string `json:"campaign_id"`
	SceneID    string `json:"scene_id"`
}

// DeleteSceneOutput contains the campaign after the delete
type DeleteSceneOutput struct {
	Campaign *entities.Campaign `json:"campaign"`
}

// TokenSpec describes a token to place.
type TokenSpec struct {
	Name        string             `json:"name,omitempty"`
	ImageURL    string             `json:"image_url,omitempty"`
	Kind        entities.TokenKind `json:"kind"`
	Position    geometry.Point     `json:"position"`
	CharacterID string             `json:"character_id,omitempty"`
	EnemyID     string             `json:"enemy_id,omitempty"`
	MaxHP       *int               `json:"max_hp,omitempty"`
	// MonsterKey fills in the name and hit points from the catalog when
	// they are not given.
	MonsterKey string `json:"monster_key,omitempty"`
}

// AddTokenInput contains parameters for placing a token on the active scene
type AddTokenInput struct {
	CampaignID string     `json:"campaign_id"`
	Token      *TokenSpec `json:"token"`
}

// AddTokenOutput contains the placed token
type AddTokenOutput struct {
	Token   *entities.Token `json:"token"`
	Warning string          `json:"warning,omitempty"`
}

// RemoveTokenInput contains parameters for removing a token
type RemoveTokenInput struct {
	CampaignID string `json:"campaign_id"`
	TokenID    string `json:"token_id"`
}

// RemoveTokenOutput contains the removed token and the resulting combat state
type RemoveTokenOutput struct {
	Token   *entities.Token `json:"token"`
	Combat  CombatView      `json:"combat"`
	Warning string          `json:"warning,omitempty"`
}

// MoveTokenInput contains parameters for moving a token
type MoveTokenInput struct {
	CampaignID string         `json:"campaign_id"`
	TokenID    string         `json:"token_id"`
	Position   geometry.Point `json:"position"`
}

// MoveTokenOutput contains the moved token. Movement is set when the move
// was charged against the active combatant.
type MoveTokenOutput struct {
	Token        *entities.Token        `json:"token"`
	DistanceFeet int                    `json:"distance_feet"`
	Movement     *combat.MovementResult `json:"movement,omitempty"`
	Warning      string                 `json:"warning,omitempty"`
}

// GetBoardInput identifies the board
type GetBoardInput struct {
	CampaignID string `json:"campaign_id"`
}

// GetBoardOutput contains the board
type GetBoardOutput struct {
	Board *BoardView `json:"board"`
}

// PrepareInitiativeInput opens the initiative dialog. An empty TokenIDs
// includes every token on the active scene.
type PrepareInitiativeInput struct {
	CampaignID string   `json:"campaign_id"`
	TokenIDs   []string `json:"token_ids,omitempty"`
}

// PrepareInitiativeOutput contains the fresh roster
type PrepareInitiativeOutput struct {
	Roster *combat.Roster `json:"roster"`
}

// RollInitiativeInput rolls for one token, or for all when TokenID is empty
type RollInitiativeInput struct {
	CampaignID string `json:"campaign_id"`
	TokenID    string `json:"token_id,omitempty"`
	OnlyUnset  bool   `json:"only_unset,omitempty"`
}

// RollInitiativeOutput contains the new rolls and the roster
type RollInitiativeOutput struct {
	Rolled []combat.RollLogEntry `json:"rolled"`
	Roster *combat.Roster        `json:"roster"`
}

// SetInitiativeInput records a manually entered initiative
type SetInitiativeInput struct {
	CampaignID string `json:"campaign_id"`
	TokenID    string `json:"token_id"`
	Value      int    `json:"value"`
}

// SetInitiativeOutput contains the roster
type SetInitiativeOutput struct {
	Roster *combat.Roster `json:"roster"`
}

// StartCombatInput starts combat from the prepared roster
type StartCombatInput struct {
	CampaignID string `json:"campaign_id"`
}

// StartCombatOutput contains the started encounter
type StartCombatOutput struct {
	Combat  CombatView               `json:"combat"`
	Expired []targeting.StatusChange `json:"expired,omitempty"`
	Warning string                   `json:"warning,omitempty"`
}

// NextTurnInput advances the turn
type NextTurnInput struct {
	CampaignID string `json:"campaign_id"`
}

// NextTurnOutput contains the transition and the statuses it expired
type NextTurnOutput struct {
	Transition combat.Transition        `json:"transition"`
	Combat     CombatView               `json:"combat"`
	Expired    []targeting.StatusChange `json:"expired,omitempty"`
	Warning    string                   `json:"warning,omitempty"`
}

// EndCombatInput ends the encounter
type EndCombatInput struct {
	CampaignID string `json:"campaign_id"`
}

// EndCombatOutput reports whether combat was running
type EndCombatOutput struct {
	Ended   bool                     `json:"ended"`
	Cleared []targeting.StatusChange `json:"cleared,omitempty"`
	Warning string                   `json:"warning,omitempty"`
}

// GetCombatStateInput identifies the board
type GetCombatStateInput struct {
	CampaignID string `json:"campaign_id"`
}

// GetCombatStateOutput contains the turn tracker and any open roster
type GetCombatStateOutput struct {
	Combat CombatView     `json:"combat"`
	Roster *combat.Roster `json:"roster,omitempty"`
}

// AbilityRef names an ability inline or by catalog reference. Spells with a
// SpellKey and monster abilities with a MonsterKey are looked up in the
// catalog; everything else is built from the inline fields.
type AbilityRef struct {
	Kind        targeting.AbilityKind `json:"kind"`
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	ActionType  entities.ActionType   `json:"action_type,omitempty"`
	SpellKey    string                `json:"spell_key,omitempty"`
	SpellLevel  int                   `json:"spell_level,omitempty"`
	CastingTime string                `json:"casting_time,omitempty"`
	Range       string                `json:"range,omitempty"`
	MonsterKey  string                `json:"monster_key,omitempty"`
}

// ListAbilitiesInput identifies a token
type ListAbilitiesInput struct {
	CampaignID string `json:"campaign_id"`
	TokenID    string `json:"token_id"`
}

// ListAbilitiesOutput contains the abilities the token can activate. During
// combat Economy is a copy of the token's action economy and YourTurn tells
// whether it may spend it now.
type ListAbilitiesOutput struct {
	Abilities []targeting.Ability `json:"abilities"`
	Economy   *combat.Combatant   `json:"economy,omitempty"`
	YourTurn  bool                `json:"your_turn"`
}

// ActivateAbilityInput starts an ability for ActorID
type ActivateAbilityInput struct {
	CampaignID string      `json:"campaign_id"`
	ActorID    string      `json:"actor_id"`
	Ability    *AbilityRef `json:"ability"`
}

// ActivateAbilityOutput contains the activation outcome
type ActivateAbilityOutput struct {
	Outcome    *targeting.Outcome `json:"outcome"`
	Initiative *combat.Roster     `json:"initiative,omitempty"`
	Warning    string             `json:"warning,omitempty"`
}

// SelectTargetInput completes the pending activation
type SelectTargetInput struct {
	CampaignID string `json:"campaign_id"`
	TargetID   string `json:"target_id"`
}

// SelectTargetOutput contains the resolution. When the ability starts
// combat, Initiative holds the freshly opened initiative dialog.
type SelectTargetOutput struct {
	Outcome    *targeting.Outcome `json:"outcome"`
	Initiative *combat.Roster     `json:"initiative,omitempty"`
	Warning    string             `json:"warning,omitempty"`
}

// CancelTargetingInput abandons the pending activation
type CancelTargetingInput struct {
	CampaignID string `json:"campaign_id"`
}

// CancelTargetingOutput reports whether an activation was pending
type CancelTargetingOutput struct {
	Cancelled bool `json:"cancelled"`
}

// SelectToolInput picks a drawing tool. Toggle switches between the pointer
// and the last used measurement tool and ignores Tool.
type SelectToolInput struct {
	CampaignID string       `json:"campaign_id"`
	Tool       drawing.Tool `json:"tool,omitempty"`
	Toggle     bool         `json:"toggle,omitempty"`
}

// SelectToolOutput contains the toolbox state
type SelectToolOutput struct {
	Tool     drawing.Tool `json:"tool"`
	LastUsed drawing.Tool `json:"last_used"`
}

// BeginShapeInput presses the active tool at a map point
type BeginShapeInput struct {
	CampaignID string         `json:"campaign_id"`
	At         geometry.Point `json:"at"`
	Color      string         `json:"color,omitempty"`
}

// BeginShapeOutput contains the seeded shape
type BeginShapeOutput struct {
	Drawing *entities.Shape `json:"drawing"`
}

// DragShapeInput moves the live edge of the shape
type DragShapeInput struct {
	CampaignID string         `json:"campaign_id"`
	To         geometry.Point `json:"to"`
}

// DragShapeOutput contains the live measurement
type DragShapeOutput struct {
	Measurement string          `json:"measurement"`
	Drawing     *entities.Shape `json:"drawing"`
}

// ReleaseShapeInput ends the gesture
type ReleaseShapeInput struct {
	CampaignID string `json:"campaign_id"`
}

// ReleaseShapeOutput contains the staged shape, or Discarded for a click
type ReleaseShapeOutput struct {
	Pending   *drawing.Pending `json:"pending,omitempty"`
	Discarded bool             `json:"discarded"`
}

// ConfirmShapeInput commits the staged shape
type ConfirmShapeInput struct {
	CampaignID string `json:"campaign_id"`
}

// ConfirmShapeOutput contains the committed shape
type ConfirmShapeOutput struct {
	Shape   *entities.Shape `json:"shape"`
	Warning string          `json:"warning,omitempty"`
}

// CancelShapeInput discards the live or staged shape
type CancelShapeInput struct {
	CampaignID string `json:"campaign_id"`
}

// CancelShapeOutput reports whether anything was discarded
type CancelShapeOutput struct {
	Cancelled bool `json:"cancelled"`
}

// AdjustViewportInput pans, zooms or resets the view
type AdjustViewportInput struct {
	CampaignID string              `json:"campaign_id"`
	PanX       float64             `json:"pan_x,omitempty"`
	PanY       float64             `json:"pan_y,omitempty"`
	Zoom       float64             `json:"zoom,omitempty"`
	Cursor     drawing.ScreenPoint `json:"cursor"`
	Reset      bool                `json:"reset,omitempty"`
}

// AdjustViewportOutput contains the viewport
type AdjustViewportOutput struct {
	Viewport drawing.Viewport `json:"viewport"`
}

// NarrateInput asks the narrator about the active scene
type NarrateInput struct {
	CampaignID string `json:"campaign_id"`
	Prompt     string `json:"prompt"`
}

// NarrateOutput contains the stored narration
type NarrateOutput struct {
	Narration *entities.Narration `json:"narration"`
	Warning   string              `json:"warning,omitempty"`
}
