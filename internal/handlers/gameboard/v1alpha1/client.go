package v1alpha1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/KirkDiggler/battlemap-api/internal/errors"
	"github.com/KirkDiggler/battlemap-api/internal/orchestrators/gameboard"
)

// Client calls a remote GameBoardService. It satisfies gameboard.Service, so
// callers cannot tell it apart from the in-process orchestrator.
type Client struct {
	conn grpc.ClientConnInterface
}

var _ gameboard.Service = (*Client)(nil)

// NewClient wraps an open connection
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func invoke[O any](ctx context.Context, conn grpc.ClientConnInterface, method string, input any) (*O, error) {
	out := new(O)
	err := conn.Invoke(ctx, "/"+ServiceName+"/"+method, input, out, grpc.CallContentSubtype(CodecName))
	if err != nil {
		return nil, errors.FromGRPCError(err)
	}
	return out, nil
}

// CreateCampaign calls GameBoardService.CreateCampaign
func (c *Client) CreateCampaign(ctx context.Context, input *gameboard.CreateCampaignInput) (*gameboard.CreateCampaignOutput, error) {
	return invoke[gameboard.CreateCampaignOutput](ctx, c.conn, "CreateCampaign", input)
}

// SaveCharacter calls GameBoardService.SaveCharacter
func (c *Client) SaveCharacter(ctx context.Context, input *gameboard.SaveCharacterInput) (*gameboard.SaveCharacterOutput, error) {
	return invoke[gameboard.SaveCharacterOutput](ctx, c.conn, "SaveCharacter", input)
}

// SaveEnemy calls GameBoardService.SaveEnemy
func (c *Client) SaveEnemy(ctx context.Context, input *gameboard.SaveEnemyInput) (*gameboard.SaveEnemyOutput, error) {
	return invoke[gameboard.SaveEnemyOutput](ctx, c.conn, "SaveEnemy", input)
}

// CreateScene calls GameBoardService.CreateScene
func (c *Client) CreateScene(ctx context.Context, input *gameboard.CreateSceneInput) (*gameboard.CreateSceneOutput, error) {
	return invoke[gameboard.CreateSceneOutput](ctx, c.conn, "CreateScene", input)
}

// ActivateScene calls GameBoardService.ActivateScene
func (c *Client) ActivateScene(ctx context.Context, input *gameboard.ActivateSceneInput) (*gameboard.ActivateSceneOutput, error) {
	return invoke[gameboard.ActivateSceneOutput](ctx, c.conn, "ActivateScene", input)
}

// DeleteScene calls GameBoardService.DeleteScene
func (c *Client) DeleteScene(ctx context.Context, input *gameboard.DeleteSceneInput) (*gameboard.DeleteSceneOutput, error) {
	return invoke[gameboard.DeleteSceneOutput](ctx, c.conn, "DeleteScene", input)
}

// AddToken calls GameBoardService.AddToken
func (c *Client) AddToken(ctx context.Context, input *gameboard.AddTokenInput) (*gameboard.AddTokenOutput, error) {
	return invoke[gameboard.AddTokenOutput](ctx, c.conn, "AddToken", input)
}

// RemoveToken calls GameBoardService.RemoveToken
func (c *Client) RemoveToken(ctx context.Context, input *gameboard.RemoveTokenInput) (*gameboard.RemoveTokenOutput, error) {
	return invoke[gameboard.RemoveTokenOutput](ctx, c.conn, "RemoveToken", input)
}

// MoveToken calls GameBoardService.MoveToken
func (c *Client) MoveToken(ctx context.Context, input *gameboard.MoveTokenInput) (*gameboard.MoveTokenOutput, error) {
	return invoke[gameboard.MoveTokenOutput](ctx, c.conn, "MoveToken", input)
}

// GetBoard calls GameBoardService.GetBoard
func (c *Client) GetBoard(ctx context.Context, input *gameboard.GetBoardInput) (*gameboard.GetBoardOutput, error) {
	return invoke[gameboard.GetBoardOutput](ctx, c.conn, "GetBoard", input)
}

// PrepareInitiative calls GameBoardService.PrepareInitiative
func (c *Client) PrepareInitiative(ctx context.Context, input *gameboard.PrepareInitiativeInput) (*gameboard.PrepareInitiativeOutput, error) {
	return invoke[gameboard.PrepareInitiativeOutput](ctx, c.conn, "PrepareInitiative", input)
}

// RollInitiative calls GameBoardService.RollInitiative
func (c *Client) RollInitiative(ctx context.Context, input *gameboard.RollInitiativeInput) (*gameboard.RollInitiativeOutput, error) {
	return invoke[gameboard.RollInitiativeOutput](ctx, c.conn, "RollInitiative", input)
}

// SetInitiative calls GameBoardService.SetInitiative
func (c *Client) SetInitiative(ctx context.Context, input *gameboard.SetInitiativeInput) (*gameboard.SetInitiativeOutput, error) {
	return invoke[gameboard.SetInitiativeOutput](ctx, c.conn, "SetInitiative", input)
}

// StartCombat calls GameBoardService.StartCombat
func (c *Client) StartCombat(ctx context.Context, input *gameboard.StartCombatInput) (*gameboard.StartCombatOutput, error) {
	return invoke[gameboard.StartCombatOutput](ctx, c.conn, "StartCombat", input)
}

// NextTurn calls GameBoardService.NextTurn
func (c *Client) NextTurn(ctx context.Context, input *gameboard.NextTurnInput) (*gameboard.NextTurnOutput, error) {
	return invoke[gameboard.NextTurnOutput](ctx, c.conn, "NextTurn", input)
}

// EndCombat calls GameBoardService.EndCombat
func (c *Client) EndCombat(ctx context.Context, input *gameboard.EndCombatInput) (*gameboard.EndCombatOutput, error) {
	return invoke[gameboard.EndCombatOutput](ctx, c.conn, "EndCombat", input)
}

// GetCombatState calls GameBoardService.GetCombatState
func (c *Client) GetCombatState(ctx context.Context, input *gameboard.GetCombatStateInput) (*gameboard.GetCombatStateOutput, error) {
	return invoke[gameboard.GetCombatStateOutput](ctx, c.conn, "GetCombatState", input)
}

// ListAbilities calls GameBoardService.ListAbilities
func (c *Client) ListAbilities(ctx context.Context, input *gameboard.ListAbilitiesInput) (*gameboard.ListAbilitiesOutput, error) {
	return invoke[gameboard.ListAbilitiesOutput](ctx, c.conn, "ListAbilities", input)
}

// ActivateAbility calls GameBoardService.ActivateAbility
func (c *Client) ActivateAbility(ctx context.Context, input *gameboard.ActivateAbilityInput) (*gameboard.ActivateAbilityOutput, error) {
	return invoke[gameboard.ActivateAbilityOutput](ctx, c.conn, "ActivateAbility", input)
}

// SelectTarget calls GameBoardService.SelectTarget
func (c *Client) SelectTarget(ctx context.Context, input *gameboard.SelectTargetInput) (*gameboard.SelectTargetOutput, error) {
	return invoke[gameboard.SelectTargetOutput](ctx, c.conn, "SelectTarget", input)
}

// CancelTargeting calls GameBoardService.CancelTargeting
func (c *Client) CancelTargeting(ctx context.Context, input *gameboard.CancelTargetingInput) (*gameboard.CancelTargetingOutput, error) {
	return invoke[gameboard.CancelTargetingOutput](ctx, c.conn, "CancelTargeting", input)
}

// SelectTool calls GameBoardService.SelectTool
func (c *Client) SelectTool(ctx context.Context, input *gameboard.SelectToolInput) (*gameboard.SelectToolOutput, error) {
	return invoke[gameboard.SelectToolOutput](ctx, c.conn, "SelectTool", input)
}

// BeginShape calls GameBoardService.BeginShape
func (c *Client) BeginShape(ctx context.Context, input *gameboard.BeginShapeInput) (*gameboard.BeginShapeOutput, error) {
	return invoke[gameboard.BeginShapeOutput](ctx, c.conn, "BeginShape", input)
}

// DragShape calls GameBoardService.DragShape
func (c *Client) DragShape(ctx context.Context, input *gameboard.DragShapeInput) (*gameboard.DragShapeOutput, error) {
	return invoke[gameboard.DragShapeOutput](ctx, c.conn, "DragShape", input)
}

// ReleaseShape calls GameBoardService.ReleaseShape
func (c *Client) ReleaseShape(ctx context.Context, input *gameboard.ReleaseShapeInput) (*gameboard.ReleaseShapeOutput, error) {
	return invoke[gameboard.ReleaseShapeOutput](ctx, c.conn, "ReleaseShape", input)
}

// ConfirmShape calls GameBoardService.ConfirmShape
func (c *Client) ConfirmShape(ctx context.Context, input *gameboard.ConfirmShapeInput) (*gameboard.ConfirmShapeOutput, error) {
	return invoke[gameboard.ConfirmShapeOutput](ctx, c.conn, "ConfirmShape", input)
}

// CancelShape calls GameBoardService.CancelShape
func (c *Client) CancelShape(ctx context.Context, input *gameboard.CancelShapeInput) (*gameboard.CancelShapeOutput, error) {
	return invoke[gameboard.CancelShapeOutput](ctx, c.conn, "CancelShape", input)
}

// AdjustViewport calls GameBoardService.AdjustViewport
func (c *Client) AdjustViewport(ctx context.Context, input *gameboard.AdjustViewportInput) (*gameboard.AdjustViewportOutput, error) {
	return invoke[gameboard.AdjustViewportOutput](ctx, c.conn, "AdjustViewport", input)
}

// Narrate calls GameBoardService.Narrate
func (c *Client) Narrate(ctx context.Context, input *gameboard.NarrateInput) (*gameboard.NarrateOutput, error) {
	return invoke[gameboard.NarrateOutput](ctx, c.conn, "Narrate", input)
}
