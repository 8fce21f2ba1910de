package gameboard

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/battlemap-api/internal/combat"
	"github.com/KirkDiggler/battlemap-api/internal/drawing"
	"github.com/KirkDiggler/battlemap-api/internal/entities"
	"github.com/KirkDiggler/battlemap-api/internal/errors"
	combatsnapshot "github.com/KirkDiggler/battlemap-api/internal/repositories/combat_snapshot"
	"github.com/KirkDiggler/battlemap-api/internal/repositories/documents"
	"github.com/KirkDiggler/battlemap-api/internal/targeting"
)

// board is the live state of one campaign. Everything but activity is
// guarded by mu.
type board struct {
	mu sync.Mutex

	campaign  *entities.Campaign
	scene     *entities.Scene
	scheduler *combat.Scheduler
	resolver  *targeting.Resolver
	roster    *combat.Roster
	toolbox   *drawing.Toolbox
	sketch    *drawing.Sketch
	viewport  *drawing.Viewport

	// expired collects the status changes made by turn hooks during one
	// scheduler call so they can be reported and undone.
	expired []targeting.StatusChange

	activity *activityLog
}

func newBoard(campaign *entities.Campaign, scene *entities.Scene) *board {
	b := &board{
		campaign: campaign,
		scene:    scene,
		toolbox:  drawing.NewToolbox(),
		sketch:   drawing.NewSketch(),
		viewport: drawing.NewViewport(),
		activity: newActivityLog(activityLimit),
	}
	b.scheduler = combat.NewScheduler(&statusExpiry{b: b})
	b.resolver = targeting.NewResolver(b.scheduler)
	return b
}

func (b *board) sceneID() string {
	if b.scene == nil {
		return ""
	}
	return b.scene.ID
}

// requireScene returns the active scene or FailedPrecondition.
func (b *board) requireScene() (*entities.Scene, error) {
	if b.scene == nil {
		return nil, errors.FailedPreconditionf("campaign %s has no active scene", b.campaign.ID)
	}
	return b.scene, nil
}

// resetInteraction drops everything tied to the scene on screen.
func (b *board) resetInteraction() {
	b.resolver.Cancel()
	b.sketch.Cancel()
	b.roster = nil
}

// combatView copies the encounter; views outlive the board lock.
func (b *board) combatView() CombatView {
	snap := b.scheduler.Snapshot()
	view := CombatView{
		InCombat:   snap.InCombat,
		Round:      snap.Round,
		TurnIndex:  snap.TurnIndex,
		Combatants: snap.Combatants,
		RollLog:    snap.InitiativeRollLog,
	}
	if snap.InCombat {
		view.Active = snap.Combatants[snap.TurnIndex]
	}
	return view
}

func (b *board) view() *BoardView {
	view := &BoardView{
		Campaign:   b.campaign.Clone(),
		Scene:      b.scene.Clone(),
		Combat:     b.combatView(),
		Initiative: b.roster.Clone(),
		Targeting:  b.resolver.Session(),
		Tool:       b.toolbox.Active(),
		LastTool:   b.toolbox.LastUsed(),
		Viewport:   *b.viewport,
		Activity:   b.activity.entries(),
	}
	if d := b.sketch.Drawing(); d != nil {
		shape := *d
		view.Drawing = &shape
	}
	if p := b.sketch.Pending(); p != nil {
		pending := *p
		shape := *p.Shape
		pending.Shape = &shape
		view.PendingShape = &pending
	}
	return view
}

// statusExpiry clears the statuses that last until a token's own turn
// boundary: disengaged at the end of its turn, dodging and helping at the
// start of its next one.
type statusExpiry struct {
	b *board
}

func (h *statusExpiry) OnTurnEnd(c *combat.Combatant) {
	h.clear(c.TokenID, entities.StatusDisengaged)
}

func (h *statusExpiry) OnTurnStart(c *combat.Combatant) {
	h.clear(c.TokenID, entities.StatusDodging, entities.StatusHelping)
}

func (h *statusExpiry) clear(tokenID string, statuses ...entities.Status) {
	if h.b.scene == nil {
		return
	}
	token := h.b.scene.FindToken(tokenID)
	if token == nil {
		return
	}
	for _, status := range statuses {
		if token.RemoveStatus(status) {
			h.b.expired = append(h.b.expired, targeting.StatusChange{TokenID: tokenID, Status: status})
		}
	}
}

// loadBoard reads the campaign, its active scene and any saved encounter.
func (o *orchestrator) loadBoard(ctx context.Context, campaignID string) (*board, error) {
	campaign, err := documents.GetAs[entities.Campaign](ctx, o.docs, documents.CollectionCampaigns, campaignID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load campaign %s", campaignID)
	}

	var scene *entities.Scene
	if campaign.ActiveSceneID != "" {
		scene, err = documents.GetAs[entities.Scene](ctx, o.docs, documents.CollectionScenes, campaign.ActiveSceneID)
		if err != nil {
			if !errors.IsNotFound(err) {
				return nil, errors.Wrapf(err, "failed to load scene %s", campaign.ActiveSceneID)
			}
			slog.Warn("Active scene is missing",
				"campaign_id", campaignID,
				"scene_id", campaign.ActiveSceneID,
			)
			scene = nil
		}
	}

	b := newBoard(campaign, scene)

	snap, err := o.snapshots.Load(ctx, combatsnapshot.LoadInput{CampaignID: campaignID})
	if err != nil {
		// the encounter is lost but the board is usable
		slog.Warn("Failed to load combat snapshot",
			"campaign_id", campaignID,
			"error", err,
		)
		return b, nil
	}
	if snap.Snapshot == nil || scene == nil {
		return b, nil
	}

	if err := b.scheduler.Restore(snap.Snapshot); err != nil {
		slog.Warn("Discarding invalid combat snapshot",
			"campaign_id", campaignID,
			"error", err,
		)
		return b, nil
	}
	b.expired = nil
	for _, c := range snap.Snapshot.Combatants {
		if scene.FindToken(c.TokenID) == nil {
			b.scheduler.Remove(c.TokenID)
		}
	}
	if len(b.expired) > 0 {
		// pruning handed the turn on and the new combatant's statuses expired
		if err := o.persistScene(ctx, scene); err != nil {
			targeting.Revert(scene, b.expired)
			slog.Warn("Failed to save statuses expired while restoring combat",
				"campaign_id", campaignID,
				"scene_id", scene.ID,
				"error", err,
			)
		}
		b.expired = nil
	}

	return b, nil
}

// mutation says what a command changed.
type mutation int

const (
	mutatedNothing mutation = iota
	// mutatedCombat changed only the encounter; the scene needs no save.
	mutatedCombat
	mutatedScene
)

// command is one undoable board mutation. undo must restore every piece of
// state apply touched.
type command struct {
	name  string
	apply func() (mutation, error)
	undo  func()
}

// updateScene applies cmd and persists the scene. When the save fails the
// command is undone and Unavailable is returned. A committed change then
// refreshes the combat snapshot; a failure there only yields a warning.
func (o *orchestrator) updateScene(ctx context.Context, b *board, cmd command) (string, error) {
	changed, err := cmd.apply()
	if err != nil {
		return "", err
	}
	if changed == mutatedNothing {
		return "", nil
	}

	if changed == mutatedScene {
		if err := o.persistScene(ctx, b.scene); err != nil {
			cmd.undo()
			slog.Error("Scene update reverted",
				"command", cmd.name,
				"campaign_id", b.campaign.ID,
				"scene_id", b.sceneID(),
				"error", err,
			)
			return "", errors.WrapWithCodef(err, errors.CodeUnavailable, "%s was not saved and has been reverted", cmd.name)
		}
	}

	return o.saveSnapshot(ctx, b), nil
}

func (o *orchestrator) persistScene(ctx context.Context, scene *entities.Scene) error {
	if scene == nil {
		return errors.Internal("no scene to save")
	}
	previous := scene.UpdatedAt
	scene.UpdatedAt = o.clock.Now()
	if err := documents.SaveAs(ctx, o.docs, documents.CollectionScenes, scene.ID, scene); err != nil {
		scene.UpdatedAt = previous
		return err
	}
	return nil
}

func (o *orchestrator) persistCampaign(ctx context.Context, campaign *entities.Campaign) error {
	previous := campaign.UpdatedAt
	campaign.UpdatedAt = o.clock.Now()
	if err := documents.SaveAs(ctx, o.docs, documents.CollectionCampaigns, campaign.ID, campaign); err != nil {
		campaign.UpdatedAt = previous
		return err
	}
	return nil
}

// saveSnapshot writes the encounter, or clears it out of combat. It returns
// a warning for the caller when the write fails.
func (o *orchestrator) saveSnapshot(ctx context.Context, b *board) string {
	campaignID := b.campaign.ID

	var err error
	if b.scheduler.InCombat() {
		_, err = o.snapshots.Save(ctx, combatsnapshot.SaveInput{
			CampaignID: campaignID,
			Snapshot:   b.scheduler.Snapshot(),
		})
	} else {
		_, err = o.snapshots.Clear(ctx, combatsnapshot.ClearInput{CampaignID: campaignID})
	}
	if err != nil {
		slog.Warn("Failed to save combat snapshot",
			"campaign_id", campaignID,
			"in_combat", b.scheduler.InCombat(),
			"error", err,
		)
		return snapshotWarning
	}
	return ""
}

const snapshotWarning = "combat state was not saved and may be lost on reload"
