package gameboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/battlemap-api/internal/entities"
	"github.com/KirkDiggler/battlemap-api/internal/targeting"
)

// Board event types published on the event bus.
const (
	EventCombatStarted  = "battlemap.combat.started"
	EventTurnStarted    = "battlemap.turn.started"
	EventAbilityUsed    = "battlemap.ability.used"
	EventStatusChanged  = "battlemap.status.changed"
	EventCombatEnded    = "battlemap.combat.ended"
	EventShapeCommitted = "battlemap.shape.committed"
)

// Event context keys.
const (
	ContextCampaignID = "campaign_id"
	ContextMessage    = "message"
)

var boardEvents = []string{
	EventCombatStarted,
	EventTurnStarted,
	EventAbilityUsed,
	EventStatusChanged,
	EventCombatEnded,
	EventShapeCommitted,
}

const (
	activityLimit    = 50
	activityPriority = 100
)

// activityLog keeps the most recent board events. It has its own lock so the
// bus subscriber never needs the board lock the publisher holds.
type activityLog struct {
	mu    sync.Mutex
	limit int
	items []ActivityEntry
}

func newActivityLog(limit int) *activityLog {
	return &activityLog{limit: limit}
}

func (l *activityLog) add(entry ActivityEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = append(l.items, entry)
	if over := len(l.items) - l.limit; over > 0 {
		l.items = append([]ActivityEntry(nil), l.items[over:]...)
	}
}

func (l *activityLog) entries() []ActivityEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]ActivityEntry(nil), l.items...)
}

// subscribeActivity feeds every board event into the owning board's
// activity log.
func (o *orchestrator) subscribeActivity() {
	for _, eventType := range boardEvents {
		o.bus.SubscribeFunc(eventType, activityPriority, o.recordActivity)
	}
}

func (o *orchestrator) recordActivity(_ context.Context, e events.Event) error {
	campaignID := contextString(e, ContextCampaignID)
	message := contextString(e, ContextMessage)

	entry := ActivityEntry{
		Type:    e.Type(),
		Message: message,
		At:      o.clock.Now(),
	}
	if source := e.Source(); source != nil {
		entry.SourceID = source.GetID()
	}
	if target := e.Target(); target != nil {
		entry.TargetID = target.GetID()
	}

	slog.Info("Board event",
		"type", entry.Type,
		"campaign_id", campaignID,
		"source_id", entry.SourceID,
		"target_id", entry.TargetID,
		"message", message,
	)

	b := o.lookupBoard(campaignID)
	if b == nil {
		return nil
	}
	b.activity.add(entry)
	return nil
}

func contextString(e events.Event, key string) string {
	v, ok := e.Context().Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// publish emits a board event. Bus failures are logged; they never fail the
// operation that caused the event.
func (o *orchestrator) publish(ctx context.Context, campaignID, eventType string, source, target *entities.Token, message string) {
	event := events.NewGameEvent(eventType, entity(source), entity(target))
	event.Context().Set(ContextCampaignID, campaignID)
	event.Context().Set(ContextMessage, message)

	if err := o.bus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish board event",
			"type", eventType,
			"campaign_id", campaignID,
			"error", err,
		)
	}
}

// entity keeps a nil token from becoming a non-nil interface.
func entity(t *entities.Token) core.Entity {
	if t == nil {
		return nil
	}
	return t
}

func (o *orchestrator) publishStatusChanges(ctx context.Context, b *board, changes []targeting.StatusChange) {
	if b.scene == nil {
		return
	}
	for _, change := range changes {
		token := b.scene.FindToken(change.TokenID)
		if token == nil {
			continue
		}
		verb := "lost"
		if change.Applied {
			verb = "gained"
		}
		o.publish(ctx, b.campaign.ID, EventStatusChanged, nil, token,
			fmt.Sprintf("%s %s %s", token.Name, verb, change.Status))
	}
}
