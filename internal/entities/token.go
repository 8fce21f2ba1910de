// Package entities holds the records a campaign board is made of.
package entities

import (
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/battlemap-api/internal/geometry"
)

// TokenKind classifies what a token represents.
type TokenKind string

const (
	TokenKindCharacter TokenKind = "character"
	TokenKindMonster   TokenKind = "monster"
	TokenKindNPC       TokenKind = "npc"
)

// Valid reports whether k is a known kind.
func (k TokenKind) Valid() bool {
	switch k {
	case TokenKindCharacter, TokenKindMonster, TokenKindNPC:
		return true
	}
	return false
}

// Status is a combat status tag carried by a token.
type Status string

const (
	StatusDodging    Status = "dodging"
	StatusHelping    Status = "helping"
	StatusDisengaged Status = "disengaged"
	StatusHidden     Status = "hidden"
)

// CombatStatuses are the tags the combat engine applies and expires.
var CombatStatuses = []Status{StatusDodging, StatusHelping, StatusDisengaged, StatusHidden}

// Token is an entity placed on a scene's map.
type Token struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	ImageURL    string         `json:"image_url,omitempty"`
	Kind        TokenKind      `json:"kind"`
	Position    geometry.Point `json:"position"`
	CurrentHP   *int           `json:"current_hp,omitempty"`
	MaxHP       *int           `json:"max_hp,omitempty"`
	Statuses    []Status       `json:"statuses,omitempty"`
	CharacterID string         `json:"character_id,omitempty"`
	EnemyID     string         `json:"enemy_id,omitempty"`
}

var _ core.Entity = (*Token)(nil)

// GetID returns the token's ID
func (t *Token) GetID() string {
	return t.ID
}

// GetType returns the token kind for rpg-toolkit events
func (t *Token) GetType() string {
	return string(t.Kind)
}

// HasStatus reports whether the tag is set.
func (t *Token) HasStatus(status Status) bool {
	return slices.Contains(t.Statuses, status)
}

// AddStatus sets the tag and reports whether it was newly added.
func (t *Token) AddStatus(status Status) bool {
	if t.HasStatus(status) {
		return false
	}
	t.Statuses = append(t.Statuses, status)
	return true
}

// RemoveStatus clears the tag and reports whether it was present.
func (t *Token) RemoveStatus(status Status) bool {
	idx := slices.Index(t.Statuses, status)
	if idx < 0 {
		return false
	}
	t.Statuses = slices.Delete(t.Statuses, idx, idx+1)
	return true
}

// Clone returns a deep copy.
func (t *Token) Clone() *Token {
	if t == nil {
		return nil
	}
	cp := *t
	if t.CurrentHP != nil {
		hp := *t.CurrentHP
		cp.CurrentHP = &hp
	}
	if t.MaxHP != nil {
		hp := *t.MaxHP
		cp.MaxHP = &hp
	}
	cp.Statuses = slices.Clone(t.Statuses)
	return &cp
}
