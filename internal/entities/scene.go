package entities

import (
	"slices"
	"time"

	"github.com/KirkDiggler/battlemap-api/internal/geometry"
)

// Scene is one map of a campaign.
type Scene struct {
	ID            string       `json:"id"`
	CampaignID    string       `json:"campaign_id"`
	Name          string       `json:"name"`
	BackgroundURL string       `json:"background_url,omitempty"`
	WidthSquares  int          `json:"width_squares"`
	HeightSquares int          `json:"height_squares"`
	Active        bool         `json:"active"`
	Tokens        []*Token     `json:"tokens"`
	Shapes        []*Shape     `json:"shapes"`
	Narrations    []*Narration `json:"narrations"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// Dimensions returns the grid size used for every feet conversion.
func (s *Scene) Dimensions() geometry.Dimensions {
	return geometry.Dimensions{WidthSquares: s.WidthSquares, HeightSquares: s.HeightSquares}
}

// FindToken returns the token with id or nil.
func (s *Scene) FindToken(id string) *Token {
	for _, t := range s.Tokens {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// RemoveToken removes the token and returns it with its former index so the
// removal can be undone with InsertToken.
func (s *Scene) RemoveToken(id string) (*Token, int) {
	for i, t := range s.Tokens {
		if t.ID == id {
			s.Tokens = append(s.Tokens[:i:i], s.Tokens[i+1:]...)
			return t, i
		}
	}
	return nil, -1
}

// InsertToken puts a token back at idx, appending when idx is out of bounds.
func (s *Scene) InsertToken(idx int, token *Token) {
	if idx < 0 || idx >= len(s.Tokens) {
		s.Tokens = append(s.Tokens, token)
		return
	}
	s.Tokens = append(s.Tokens[:idx], append([]*Token{token}, s.Tokens[idx:]...)...)
}

// Clone returns a deep copy. Shapes and narrations are never edited in
// place, so they are shared.
func (s *Scene) Clone() *Scene {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Tokens = make([]*Token, len(s.Tokens))
	for i, t := range s.Tokens {
		cp.Tokens[i] = t.Clone()
	}
	cp.Shapes = slices.Clone(s.Shapes)
	cp.Narrations = slices.Clone(s.Narrations)
	return &cp
}

// Narration is a generated story beat attached to a scene.
type Narration struct {
	ID        string    `json:"id"`
	Prompt    string    `json:"prompt"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Campaign groups scenes; at most one of them is active.
type Campaign struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	OwnerID       string    `json:"owner_id,omitempty"`
	SceneIDs      []string  `json:"scene_ids"`
	ActiveSceneID string    `json:"active_scene_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Clone returns a deep copy.
func (c *Campaign) Clone() *Campaign {
	if c == nil {
		return nil
	}
	cp := *c
	cp.SceneIDs = slices.Clone(c.SceneIDs)
	return &cp
}
