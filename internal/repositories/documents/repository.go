// Package documents is the campaign document store. Documents are JSON
// objects addressed by collection and ID; saves merge top level fields into
// whatever is already stored.
package documents

//go:generate mockgen -destination=mock/mock_repository.go -package=documentsmock github.com/KirkDiggler/battlemap-api/internal/repositories/documents Repository

import (
	"context"
	"encoding/json"
	"time"
)

// Collection names a group of documents.
type Collection string

const (
	CollectionCampaigns  Collection = "campaigns"
	CollectionScenes     Collection = "scenes"
	CollectionCharacters Collection = "characters"
	CollectionEnemies    Collection = "enemies"
)

// Valid reports whether c is a known collection.
func (c Collection) Valid() bool {
	switch c {
	case CollectionCampaigns, CollectionScenes, CollectionCharacters, CollectionEnemies:
		return true
	default:
		return false
	}
}

// Document is one stored JSON object.
type Document struct {
	Collection Collection
	ID         string
	Data       json.RawMessage
	UpdatedAt  time.Time
}

// Repository defines the interface for document persistence
type Repository interface {
	// Get retrieves a document
	// Returns errors.InvalidArgument for an unknown collection or empty ID
	// Returns errors.NotFound if the document doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every document in a collection ordered by ID
	// Returns errors.InvalidArgument for an unknown collection
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Save creates a document or merges Data into the stored one
	// Returns errors.InvalidArgument when Data is not a JSON object
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a document
	// Returns errors.NotFound if the document doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting a document
type GetInput struct {
	Collection Collection
	ID         string
}

// GetOutput defines the output for getting a document
type GetOutput struct {
	Document *Document
}

// ListInput defines the input for listing a collection
type ListInput struct {
	Collection Collection
}

// ListOutput defines the output for listing a collection
type ListOutput struct {
	Documents []*Document
}

// SaveInput defines the input for saving a document
type SaveInput struct {
	Collection Collection
	ID         string
	Data       json.RawMessage
}

// SaveOutput holds the document as stored after the merge
type SaveOutput struct {
	Document *Document
}

// DeleteInput defines the input for deleting a document
type DeleteInput struct {
	Collection Collection
	ID         string
}

// DeleteOutput defines the output for deleting a document
type DeleteOutput struct{}
