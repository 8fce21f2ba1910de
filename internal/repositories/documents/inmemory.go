package documents

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/battlemap-api/internal/errors"
	"github.com/KirkDiggler/battlemap-api/internal/pkg/clock"
)

type inMemoryRepository struct {
	mu    sync.RWMutex
	docs  map[Collection]map[string]*Document
	clock clock.Clock
}

// NewInMemoryRepository creates a process local document store.
func NewInMemoryRepository(clk clock.Clock) Repository {
	if clk == nil {
		clk = clock.New()
	}
	return &inMemoryRepository{
		docs:  make(map[Collection]map[string]*Document),
		clock: clk,
	}
}

var _ Repository = (*inMemoryRepository)(nil)

func (r *inMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.Collection, input.ID); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[input.Collection][input.ID]
	if !ok {
		return nil, errors.NotFoundf("%s/%s not found", input.Collection, input.ID)
	}
	return &GetOutput{Document: copyDocument(doc)}, nil
}

func (r *inMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if !input.Collection.Valid() {
		return nil, errors.InvalidArgumentf(errCollectionInvalid, input.Collection)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := make([]*Document, 0, len(r.docs[input.Collection]))
	for _, doc := range r.docs[input.Collection] {
		docs = append(docs, copyDocument(doc))
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return &ListOutput{Documents: docs}, nil
}

func (r *inMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateKey(input.Collection, input.ID); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var existing []byte
	if doc, ok := r.docs[input.Collection][input.ID]; ok {
		existing = doc.Data
	}
	data, err := merge(existing, input.Data)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Collection: input.Collection,
		ID:         input.ID,
		Data:       data,
		UpdatedAt:  r.clock.Now(),
	}
	if r.docs[input.Collection] == nil {
		r.docs[input.Collection] = make(map[string]*Document)
	}
	r.docs[input.Collection][input.ID] = doc
	return &SaveOutput{Document: copyDocument(doc)}, nil
}

func (r *inMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.Collection, input.ID); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[input.Collection][input.ID]; !ok {
		return nil, errors.NotFoundf("%s/%s not found", input.Collection, input.ID)
	}
	delete(r.docs[input.Collection], input.ID)
	return &DeleteOutput{}, nil
}

func copyDocument(doc *Document) *Document {
	cp := *doc
	cp.Data = append([]byte(nil), doc.Data...)
	return &cp
}
