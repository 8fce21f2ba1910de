package documents

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"github.com/KirkDiggler/battlemap-api/internal/errors"
	"github.com/KirkDiggler/battlemap-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/battlemap-api/internal/redis"
)

const (
	// Key pattern: doc:{collection}:{id}
	documentKeyPrefix = "doc:"
	// Index pattern: doc:{collection}:index
	indexKeySuffix = ":index"
)

// RedisConfig contains configuration for the Redis document repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// redisDocument is the stored value.
type redisDocument struct {
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewRedisRepository creates a Redis backed document store
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.Collection, input.ID); err != nil {
		return nil, err
	}

	stored, err := r.load(ctx, input.Collection, input.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, errors.NotFoundf("%s/%s not found", input.Collection, input.ID)
	}
	return &GetOutput{Document: stored.toDocument(input.Collection, input.ID)}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if !input.Collection.Valid() {
		return nil, errors.InvalidArgumentf(errCollectionInvalid, input.Collection)
	}

	ids, err := r.client.SMembers(ctx, indexKey(input.Collection)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s index", input.Collection)
	}
	if len(ids) == 0 {
		return &ListOutput{Documents: []*Document{}}, nil
	}
	sort.Strings(ids)

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = documentKey(input.Collection, id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", input.Collection)
	}

	docs := make([]*Document, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// index entry outlived its document
			slog.Warn("document index is stale",
				"collection", input.Collection,
				"id", ids[i])
			continue
		}
		var stored redisDocument
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal %s/%s", input.Collection, ids[i])
		}
		docs = append(docs, stored.toDocument(input.Collection, ids[i]))
	}
	return &ListOutput{Documents: docs}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateKey(input.Collection, input.ID); err != nil {
		return nil, err
	}

	current, err := r.load(ctx, input.Collection, input.ID)
	if err != nil {
		return nil, err
	}
	var existing []byte
	if current != nil {
		existing = current.Data
	}

	data, err := merge(existing, input.Data)
	if err != nil {
		return nil, err
	}
	stored := redisDocument{Data: data, UpdatedAt: r.clock.Now()}
	value, err := json.Marshal(stored)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal document")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, documentKey(input.Collection, input.ID), value, 0)
	pipe.SAdd(ctx, indexKey(input.Collection), input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save %s/%s", input.Collection, input.ID)
	}

	return &SaveOutput{Document: stored.toDocument(input.Collection, input.ID)}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.Collection, input.ID); err != nil {
		return nil, err
	}

	key := documentKey(input.Collection, input.ID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("%s/%s not found", input.Collection, input.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, indexKey(input.Collection), input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete %s/%s", input.Collection, input.ID)
	}

	return &DeleteOutput{}, nil
}

// load returns nil when the document does not exist.
func (r *redisRepository) load(ctx context.Context, collection Collection, id string) (*redisDocument, error) {
	raw, err := r.client.Get(ctx, documentKey(collection, id)).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to get %s/%s", collection, id)
	}

	var stored redisDocument
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal %s/%s", collection, id)
	}
	return &stored, nil
}

func (d *redisDocument) toDocument(collection Collection, id string) *Document {
	return &Document{
		Collection: collection,
		ID:         id,
		Data:       d.Data,
		UpdatedAt:  d.UpdatedAt,
	}
}

func documentKey(collection Collection, id string) string {
	return documentKeyPrefix + string(collection) + ":" + id
}

func indexKey(collection Collection) string {
	return documentKeyPrefix + string(collection) + indexKeySuffix
}
