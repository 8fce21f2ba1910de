package documents

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/battlemap-api/internal/errors"
)

// GetAs loads a document and decodes it into T.
func GetAs[T any](ctx context.Context, repo Repository, collection Collection, id string) (*T, error) {
	out, err := repo.Get(ctx, GetInput{Collection: collection, ID: id})
	if err != nil {
		return nil, err
	}

	var v T
	if err := json.Unmarshal(out.Document.Data, &v); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s/%s", collection, id)
	}
	return &v, nil
}

// ListAs decodes every document in a collection into T, skipping none.
func ListAs[T any](ctx context.Context, repo Repository, collection Collection) ([]*T, error) {
	out, err := repo.List(ctx, ListInput{Collection: collection})
	if err != nil {
		return nil, err
	}

	items := make([]*T, 0, len(out.Documents))
	for _, doc := range out.Documents {
		var v T
		if err := json.Unmarshal(doc.Data, &v); err != nil {
			return nil, errors.Wrapf(err, "failed to decode %s/%s", collection, doc.ID)
		}
		items = append(items, &v)
	}
	return items, nil
}

// SaveAs encodes v and saves it. Every encoded field overwrites the stored
// one; fields the stored document has and v does not encode are kept.
func SaveAs[T any](ctx context.Context, repo Repository, collection Collection, id string, v *T) error {
	if v == nil {
		return errors.InvalidArgumentf("cannot save nil %s document", collection)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s/%s", collection, id)
	}
	_, err = repo.Save(ctx, SaveInput{Collection: collection, ID: id, Data: data})
	return err
}
