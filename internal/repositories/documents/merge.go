package documents

import (
	"bytes"
	"encoding/json"

	"github.com/KirkDiggler/battlemap-api/internal/errors"
)

const (
	errCollectionInvalid = "unknown collection %q"
	errIDEmpty           = "document ID cannot be empty"
	errDataNotObject     = "document data must be a JSON object"
)

func validateKey(collection Collection, id string) error {
	if !collection.Valid() {
		return errors.InvalidArgumentf(errCollectionInvalid, collection)
	}
	if id == "" {
		return errors.InvalidArgument(errIDEmpty)
	}
	return nil
}

func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errors.InvalidArgument(errDataNotObject)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, errDataNotObject)
	}
	return fields, nil
}

// merge overlays the top level fields of update onto existing. Nested
// objects are replaced, not merged. A nil existing means a new document.
func merge(existing, update []byte) (json.RawMessage, error) {
	patch, err := decodeObject(update)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return json.Marshal(patch)
	}

	base, err := decodeObject(existing)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "stored document is corrupt")
	}
	for k, v := range patch {
		base[k] = v
	}
	return json.Marshal(base)
}
