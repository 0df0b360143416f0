package serializer

import (
	"bytes"
	"encoding/gob"
	"errors"
)

func init() {
	gob.Register(map[string]any{})
	gob.Register([]any{})
}

// Gob serializes session data with the gob binary encoding. It is the default
// format: compact, fast, and requires no third-party dependency. Timestamps
// are carried through the same tagged structure as the other formats, so the
// stored bytes stay interchangeable at the data-model level.
type Gob struct{}

// Serialize implements Serializer.
func (Gob) Serialize(data map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(encodeTimes(data)); err != nil {
		return nil, errors.Join(ErrSerialize, err)
	}
	return buf.Bytes(), nil
}

// Deserialize implements Serializer.
func (Gob) Deserialize(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}

	var data map[string]any
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&data); err != nil {
		return nil, errors.Join(ErrDeserialize, err)
	}
	return decodeTimes(data), nil
}
