package serializer

import (
	"errors"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack serializes session data with the msgpack binary encoding. It is the
// most compact of the built-in formats and the natural choice when sessions
// live in a shared key-value store read by non-Go services.
type Msgpack struct{}

// Serialize implements Serializer.
func (Msgpack) Serialize(data map[string]any) ([]byte, error) {
	raw, err := msgpack.Marshal(encodeTimes(data))
	if err != nil {
		return nil, errors.Join(ErrSerialize, err)
	}
	return raw, nil
}

// Deserialize implements Serializer.
func (Msgpack) Deserialize(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}

	var data map[string]any
	if err := msgpack.Unmarshal(raw, &data); err != nil {
		return nil, errors.Join(ErrDeserialize, err)
	}
	return decodeTimes(data), nil
}
