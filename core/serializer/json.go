package serializer

import (
	"encoding/json"
	"errors"
)

// JSON serializes session data as a JSON object. The text form is convenient
// for inspecting stored sessions with standard tooling; timestamps appear as
// the tagged {"type":"datetime","value":<epoch>} structure.
type JSON struct{}

// Serialize implements Serializer.
func (JSON) Serialize(data map[string]any) ([]byte, error) {
	raw, err := json.Marshal(encodeTimes(data))
	if err != nil {
		return nil, errors.Join(ErrSerialize, err)
	}
	return raw, nil
}

// Deserialize implements Serializer.
func (JSON) Deserialize(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.Join(ErrDeserialize, err)
	}
	return decodeTimes(data), nil
}
