package serializer

import (
	"math"
	"time"
)

// Serializer converts session data to and from its stored byte representation.
// All implementations round-trip the same value set: strings, numbers, booleans,
// timestamps and nested maps. Swapping the implementation changes only the byte
// shape on the wire, never session behavior.
type Serializer interface {
	Serialize(data map[string]any) ([]byte, error)
	Deserialize(raw []byte) (map[string]any, error)
}

// Format identifies one of the built-in serializer implementations.
// The set is closed: the format is resolved once at startup, not per call.
type Format string

const (
	// FormatGob is the binary gob encoding, the default.
	FormatGob Format = "gob"
	// FormatJSON is the human-readable JSON encoding.
	FormatJSON Format = "json"
	// FormatMsgpack is the compact msgpack binary encoding.
	FormatMsgpack Format = "msgpack"
)

// New returns the serializer for the given format.
// Returns ErrUnknownFormat for formats outside the built-in set.
func New(format Format) (Serializer, error) {
	switch format {
	case FormatGob:
		return Gob{}, nil
	case FormatJSON:
		return JSON{}, nil
	case FormatMsgpack:
		return Msgpack{}, nil
	default:
		return nil, ErrUnknownFormat
	}
}

// ParseFormat resolves a configuration string into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatGob, FormatJSON, FormatMsgpack:
		return Format(s), nil
	default:
		return "", ErrUnknownFormat
	}
}

const (
	tagKey   = "type"
	tagValue = "datetime"
	valueKey = "value"
)

// encodeTimes returns a copy of data with every time.Time value rewritten into
// the tagged structure {"type": "datetime", "value": <epoch seconds>}, so that
// formats without a native timestamp type can carry it. The transform recurses
// into nested maps and is idempotent.
func encodeTimes(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for key, value := range data {
		switch v := value.(type) {
		case time.Time:
			out[key] = map[string]any{
				tagKey:   tagValue,
				valueKey: float64(v.UnixMicro()) / 1e6,
			}
		case map[string]any:
			out[key] = encodeTimes(v)
		default:
			out[key] = value
		}
	}
	return out
}

// decodeTimes rewrites every tagged datetime structure back into a time.Time.
// Maps that merely contain a "type" key with any other value are left alone.
func decodeTimes(data map[string]any) map[string]any {
	for key, value := range data {
		m, ok := value.(map[string]any)
		if !ok {
			continue
		}
		if m[tagKey] == tagValue {
			if ts, ok := epochSeconds(m[valueKey]); ok {
				data[key] = ts
				continue
			}
		}
		data[key] = decodeTimes(m)
	}
	return data
}

// epochSeconds converts the tagged numeric value back into a timestamp,
// tolerating the numeric types the different decoders produce.
func epochSeconds(value any) (time.Time, bool) {
	var seconds float64
	switch v := value.(type) {
	case float64:
		seconds = v
	case float32:
		seconds = float64(v)
	case int:
		seconds = float64(v)
	case int64:
		seconds = float64(v)
	case uint64:
		seconds = float64(v)
	default:
		return time.Time{}, false
	}
	return time.UnixMicro(int64(math.Round(seconds * 1e6))), true
}
