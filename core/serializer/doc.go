// Package serializer converts session data to and from its stored byte
// representation.
//
// Three interchangeable formats are provided behind one interface: gob
// (binary, the default), JSON (text) and msgpack (compact binary). The format
// is selected once at startup, typically from configuration:
//
//	format, err := serializer.ParseFormat(cfg.Serializer)
//	if err != nil {
//		log.Fatal(err)
//	}
//	s, _ := serializer.New(format)
//
// # Timestamp Tagging
//
// Not every format has a native timestamp type, so every implementation
// applies the same transform before encoding: a time.Time value is rewritten
// into the tagged structure
//
//	{"type": "datetime", "value": <epoch seconds>}
//
// and rewritten back into a time.Time on decode. The transform recurses into
// nested maps and is idempotent. A map value that merely happens to contain a
// "type" key with any value other than "datetime" is left untouched, so
// application data cannot be rewritten by accident.
//
// External tools reading stored sessions directly must apply the matching
// Deserialize and understand this tagging convention to recover timestamp
// fields correctly.
//
// # Value Fidelity
//
// JSON decodes all numbers as float64; gob and msgpack preserve integer
// types. Applications that care about exact numeric types after a round trip
// should use one of the binary formats.
package serializer
