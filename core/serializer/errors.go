package serializer

import "errors"

var (
	// ErrUnknownFormat is returned when a serializer format outside the
	// built-in set is requested. This is a deployment mistake, fatal at startup.
	ErrUnknownFormat = errors.New("serializer: unknown format")

	// ErrSerialize is returned when session data cannot be encoded.
	ErrSerialize = errors.New("serializer: failed to serialize data")

	// ErrDeserialize is returned when stored bytes cannot be decoded.
	// Callers commonly treat this the same as missing data.
	ErrDeserialize = errors.New("serializer: failed to deserialize data")
)
