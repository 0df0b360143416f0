package sessionstore

import "errors"

var (
	// ErrUnknownAdapter is returned by the factory for adapter names outside
	// the supported set. A deployment mistake, fatal at startup.
	ErrUnknownAdapter = errors.New("sessionstore: unknown adapter")

	// ErrInvalidDirectory is returned when the configured storage directory
	// does not exist or is not a directory.
	ErrInvalidDirectory = errors.New("sessionstore: invalid storage directory")

	// ErrInvalidSessionID is returned for ids that are not safe to use as a
	// flat file name.
	ErrInvalidSessionID = errors.New("sessionstore: invalid session id")

	// ErrNilRedisClient is returned when the redis adapter is selected
	// without a connected client to inject.
	ErrNilRedisClient = errors.New("sessionstore: redis client is required")
)
