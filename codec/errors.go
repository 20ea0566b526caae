package codec

import "errors"

var (
	// ErrCodecNotFound is returned when a codec is not found in the registry
	ErrCodecNotFound = errors.New("codec not found")

	// ErrUnknownSignature is returned when no registered codec recognizes
	// the leading bytes of the data
	ErrUnknownSignature = errors.New("unknown file signature")
)
