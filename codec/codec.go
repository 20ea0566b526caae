package codec

// Codec is the universal interface for all file codecs
type Codec interface {
	// Encode compresses a whole buffer into a self-describing file
	Encode(data []byte) ([]byte, error)

	// Decode recovers the original buffer from a compressed file
	Decode(data []byte) ([]byte, error)

	// Signature returns the magic bytes every compressed file starts with
	Signature() string

	// Name returns a human-readable name
	Name() string

	// Extension returns the file extension of compressed output, with dot
	Extension() string
}
