package huffman

import "github.com/pkg/errors"

// Errors returned by the Huffman file codec
var (
	// ErrFormat is returned when the compressed input lacks the signature or
	// carries a malformed or truncated header
	ErrFormat = errors.New("huffman: invalid file format")

	// ErrCorruptData is returned when the payload does not decode to exactly
	// the symbols announced by the frequency table
	ErrCorruptData = errors.New("huffman: corrupt data")

	// ErrEmptyTree is returned when codes are requested from a tree built
	// from an empty frequency table
	ErrEmptyTree = errors.New("huffman: empty tree")
)
