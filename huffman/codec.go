package huffman

import (
	"github.com/cocosip/go-huffman-codec/codec"
)

// Ensure Codec implements codec.Codec
var _ codec.Codec = (*Codec)(nil)

// Codec implements the codec.Codec interface for the Huffman file format
type Codec struct{}

// NewCodec creates a new Huffman codec
func NewCodec() *Codec {
	return &Codec{}
}

// Encode compresses data into a complete .huff file
func (c *Codec) Encode(data []byte) ([]byte, error) {
	return Compress(data)
}

// Decode decompresses a complete .huff file
func (c *Codec) Decode(data []byte) ([]byte, error) {
	return Decompress(data)
}

// Signature returns the magic bytes opening every file of this codec
func (c *Codec) Signature() string {
	return Signature
}

// Name returns the human-readable name
func (c *Codec) Name() string {
	return "huffman"
}

// Extension returns the file extension of compressed output
func (c *Codec) Extension() string {
	return ".huff"
}

// Register registers this codec with the global registry
func init() {
	codec.Register(NewCodec())
}
