// Package service exposes compression operations to the transports.
package service

import (
	"github.com/pkg/errors"

	"github.com/cocosip/go-huffman-codec/codec"
	"github.com/cocosip/go-huffman-codec/huffman"
	"github.com/cocosip/go-huffman-codec/internal/logger"
)

// DefaultCodec is used for compression when no codec is named
const DefaultCodec = "huffman"

// CodecService runs compress, decompress and analyze requests. Calls are
// independent and safe for concurrent use.
type CodecService struct {
	registry *codec.Registry
	logger   logger.Logger
}

// NewCodecService creates a service backed by the global codec registry.
func NewCodecService(l logger.Logger) *CodecService {
	reg := codec.NewRegistry()
	for _, c := range codec.List() {
		reg.Register(c)
	}
	return NewCodecServiceWithRegistry(reg, l)
}

// NewCodecServiceWithRegistry creates a service backed by reg.
func NewCodecServiceWithRegistry(reg *codec.Registry, l logger.Logger) *CodecService {
	return &CodecService{registry: reg, logger: l}
}

// Compress encodes data with the named codec (DefaultCodec when empty).
func (s *CodecService) Compress(name string, data []byte) ([]byte, codec.Codec, error) {
	if name == "" {
		name = DefaultCodec
	}
	c, err := s.registry.Get(name)
	if err != nil {
		return nil, nil, err
	}

	out, err := c.Encode(data)
	if err != nil {
		s.logger.Errorf("%s compress of %d bytes failed: %v", c.Name(), len(data), err)
		return nil, nil, errors.Wrapf(err, "%s compress", c.Name())
	}
	s.logger.Debugf("%s compressed %d -> %d bytes", c.Name(), len(data), len(out))
	return out, c, nil
}

// Decompress detects the codec from the file signature and decodes data.
func (s *CodecService) Decompress(data []byte) ([]byte, codec.Codec, error) {
	c, err := s.registry.Detect(data)
	if err != nil {
		return nil, nil, err
	}

	out, err := c.Decode(data)
	if err != nil {
		s.logger.Infof("%s decompress of %d bytes rejected: %v", c.Name(), len(data), err)
		return nil, nil, err
	}
	s.logger.Debugf("%s decompressed %d -> %d bytes", c.Name(), len(data), len(out))
	return out, c, nil
}

// Analyze reports the frequency table, tree and codes for data.
func (s *CodecService) Analyze(data []byte) (*huffman.Analysis, error) {
	return huffman.Analyze(data)
}

// Codecs lists the codecs available to this service.
func (s *CodecService) Codecs() []codec.Codec {
	return s.registry.List()
}

// IsInvalidInput reports whether err was caused by the client's data
// rather than by the service.
func IsInvalidInput(err error) bool {
	return errors.Is(err, huffman.ErrFormat) ||
		errors.Is(err, huffman.ErrCorruptData) ||
		errors.Is(err, codec.ErrUnknownSignature)
}
