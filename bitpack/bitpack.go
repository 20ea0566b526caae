// Package bitpack packs bit sequences into bytes and back.
//
// Bit order is fixed to most-significant-bit first: the first bit of the
// sequence lands in bit 7 of the first byte. When the sequence does not end
// on a byte boundary, the last byte is filled with zero bits and the number
// of filler bits (0-7) is reported so the unpacker can drop them again.
package bitpack

import (
	"bytes"
	"iter"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// ErrInvalidPadding is returned when a padding count is out of range for
// the packed data it describes.
var ErrInvalidPadding = errors.New("bitpack: invalid padding")

// MaxPadding is the largest number of filler bits a packed stream can carry.
const MaxPadding = 7

// Pack consumes bits and packs 8 bits per byte, MSB first.
// It returns the packed bytes and the number of zero bits appended to
// complete the final byte.
func Pack(bits iter.Seq[bool]) (data []byte, padding uint8, err error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	for bit := range bits {
		if err := w.WriteBool(bit); err != nil {
			return nil, 0, errors.Wrap(err, "bitpack: write bit")
		}
	}

	// Align flushes the cached partial byte and reports the skipped bits
	padding, err = w.Align()
	if err != nil {
		return nil, 0, errors.Wrap(err, "bitpack: align")
	}
	if err := w.Close(); err != nil {
		return nil, 0, errors.Wrap(err, "bitpack: close")
	}

	return buf.Bytes(), padding, nil
}

// Unpack returns the bits stored in data, dropping the trailing padding.
// The sequence yields exactly 8*len(data)-padding bits.
func Unpack(data []byte, padding uint8) (iter.Seq[bool], error) {
	n, err := BitLen(data, padding)
	if err != nil {
		return nil, err
	}

	return func(yield func(bool) bool) {
		r := bitio.NewReader(bytes.NewReader(data))
		for i := 0; i < n; i++ {
			bit, err := r.ReadBool()
			if err != nil {
				// Unreachable while n is within the data length
				return
			}
			if !yield(bit) {
				return
			}
		}
	}, nil
}

// BitLen returns the number of meaningful bits in a packed stream.
func BitLen(data []byte, padding uint8) (int, error) {
	if padding > MaxPadding {
		return 0, errors.Wrapf(ErrInvalidPadding, "padding %d exceeds %d", padding, MaxPadding)
	}
	if len(data) == 0 && padding != 0 {
		return 0, errors.Wrapf(ErrInvalidPadding, "padding %d with empty payload", padding)
	}
	return 8*len(data) - int(padding), nil
}

// PaddingFor returns the padding needed to complete a stream of n bits.
func PaddingFor(n uint64) uint8 {
	return uint8((8 - n%8) % 8)
}
