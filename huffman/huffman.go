package huffman

import (
	"github.com/pkg/errors"

	"github.com/cocosip/go-huffman-codec/bitpack"
)

// Signature opens every compressed file
const Signature = "HUF1"

// File is a parsed compressed file.
type File struct {
	Table   *FrequencyTable // Symbol counts of the original input
	Padding uint8           // Zero bits ending the payload (0-7)
	Payload []byte          // Packed codes, MSB first
}

func (f *File) table() *FrequencyTable {
	if f.Table == nil {
		return &FrequencyTable{}
	}
	return f.Table
}

// BinarySize returns the number of bytes MarshalBinary produces.
func (f *File) BinarySize() int {
	return len(Signature) + f.table().BinarySize() + 1 + len(f.Payload)
}

// MarshalBinary serializes the file: signature, frequency table, padding
// byte and payload.
func (f *File) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, f.BinarySize())
	out = append(out, Signature...)

	out, err := f.table().AppendBinary(out)
	if err != nil {
		return nil, err
	}

	out = append(out, f.Padding)
	out = append(out, f.Payload...)
	return out, nil
}

// Encode builds the frequency table, tree and codes for buf and packs the
// codes of every byte in order. The result depends only on buf.
func Encode(buf []byte) (*File, error) {
	ft := BuildFrequencyTable(buf)
	if ft.Len() == 0 {
		return &File{Table: ft}, nil
	}

	codes, err := DeriveCodes(BuildTree(ft))
	if err != nil {
		return nil, err
	}

	payload, padding, err := bitpack.Pack(codes.bits(buf))
	if err != nil {
		return nil, errors.Wrap(err, "huffman: pack payload")
	}

	return &File{Table: ft, Padding: padding, Payload: payload}, nil
}

// Compress encodes buf and returns the bytes of the compressed file.
func Compress(buf []byte) ([]byte, error) {
	f, err := Encode(buf)
	if err != nil {
		return nil, err
	}
	return f.MarshalBinary()
}

// ParseFile parses the framing of a compressed file without decoding the
// payload. The returned payload aliases data.
func ParseFile(data []byte) (*File, error) {
	if len(data) < len(Signature) || string(data[:len(Signature)]) != Signature {
		return nil, errors.Wrap(ErrFormat, "missing "+Signature+" signature")
	}
	data = data[len(Signature):]

	ft, n, err := parseFrequencyTable(data)
	if err != nil {
		return nil, err
	}
	data = data[n:]

	if len(data) == 0 {
		return nil, errors.Wrap(ErrFormat, "padding byte missing")
	}
	padding := data[0]
	if padding > bitpack.MaxPadding {
		return nil, errors.Wrapf(ErrFormat, "padding %d exceeds %d", padding, bitpack.MaxPadding)
	}

	return &File{Table: ft, Padding: padding, Payload: data[1:]}, nil
}

// Decode rebuilds the tree from the file's frequency table and walks it
// once per payload bit, emitting a symbol at every leaf.
//
// The payload must decode to exactly Table.Total() symbols; anything else,
// including a final code cut short, fails with ErrCorruptData.
func Decode(f *File) ([]byte, error) {
	ft := f.table()
	if ft.Len() == 0 {
		if len(f.Payload) != 0 || f.Padding != 0 {
			return nil, errors.Wrap(ErrCorruptData, "payload present without frequency table")
		}
		return []byte{}, nil
	}

	nbits, err := bitpack.BitLen(f.Payload, f.Padding)
	if err != nil {
		return nil, errors.Wrap(ErrCorruptData, err.Error())
	}
	total := ft.Total()
	// Every symbol costs at least one bit
	if total > uint64(nbits) {
		return nil, errors.Wrapf(ErrCorruptData, "table announces %d symbols, payload holds %d bits", total, nbits)
	}

	bits, err := bitpack.Unpack(f.Payload, f.Padding)
	if err != nil {
		return nil, errors.Wrap(ErrCorruptData, err.Error())
	}

	tree := BuildTree(ft)
	root := tree.Root()
	out := make([]byte, 0, total)

	if tree.IsLeaf(root) {
		sym := tree.Symbol(root)
		for bit := range bits {
			if bit {
				return nil, errors.Wrapf(ErrCorruptData, "bit 1 at symbol %d of a single-symbol stream", len(out))
			}
			if uint64(len(out)) == total {
				return nil, errors.Wrapf(ErrCorruptData, "payload holds more than %d symbols", total)
			}
			out = append(out, sym)
		}
	} else {
		cur := root
		for bit := range bits {
			if bit {
				cur = tree.Right(cur)
			} else {
				cur = tree.Left(cur)
			}
			if !tree.IsLeaf(cur) {
				continue
			}
			if uint64(len(out)) == total {
				return nil, errors.Wrapf(ErrCorruptData, "payload holds more than %d symbols", total)
			}
			out = append(out, tree.Symbol(cur))
			cur = root
		}
		if cur != root {
			return nil, errors.Wrapf(ErrCorruptData, "bitstream ends inside a code after %d symbols", len(out))
		}
	}

	if uint64(len(out)) != total {
		return nil, errors.Wrapf(ErrCorruptData, "decoded %d symbols, table announces %d", len(out), total)
	}
	return out, nil
}

// Decompress parses a compressed file and returns the original bytes.
func Decompress(data []byte) ([]byte, error) {
	f, err := ParseFile(data)
	if err != nil {
		return nil, err
	}
	return Decode(f)
}
