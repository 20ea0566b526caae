package huffman

import "github.com/cocosip/go-huffman-codec/bitpack"

// Analysis describes how an input would be compressed without packing it.
type Analysis struct {
	Table          *FrequencyTable
	Tree           *Tree
	Codes          *CodeTable // nil for empty input
	EncodedBits    uint64     // Payload length in bits
	Padding        uint8      // Zero bits completing the last payload byte
	OriginalSize   int        // Input length in bytes
	CompressedSize int        // Length of the compressed file in bytes
}

// Analyze computes the frequency table, tree and codes of buf along with
// the resulting sizes.
func Analyze(buf []byte) (*Analysis, error) {
	ft := BuildFrequencyTable(buf)
	tree := BuildTree(ft)
	a := &Analysis{
		Table:        ft,
		Tree:         tree,
		OriginalSize: len(buf),
	}

	if !tree.Empty() {
		codes, err := DeriveCodes(tree)
		if err != nil {
			return nil, err
		}
		a.Codes = codes
		a.EncodedBits = codes.EncodedBits(ft)
		a.Padding = bitpack.PaddingFor(a.EncodedBits)
	}

	payloadBytes := int((a.EncodedBits + 7) / 8)
	a.CompressedSize = len(Signature) + ft.BinarySize() + 1 + payloadBytes
	return a, nil
}

// Ratio returns OriginalSize / CompressedSize.
func (a *Analysis) Ratio() float64 {
	if a.CompressedSize == 0 {
		return 0
	}
	return float64(a.OriginalSize) / float64(a.CompressedSize)
}
