package huffman

import (
	"encoding/binary"
	"io"
	"slices"

	"github.com/pkg/errors"
)

// MaxSymbols is the size of the byte alphabet
const MaxSymbols = 256

// entrySize is the serialized size of one table entry: symbol + uint64 count
const entrySize = 1 + 8

// SymbolCount pairs a byte value with its number of occurrences
type SymbolCount struct {
	Symbol byte
	Count  uint64
}

// FrequencyTable counts occurrences of each byte value.
// Only symbols with a non-zero count are considered present.
type FrequencyTable struct {
	counts   [MaxSymbols]uint64
	distinct int
}

// BuildFrequencyTable scans buf once and counts every byte value.
// An empty buffer yields an empty table.
func BuildFrequencyTable(buf []byte) *FrequencyTable {
	ft := &FrequencyTable{}
	for _, b := range buf {
		ft.Add(b, 1)
	}
	return ft
}

// Add increments the count of sym by n.
func (ft *FrequencyTable) Add(sym byte, n uint64) {
	if n == 0 {
		return
	}
	if ft.counts[sym] == 0 {
		ft.distinct++
	}
	ft.counts[sym] += n
}

// Count returns the number of occurrences of sym.
func (ft *FrequencyTable) Count(sym byte) uint64 {
	return ft.counts[sym]
}

// Len returns the number of distinct symbols present.
func (ft *FrequencyTable) Len() int {
	return ft.distinct
}

// Total returns the sum of all counts, i.e. the length of the input.
func (ft *FrequencyTable) Total() uint64 {
	var total uint64
	for _, c := range ft.counts {
		total += c
	}
	return total
}

// Entries returns the present symbols in ascending symbol order.
// This is the serialization order and the tree insertion order.
func (ft *FrequencyTable) Entries() []SymbolCount {
	entries := make([]SymbolCount, 0, ft.distinct)
	for sym, c := range ft.counts {
		if c > 0 {
			entries = append(entries, SymbolCount{Symbol: byte(sym), Count: c})
		}
	}
	return entries
}

// DisplayOrder returns the present symbols sorted by count descending,
// ties broken by ascending symbol.
func (ft *FrequencyTable) DisplayOrder() []SymbolCount {
	entries := ft.Entries()
	slices.SortStableFunc(entries, func(a, b SymbolCount) int {
		switch {
		case a.Count > b.Count:
			return -1
		case a.Count < b.Count:
			return 1
		}
		return int(a.Symbol) - int(b.Symbol)
	})
	return entries
}

// BinarySize returns the number of bytes MarshalBinary produces.
func (ft *FrequencyTable) BinarySize() int {
	return 2 + ft.distinct*entrySize
}

// AppendBinary appends the serialized table to dst:
// a uint16 entry count followed by (symbol, uint64 count) pairs in
// ascending symbol order, little-endian.
func (ft *FrequencyTable) AppendBinary(dst []byte) ([]byte, error) {
	dst = binary.LittleEndian.AppendUint16(dst, uint16(ft.distinct))
	for _, e := range ft.Entries() {
		dst = append(dst, e.Symbol)
		dst = binary.LittleEndian.AppendUint64(dst, e.Count)
	}
	return dst, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (ft *FrequencyTable) MarshalBinary() ([]byte, error) {
	return ft.AppendBinary(make([]byte, 0, ft.BinarySize()))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// The data must hold exactly one serialized table.
func (ft *FrequencyTable) UnmarshalBinary(data []byte) error {
	parsed, n, err := parseFrequencyTable(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return errors.Wrapf(ErrFormat, "%d trailing bytes after frequency table", len(data)-n)
	}
	*ft = *parsed
	return nil
}

// ReadFrequencyTable reads one serialized table from r. It consumes exactly
// the bytes of the table, so r can be positioned at the data that follows.
func ReadFrequencyTable(r io.Reader) (*FrequencyTable, error) {
	var hdr [2]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, errors.Wrapf(ErrFormat, "frequency table count: %v", err)
	}
	count := int(binary.LittleEndian.Uint16(hdr[:]))
	if count > MaxSymbols {
		return nil, errors.Wrapf(ErrFormat, "frequency table has %d entries (max %d)", count, MaxSymbols)
	}

	body := make([]byte, count*entrySize)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, errors.Wrapf(ErrFormat, "frequency table entries: %v", err)
	}

	return decodeEntries(body, count)
}

// parseFrequencyTable parses a table from the front of data and returns the
// number of bytes consumed.
func parseFrequencyTable(data []byte) (*FrequencyTable, int, error) {
	if len(data) < 2 {
		return nil, 0, errors.Wrap(ErrFormat, "frequency table count truncated")
	}
	count := int(binary.LittleEndian.Uint16(data))
	if count > MaxSymbols {
		return nil, 0, errors.Wrapf(ErrFormat, "frequency table has %d entries (max %d)", count, MaxSymbols)
	}

	end := 2 + count*entrySize
	if len(data) < end {
		return nil, 0, errors.Wrapf(ErrFormat, "frequency table truncated: need %d bytes, have %d", end, len(data))
	}

	ft, err := decodeEntries(data[2:end], count)
	if err != nil {
		return nil, 0, err
	}
	return ft, end, nil
}

func decodeEntries(body []byte, count int) (*FrequencyTable, error) {
	ft := &FrequencyTable{}
	var total uint64
	for i := 0; i < count; i++ {
		entry := body[i*entrySize : (i+1)*entrySize]
		sym := entry[0]
		c := binary.LittleEndian.Uint64(entry[1:])

		if i > 0 && sym <= body[(i-1)*entrySize] {
			return nil, errors.Wrapf(ErrFormat, "frequency table entry %d: symbol %d out of order", i, sym)
		}
		if c == 0 {
			return nil, errors.Wrapf(ErrFormat, "frequency table entry %d: zero count for symbol %d", i, sym)
		}
		if total+c < total {
			return nil, errors.Wrapf(ErrFormat, "frequency table entry %d: total overflows", i)
		}
		total += c
		ft.Add(sym, c)
	}
	return ft, nil
}
