package huffman

import (
	"iter"
	"slices"
	"strings"
)

// Code is the bit path from the root to a leaf: false for left, true for
// right.
type Code []bool

// String renders the code as a string of '0' and '1'.
func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(len(c))
	for _, bit := range c {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// HasPrefix reports whether p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	return len(p) <= len(c) && slices.Equal(c[:len(p)], p)
}

// CodeEntry pairs a symbol with its code
type CodeEntry struct {
	Symbol byte
	Code   Code
}

// CodeTable maps each present symbol to its code.
type CodeTable struct {
	codes [MaxSymbols]Code
	n     int
}

// DeriveCodes walks the tree depth-first and records the path to every
// leaf. The only leaf of a single-symbol tree gets the one-bit code "0".
func DeriveCodes(t *Tree) (*CodeTable, error) {
	if t.Empty() {
		return nil, ErrEmptyTree
	}

	ct := &CodeTable{}
	root := t.Root()
	if t.IsLeaf(root) {
		ct.set(t.Symbol(root), Code{false})
		return ct, nil
	}

	ct.walk(t, root, make(Code, 0, t.Depth()))
	return ct, nil
}

func (ct *CodeTable) walk(t *Tree, id NodeID, path Code) {
	if t.IsLeaf(id) {
		ct.set(t.Symbol(id), slices.Clone(path))
		return
	}
	ct.walk(t, t.Left(id), append(path, false))
	ct.walk(t, t.Right(id), append(path, true))
}

func (ct *CodeTable) set(sym byte, c Code) {
	if ct.codes[sym] == nil {
		ct.n++
	}
	ct.codes[sym] = c
}

// Lookup returns the code of sym.
func (ct *CodeTable) Lookup(sym byte) (Code, bool) {
	c := ct.codes[sym]
	return c, c != nil
}

// Len returns the number of symbols with a code.
func (ct *CodeTable) Len() int { return ct.n }

// Entries returns all codes in ascending symbol order.
func (ct *CodeTable) Entries() []CodeEntry {
	entries := make([]CodeEntry, 0, ct.n)
	for sym, c := range ct.codes {
		if c != nil {
			entries = append(entries, CodeEntry{Symbol: byte(sym), Code: c})
		}
	}
	return entries
}

// EncodedBits returns the payload length in bits for an input described
// by ft.
func (ct *CodeTable) EncodedBits(ft *FrequencyTable) uint64 {
	var n uint64
	for _, e := range ft.Entries() {
		n += e.Count * uint64(len(ct.codes[e.Symbol]))
	}
	return n
}

// bits yields the concatenated codes of buf in order. Every byte of buf
// must have a code.
func (ct *CodeTable) bits(buf []byte) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for _, b := range buf {
			for _, bit := range ct.codes[b] {
				if !yield(bit) {
					return
				}
			}
		}
	}
}
