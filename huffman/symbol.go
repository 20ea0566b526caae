package huffman

import (
	"fmt"
	"unicode"

	"golang.org/x/text/encoding/charmap"
)

// SymbolLabel returns a human-readable label for a byte value.
// Bytes are read as ISO-8859-1, so 0xE9 shows as 'é'; whitespace gets a
// name and anything unprintable falls back to its numeric value.
func SymbolLabel(b byte) string {
	switch b {
	case ' ':
		return "' ' (SPACE)"
	case '\n':
		return `'\n' (NEWLINE)`
	case '\t':
		return `'\t' (TAB)`
	case '\r':
		return `'\r' (CR)`
	}

	r := charmap.ISO8859_1.DecodeByte(b)
	if unicode.IsPrint(r) {
		return fmt.Sprintf("'%c'", r)
	}
	return fmt.Sprintf("(byte %d)", b)
}
