// Package naming derives output file names for compressed and recovered
// files.
package naming

import (
	"path/filepath"
	"strings"
)

// RecoveredSuffix is appended to the base name of a decompressed file
const RecoveredSuffix = "_recuperado.txt"

// CompressedPath forces path to end in ext (".huff" for the Huffman codec).
func CompressedPath(path, ext string) string {
	if strings.HasSuffix(path, ext) {
		return path
	}
	return path + ext
}

// DefaultCompressedPath replaces the extension of input with ext:
// "notes.txt" becomes "notes.huff".
func DefaultCompressedPath(input, ext string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

// RecoveredPath names the output of decompressing path:
// "notes.huff" becomes "notes_recuperado.txt".
func RecoveredPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + RecoveredSuffix
}
