// Package huffman implements a byte-oriented Huffman file codec.
//
// A compressed file is laid out as follows (integers little-endian):
//
//	"HUF1"                     4 bytes   signature
//	entry count                uint16    0-256
//	entries                    9 bytes each: symbol byte + uint64 count,
//	                           strictly ascending by symbol
//	padding                    1 byte    0-7 zero bits ending the payload
//	payload                    rest      packed codes, MSB first
//
// The tree is never stored. Decoding rebuilds it from the frequency table
// with the same deterministic construction used for encoding: nodes are
// merged by ascending (frequency, sequence), where leaves are numbered in
// ascending symbol order and every merged node takes the next number.
package huffman
