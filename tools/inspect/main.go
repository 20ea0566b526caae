package main

import (
	"fmt"
	"os"

	"github.com/cocosip/go-huffman-codec/bitpack"
	"github.com/cocosip/go-huffman-codec/huffman"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: inspect <file.huff>")
		fmt.Println("Prints the header of a Huffman compressed file without decoding it")
		return
	}

	path := os.Args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	f, err := huffman.ParseFile(data)
	if err != nil {
		fmt.Printf("Error parsing file: %v\n", err)
		os.Exit(1)
	}

	bits, err := bitpack.BitLen(f.Payload, f.Padding)
	if err != nil {
		fmt.Printf("Error in payload framing: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("File:            %s (%d bytes)\n", path, len(data))
	fmt.Printf("Signature:       %s\n", huffman.Signature)
	fmt.Printf("Table entries:   %d (%d bytes)\n", f.Table.Len(), f.Table.BinarySize())
	fmt.Printf("Original size:   %d bytes\n", f.Table.Total())
	fmt.Printf("Padding:         %d bits\n", f.Padding)
	fmt.Printf("Payload:         %d bytes, %d bits\n", len(f.Payload), bits)
	fmt.Println()

	for _, e := range f.Table.Entries() {
		fmt.Printf("  0x%02x %-16s %d\n", e.Symbol, huffman.SymbolLabel(e.Symbol), e.Count)
	}
}
