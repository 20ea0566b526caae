// Command huff compresses and decompresses files with Huffman coding and
// prints the intermediate tables.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/cocosip/go-huffman-codec/huffman"
	"github.com/cocosip/go-huffman-codec/internal/config"
	"github.com/cocosip/go-huffman-codec/internal/logger"
	"github.com/cocosip/go-huffman-codec/internal/naming"
	"github.com/cocosip/go-huffman-codec/internal/service"
)

const usage = `Usage: huff <command> [arguments]

Commands:
  compress <input> [output]      write <input> as a .huff file
  decompress <input.huff> [out]  recover the original bytes
  show <input>                   print the input file
  table <input>                  print the frequency table
  tree <input>                   print the Huffman tree
  codes <input>                  print the code table
  stats <input>                  print sizes and compression ratio
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "huff: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("huff", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "log debug messages")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return errors.New("missing command or input")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if *verbose {
		level = logger.LevelDebug
	}
	svc := service.NewCodecService(logger.New(level))

	cmd, input := fs.Arg(0), fs.Arg(1)
	output := fs.Arg(2)

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	switch cmd {
	case "compress":
		return compress(svc, stdout, input, output, data)
	case "decompress":
		return decompress(svc, stdout, input, output, data)
	case "show":
		fmt.Fprintf(stdout, "Content of '%s':\n", input)
		_, err := stdout.Write(data)
		return err
	case "table":
		return printTable(stdout, data)
	case "tree":
		return printTree(stdout, data)
	case "codes":
		return printCodes(stdout, data)
	case "stats":
		return printStats(stdout, data)
	}
	fs.Usage()
	return errors.Errorf("unknown command %q", cmd)
}

func compress(svc *service.CodecService, stdout io.Writer, input, output string, data []byte) error {
	out, c, err := svc.Compress(service.DefaultCodec, data)
	if err != nil {
		return err
	}
	if output == "" {
		output = naming.DefaultCompressedPath(input, c.Extension())
	} else {
		output = naming.CompressedPath(output, c.Extension())
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Compressed file written: %s (%d -> %d bytes)\n", output, len(data), len(out))
	return nil
}

func decompress(svc *service.CodecService, stdout io.Writer, input, output string, data []byte) error {
	out, _, err := svc.Decompress(data)
	if err != nil {
		return errors.Wrapf(err, "decompress %s", input)
	}
	if output == "" {
		output = naming.RecoveredPath(input)
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Decompressed file written: %s (%d bytes)\n", output, len(out))
	return nil
}

func printTable(stdout io.Writer, data []byte) error {
	ft := huffman.BuildFrequencyTable(data)

	fmt.Fprintln(stdout, "=== Frequency table (by descending frequency) ===")
	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Symbol\tFrequency")
	for _, e := range ft.DisplayOrder() {
		fmt.Fprintf(tw, "%s\t%d\n", huffman.SymbolLabel(e.Symbol), e.Count)
	}
	return tw.Flush()
}

func printTree(stdout io.Writer, data []byte) error {
	tree := huffman.BuildTree(huffman.BuildFrequencyTable(data))

	fmt.Fprintln(stdout, "=== Huffman tree ===")
	if tree.Empty() {
		fmt.Fprintln(stdout, "(empty input)")
		return nil
	}
	return tree.WritePreorder(stdout)
}

func printCodes(stdout io.Writer, data []byte) error {
	tree := huffman.BuildTree(huffman.BuildFrequencyTable(data))

	fmt.Fprintln(stdout, "=== Huffman codes ===")
	if tree.Empty() {
		fmt.Fprintln(stdout, "(empty input)")
		return nil
	}
	codes, err := huffman.DeriveCodes(tree)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Symbol\tCode")
	for _, e := range codes.Entries() {
		fmt.Fprintf(tw, "%s\t%s\n", huffman.SymbolLabel(e.Symbol), e.Code)
	}
	return tw.Flush()
}

func printStats(stdout io.Writer, data []byte) error {
	a, err := huffman.Analyze(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Original size:    %d bytes\n", a.OriginalSize)
	fmt.Fprintf(stdout, "Distinct symbols: %d\n", a.Table.Len())
	fmt.Fprintf(stdout, "Encoded bits:     %d (+%d padding)\n", a.EncodedBits, a.Padding)
	fmt.Fprintf(stdout, "Compressed size:  %d bytes\n", a.CompressedSize)
	fmt.Fprintf(stdout, "Ratio:            %.2fx\n", a.Ratio())
	return nil
}
