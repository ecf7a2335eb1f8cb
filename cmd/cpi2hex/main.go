// Command cpi2hex extracts code page fonts from a CPI file as 1 bit per
// pixel hex data that can be loaded into bitmapped displays.
//
//	cpi2hex [options] <file>
//
// By default every font of every codepage is appended to font.h as a
// C-style byte array. See -h for the option list.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tinne26/cpi"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("cpi2hex", flag.ContinueOnError)
	infoOnly := flags.Bool("i", false, "list information only, don't output to file")
	outName := flags.String("o", "font.h", "output file `name`")
	binary := flags.Bool("b", false, "output data as raw binary files (-o is ignored)")
	codePage := flags.Int("c", 0, "code page `number` to extract (0 extracts all)")
	rangeSpec := flags.String("r", "", "`ranges` of characters to extract, eg: 32-167,57,2-4")
	debug := flags.Bool("d", false, "print debug information about file headers")
	preview := flags.Bool("p", false, "dump the selected glyphs as text to stdout")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Extracts code page fonts from a CPI file into a hex byte array.\n\n")
		fmt.Fprintf(flags.Output(), "cpi2hex [options] <file>\n\nOptions:\n")
		flags.PrintDefaults()
	}

	if len(args) == 0 {
		flags.SetOutput(os.Stdout)
		flags.Usage()
		return 0
	}
	err := flags.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1 // the flag set already printed the diagnostic
	}
	if flags.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: Expected exactly one input file")
		return 1
	}
	inName := flags.Arg(0)

	opts := cpi.Options{
		InfoOnly: *infoOnly,
		Debug:    *debug,
		CodePage: *codePage,
		Progress: os.Stdout,
	}
	if *rangeSpec != "" {
		opts.Ranges, err = cpi.ParseRanges(*rangeSpec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			return 1
		}
	}
	if *preview {
		opts.Preview = os.Stdout
	}
	if *debug {
		cpi.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	input, err := os.Open(inName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Could not open file %s\n", inName)
		return 1
	}
	defer input.Close()

	var sink cpi.Serializer
	switch {
	case *infoOnly:
		sink = &cpi.SourceWriter{Target: io.Discard} // never written to
	case *binary:
		sink = &cpi.RawWriter{Create: func(name string) (io.WriteCloser, error) {
			return os.Create(name)
		}}
	default:
		output, err := os.Create(*outName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Could not open output file %s\n", *outName)
			return 1
		}
		defer output.Close()
		sink = &cpi.SourceWriter{Target: output}
	}

	err = cpi.Extract(input, opts, sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}
