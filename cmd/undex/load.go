package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"undex/internal/dalvik"
	"undex/internal/dexfmt"
	"undex/internal/method"
)

// commonFlags are shared by every subcommand.
type commonFlags struct {
	in      *string
	strict  *bool
	workers *int
}

func addCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		in:      fs.String("in", "", "YAML method file"),
		strict:  fs.Bool("strict", false, "fail on the first method that does not decode"),
		workers: fs.Int("workers", dexfmt.DefaultWorkers, "concurrent method decoders"),
	}
}

func (c commonFlags) options() dexfmt.Options {
	opts := dexfmt.Options{Mode: dexfmt.ModeBestEffort, Workers: *c.workers}
	if *c.strict {
		opts.Mode = dexfmt.ModeStrict
	}
	return opts
}

// loadAndDecode reads the method file and decodes every method in it.
func loadAndDecode(c commonFlags) (*method.File, []method.Decoded, *dexfmt.Diags, error) {
	f, err := method.LoadFile(*c.in)
	if err != nil {
		return nil, nil, nil, err
	}
	fmt.Fprintf(os.Stderr, "loaded %d methods from %s\n", len(f.Methods), *c.in)

	decoded, diags, err := method.DecodeAll(context.Background(), f, c.options())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("decode: %w", err)
	}
	for _, d := range diags.Items() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", d)
	}
	fmt.Fprintf(os.Stderr, "decoded %d methods (%d skipped)\n", len(decoded), diags.Len())
	return f, decoded, diags, nil
}

// annotators returns the listing annotators for methods of f.
// Earlier annotators take precedence on the same instruction.
func annotators(f *method.File) []dalvik.Annotator {
	return []dalvik.Annotator{
		dalvik.CastAnnotator(f.Pool.TypeName),
		dalvik.ResultTypeAnnotator(),
		dalvik.PayloadAnnotator(8),
	}
}
