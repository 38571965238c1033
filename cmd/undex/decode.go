package main

import (
	"flag"
	"fmt"
	"os"

	"undex/internal/dalvik"
	"undex/internal/output"
	"undex/internal/render"
)

func cmdDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	c := addCommonFlags(fs)
	outDir := fs.String("out", "", "output directory (default: listing on stdout)")
	colorFlag := fs.String("color", "auto", "color stdout listing: auto, always or never")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *c.in == "" {
		return fmt.Errorf("--in is required")
	}
	mode, err := render.ParseColorMode(*colorFlag)
	if err != nil {
		return err
	}

	f, decoded, diags, err := loadAndDecode(c)
	if err != nil {
		return err
	}
	anns := annotators(f)

	if *outDir == "" {
		color := render.ColorEnabled(mode, os.Stdout)
		for i, d := range decoded {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("%s:\n", d.Method.Name)
			lines := dalvik.Lines(d.Method.Insns, d.Insts, anns...)
			fmt.Print(render.Listing(lines, render.NASA, color))
		}
		return nil
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return fmt.Errorf("mkdir output: %w", err)
	}
	for _, d := range decoded {
		text := dalvik.Format(d.Method.Insns, d.Insts, anns...)
		if err := output.WriteListing(*outDir, d.Method.Name, text); err != nil {
			return fmt.Errorf("write listing %s: %w", d.Method.Name, err)
		}
	}
	if err := output.WriteDiags(*outDir, diags.Items()); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %d listings to %s/asm\n", len(decoded), *outDir)
	return nil
}
