package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"undex/internal/dalvik"
	"undex/internal/output"
)

func cmdJSON(args []string) error {
	fs := flag.NewFlagSet("json", flag.ExitOnError)
	c := addCommonFlags(fs)
	outDir := fs.String("out", "", "output directory")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *c.in == "" || *outDir == "" {
		return fmt.Errorf("--in and --out are required")
	}

	_, decoded, diags, err := loadAndDecode(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return fmt.Errorf("mkdir output: %w", err)
	}

	var methods []dalvik.MethodRecord
	var insts []dalvik.InstRecord
	for _, d := range decoded {
		cfg := dalvik.BuildCFG(d.Method.Name, d.Insts, d.Catch)
		rec := dalvik.MethodRecord{
			Name:      d.Method.Name,
			CodeUnits: len(d.Method.Insns),
			Insts:     len(d.Insts),
			Blocks:    len(cfg.Blocks),
		}
		for i := range d.Insts {
			if d.Insts[i].Category.IsInvoke() {
				rec.Invokes++
			}
		}
		methods = append(methods, rec)
		insts = append(insts, dalvik.Records(d.Method.Name, d.Insts)...)
	}

	if err := output.WriteJSONL(*outDir, "methods.jsonl", methods); err != nil {
		return err
	}
	if err := output.WriteJSONL(*outDir, "insts.jsonl", insts); err != nil {
		return err
	}
	if err := output.WriteDiags(*outDir, diags.Items()); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%d methods)\n", filepath.Join(*outDir, "methods.jsonl"), len(methods))
	fmt.Fprintf(os.Stderr, "wrote %s (%d instructions)\n", filepath.Join(*outDir, "insts.jsonl"), len(insts))
	return nil
}
