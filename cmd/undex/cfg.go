package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/zboralski/lattice"
	latrender "github.com/zboralski/lattice/render"
	"undex/internal/callgraph"
	"undex/internal/dalvik"
	"undex/internal/output"
	"undex/internal/render"
)

func cmdCFG(args []string) error {
	fs := flag.NewFlagSet("cfg", flag.ExitOnError)
	c := addCommonFlags(fs)
	outDir := fs.String("out", "", "output directory")
	svg := fs.Bool("svg", false, "render SVGs with graphviz dot")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *c.in == "" || *outDir == "" {
		return fmt.Errorf("--in and --out are required")
	}

	f, decoded, diags, err := loadAndDecode(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return fmt.Errorf("mkdir output: %w", err)
	}
	anns := annotators(f)

	// Instruction-level CFG per method.
	var dotPaths []string
	var funcs []callgraph.FuncInfo
	for _, d := range decoded {
		cfg := dalvik.BuildCFG(d.Method.Name, d.Insts, d.Catch)
		lines := dalvik.Lines(d.Method.Insns, d.Insts, anns...)
		dot := render.CFGDOT(cfg, lines, render.NASA)
		if dot == "" {
			continue
		}
		path, err := output.WriteDOT(*outDir, "cfg", d.Method.Name, dot)
		if err != nil {
			return err
		}
		dotPaths = append(dotPaths, path)
		funcs = append(funcs, callgraph.FuncInfo{Name: d.Method.Name, Insts: d.Insts, Catch: d.Catch})
	}
	fmt.Fprintf(os.Stderr, "wrote %d per-method CFG DOTs to %s/cfg\n", len(dotPaths), *outDir)

	// Block-level overview of every method, with invoke call sites.
	g := callgraph.BuildCFG(funcs, f.Pool.MethodName)
	dot := latrender.DOTCFG(g, "cfg")
	path, err := output.WriteDOT(*outDir, "", "cfg", dot)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%d methods, %d blocks)\n", path, len(g.Funcs), countBlocks(g))
	dotPaths = append(dotPaths, path)

	if err := output.WriteDiags(*outDir, diags.Items()); err != nil {
		return err
	}
	if *svg {
		renderSVGs(dotPaths)
	}
	return nil
}

func countBlocks(g *lattice.CFGGraph) int {
	n := 0
	for _, fn := range g.Funcs {
		n += len(fn.Blocks)
	}
	return n
}

// renderSVGs runs graphviz over each DOT file. Failures are warnings.
func renderSVGs(dotPaths []string) {
	for _, p := range dotPaths {
		svgPath := strings.TrimSuffix(p, ".dot") + ".svg"
		if err := output.RunDot(p, svgPath, "svg"); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v (is graphviz installed?)\n", svgPath, err)
			return
		}
	}
	fmt.Fprintf(os.Stderr, "rendered %d SVGs\n", len(dotPaths))
}
