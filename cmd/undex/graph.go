package main

import (
	"flag"
	"fmt"
	"os"

	latrender "github.com/zboralski/lattice/render"
	"undex/internal/callgraph"
	"undex/internal/output"
)

func cmdGraph(args []string) error {
	fs := flag.NewFlagSet("graph", flag.ExitOnError)
	c := addCommonFlags(fs)
	outDir := fs.String("out", "", "output directory")
	title := fs.String("title", "callgraph", "graph title")
	svg := fs.Bool("svg", false, "render SVG with graphviz dot")

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

	funcs := make([]callgraph.FuncInfo, len(decoded))
	for i, d := range decoded {
		funcs[i] = callgraph.FuncInfo{Name: d.Method.Name, Insts: d.Insts, Catch: d.Catch}
	}
	cg := callgraph.BuildCallGraph(funcs, f.Pool.MethodName)
	dot := latrender.DOT(cg, *title)
	path, err := output.WriteDOT(*outDir, "", "callgraph", dot)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%d nodes, %d edges)\n", path, len(cg.Nodes), len(cg.Edges))

	if err := output.WriteDiags(*outDir, diags.Items()); err != nil {
		return err
	}
	if *svg {
		renderSVGs([]string{path})
	}
	return nil
}
