package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "decode":
		err = cmdDecode(os.Args[2:])
	case "json":
		err = cmdJSON(os.Args[2:])
	case "cfg":
		err = cmdCFG(os.Args[2:])
	case "graph":
		err = cmdGraph(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `undex: Dalvik method bytecode decoder

Usage:
  undex decode --in <file> [--out <dir>]    Annotated listing (stdout, or asm/*.txt)
  undex json   --in <file> --out <dir>      methods.jsonl + insts.jsonl
  undex cfg    --in <file> --out <dir>      Per-method basic-block CFG DOTs
  undex graph  --in <file> --out <dir>      Invoke call graph DOT

Flags:
  --in <file>           YAML method file
  --out <dir>           Output directory
  --strict              Fail on the first method that does not decode
  --workers <n>         Concurrent method decoders (default 8)
  --color <mode>        auto, always or never (decode to stdout)
  --svg                 Also render DOT files with graphviz (cfg, graph)
`)
}
