package render

import (
	"fmt"
	"strings"

	"undex/internal/dalvik"
)

// CFGDOT renders a per-method basic-block CFG as DOT.
// lines must be parallel to cfg.Insts (see dalvik.Lines). Each basic block
// is a node listing its instructions; edges represent control flow. Entry
// and handler blocks are highlighted. Payload blocks are omitted.
func CFGDOT(cfg dalvik.FuncCFG, lines []dalvik.Line, t Theme) string {
	if len(cfg.Blocks) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("digraph cfg {\n")
	b.WriteString("  rankdir=TB;\n")
	b.WriteString("  nodesep=0.3;\n")
	b.WriteString("  ranksep=0.4;\n")
	fmt.Fprintf(&b, "  bgcolor=%q;\n", t.Background)
	fmt.Fprintf(&b, "  node [shape=rect, style=filled, fillcolor=%q, color=%q, penwidth=0.5, fontname=\"Courier,monospace\", fontsize=8, fontcolor=%q, margin=\"0.08,0.04\"];\n",
		t.NodeFill, t.NodeBorder, t.TextColor)
	fmt.Fprintf(&b, "  edge [penwidth=0.7, arrowsize=0.5, arrowhead=vee];\n")
	fmt.Fprintf(&b, "  labelloc=t;\n  labeljust=l;\n")
	fmt.Fprintf(&b, "  label=<<font face=\"Helvetica Neue,Helvetica\" point-size=\"9\" color=\"%s\">%s</font>>;\n",
		t.TextColor, dotEscape(cfg.Name))
	b.WriteByte('\n')

	for _, blk := range cfg.Blocks {
		if blk.IsPayload {
			continue
		}
		id := fmt.Sprintf("bb%d", blk.ID)

		var rows []string
		end := blk.End
		if end > len(lines) {
			end = len(lines)
		}
		for i := blk.Start; i < end; i++ {
			l := lines[i]
			row := fmt.Sprintf("%04x: %s %s", l.Offset, l.Mnemonic, l.Operands)
			if l.Comment != "" {
				row += " ; " + l.Comment
			}
			rows = append(rows, dotEscape(truncLabel(row, 80)))
		}
		if len(rows) > 12 {
			kept := append(rows[:5], fmt.Sprintf("... (%d more)", len(rows)-10))
			rows = append(kept, rows[len(rows)-5:]...)
		}

		label := strings.Join(rows, "<br align=\"left\"/>")
		label += "<br align=\"left\"/>"

		attrs := ""
		switch {
		case blk.IsEntry:
			attrs = fmt.Sprintf(", penwidth=1.5, color=%q", t.EntryBorder)
		case blk.IsHandler:
			attrs = fmt.Sprintf(", penwidth=1.5, style=\"filled,dashed\", color=%q", t.HandlerBorder)
		}
		if blk.IsTerm {
			attrs += fmt.Sprintf(", fillcolor=%q", t.TermFill)
		}
		fmt.Fprintf(&b, "  %s [label=<%s>%s];\n", id, label, attrs)
	}
	b.WriteByte('\n')

	for _, blk := range cfg.Blocks {
		from := fmt.Sprintf("bb%d", blk.ID)
		for _, s := range blk.Succs {
			if s.BlockID < len(cfg.Blocks) && cfg.Blocks[s.BlockID].IsPayload {
				continue
			}
			to := fmt.Sprintf("bb%d", s.BlockID)
			switch s.Cond {
			case "T":
				fmt.Fprintf(&b, "  %s -> %s [color=%q, label=<<font point-size=\"7\" color=\"%s\">T</font>>];\n",
					from, to, t.EdgeTaken, t.EdgeTaken)
			case "F":
				fmt.Fprintf(&b, "  %s -> %s [color=%q, label=<<font point-size=\"7\" color=\"%s\">F</font>>];\n",
					from, to, t.EdgeFallthrough, t.EdgeFallthrough)
			default:
				fmt.Fprintf(&b, "  %s -> %s [color=%q];\n", from, to, t.EdgeDirect)
			}
		}
	}

	b.WriteString("}\n")
	return b.String()
}
