package modgraph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/loadorder/pkg/modlist"
)

// Options configures diagram generation.
type Options struct {
	// Detailed shows the display name above the package ID.
	Detailed bool
	// ShowMissing draws dependencies that are not active as grey nodes.
	ShowMissing bool
}

type edge struct {
	from, to modlist.ID
	rel      modlist.Relation
	violated bool
}

// ToDOT converts the active list and the relations between its mods to
// Graphviz DOT. Relations declared by several sources are drawn once.
func ToDOT(db *modlist.RuleDB, active *modlist.List, issues modlist.Issues, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for i, e := range active.Entries() {
		label := e.ID.String()
		if opts.Detailed && e.Info.Name != "" && e.Info.Name != label {
			label = e.Info.Name + "\n" + label
		}
		attrs := []string{fmt.Sprintf("label=%q", label), fmt.Sprintf("tooltip=%q", strconv.Itoa(i+1))}
		if len(issues[e.ID]) > 0 {
			attrs = append(attrs, "color=red", "penwidth=2")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", e.ID, strings.Join(attrs, ", "))
	}

	edges, missing := collect(db, active, issues, opts.ShowMissing)
	for _, id := range missing {
		fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,dashed\", color=grey, fontcolor=grey];\n", id, id.String())
	}

	buf.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.from, e.to, strings.Join(edgeAttrs(e), ", "))
	}
	buf.WriteString("}\n")
	return buf.String()
}

// collect walks every source in order and returns the edges between active
// mods plus, when wanted, the inactive dependency targets.
func collect(db *modlist.RuleDB, active *modlist.List, issues modlist.Issues, withMissing bool) ([]edge, []modlist.ID) {
	type key struct {
		mod, target modlist.ID
		rel         modlist.Relation
	}
	seen := make(map[key]bool)
	var edges []edge
	var missing []modlist.ID

	for _, src := range db.Sources() {
		rules := db.Rules(src)
		mods := make([]modlist.ID, 0, len(rules))
		for mod := range rules {
			if active.Contains(mod) {
				mods = append(mods, mod)
			}
		}
		slices.Sort(mods)

		for _, mod := range mods {
			targets := make([]modlist.ID, 0, len(rules[mod].Rules))
			for t := range rules[mod].Rules {
				targets = append(targets, t)
			}
			slices.Sort(targets)

			for _, target := range targets {
				rel := rules[mod].Rules[target]
				k := key{mod, target, rel}
				if seen[k] {
					continue
				}
				seen[k] = true

				if !active.Contains(target) {
					if withMissing && rel == modlist.Dependency && !slices.Contains(missing, target) {
						missing = append(missing, target)
						edges = append(edges, edge{from: target, to: mod, rel: rel, violated: true})
					}
					continue
				}
				_, violated := issues[mod][target]
				e := edge{from: target, to: mod, rel: rel, violated: violated}
				if rel == modlist.Before {
					e.from, e.to = mod, target
				}
				edges = append(edges, e)
			}
		}
	}
	return edges, missing
}

func edgeAttrs(e edge) []string {
	attrs := []string{fmt.Sprintf("tooltip=%q", e.rel.String())}
	switch e.rel {
	case modlist.Dependency:
		attrs = append(attrs, "penwidth=2")
	case modlist.Incompatible:
		attrs = append(attrs, "style=dashed", "dir=none")
	}
	if e.violated {
		attrs = append(attrs, "color=red", "fontcolor=red")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so the SVG scales in browsers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
