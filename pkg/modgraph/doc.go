// Package modgraph renders the constraints of a load order as a Graphviz
// diagram.
//
// # Overview
//
// Every active mod becomes a node, listed in load order. Every relation
// whose declaring mod and target are both active becomes an edge pointing
// from the mod that must load first to the mod that must load later:
//
//   - before: declarer -> target
//   - after and dependency: target -> declarer
//   - incompatible: a dashed line without arrowhead
//
// Relations that are currently violated are drawn red, so the picture
// shows at a glance what [modlist.Autofix] would have to repair.
//
// # Usage
//
//	issues := modlist.FindIssues(db, active)
//	dot := modgraph.ToDOT(db, active, issues, modgraph.Options{})
//	svg, err := modgraph.RenderSVG(ctx, dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is required.
package modgraph
