// Package pkg provides the libraries behind the loadorder CLI.
//
// # Overview
//
// loadorder checks and repairs RimWorld mod load orders. The pkg directory is
// organized into three areas:
//
//  1. [modlist] - The constraint model: package IDs, relations, rule
//     databases, ordered lists, issue detection and autofix. No I/O.
//  2. [rimworld] - The game on disk: About.xml, ModsConfig.xml, Version.txt,
//     installation scanning and rule files.
//  3. Support: [config] (settings file), [cache] (About.xml scan cache),
//     [io] (load order profiles), [modgraph] (Graphviz export),
//     [observability] (event hooks), [errors] and [buildinfo].
//
// # Architecture
//
// The typical data flow through loadorder:
//
//	Game folder + workshop + extra mod folders
//	         ↓
//	    [rimworld] package (scan About.xml, build the rule database)
//	         ↓
//	    ModsConfig.xml active list
//	         ↓
//	    [modlist] package (find issues, autofix)
//	         ↓
//	    ModsConfig.xml / profile / DOT / SVG
//
// # Quick Start
//
//	cat, err := rimworld.Scanner{}.Scan(ctx, rimworld.Install{GameDir: dir})
//	if err != nil {
//	    return err
//	}
//	mc, err := rimworld.ReadModsConfig(rimworld.ModsConfigPath())
//	if err != nil {
//	    return err
//	}
//	cat.Activate(mc.ActiveMods)
//
//	issues := modlist.FindIssues(cat.Rules, cat.Active)
//	if err := modlist.Autofix(cat.Rules, cat.Active, cat.Inactive, issues); err != nil {
//	    return err // *modlist.FixError
//	}
//
// [modlist]: https://pkg.go.dev/github.com/matzehuels/loadorder/pkg/modlist
// [rimworld]: https://pkg.go.dev/github.com/matzehuels/loadorder/pkg/rimworld
// [config]: https://pkg.go.dev/github.com/matzehuels/loadorder/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/loadorder/pkg/cache
// [io]: https://pkg.go.dev/github.com/matzehuels/loadorder/pkg/io
// [modgraph]: https://pkg.go.dev/github.com/matzehuels/loadorder/pkg/modgraph
// [observability]: https://pkg.go.dev/github.com/matzehuels/loadorder/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/loadorder/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/loadorder/pkg/buildinfo
package pkg
