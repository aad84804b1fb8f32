// Package modlist implements the load-order constraint model for RimWorld
// mods: package identifiers, declared relations, rule databases, ordered mod
// lists, the violation detector and the autofix repair loop.
//
// # Overview
//
// Mods declare relations toward other mods (load before, load after, depend
// on, incompatible with). Relations are collected into a [RuleDB], which
// keeps one map of [RuleSet] values per source: the mods' own metadata
// ([MetadataSource]) and any number of external rule files ([RuleFile]).
// Sources are kept apart for provenance but always evaluated as a union.
//
// The user-facing state is two [List] values, "active" and "inactive". Only
// the active list's order is checked. [FindIssues] recomputes the complete
// set of violations ([Issues]) for a list; it is never patched
// incrementally, so callers rebuild it after every structural edit:
//
//	db := modlist.NewRuleDB()
//	db.Metadata("ui.mod").Rules["ludeon.rimworld"] = modlist.After
//
//	active := modlist.NewList()
//	active.Append("ui.mod", modlist.Info{Name: "UI Mod"})
//	active.Append("ludeon.rimworld", modlist.Info{Name: "Core"})
//
//	issues := modlist.FindIssues(db, active)
//	// issues: {ui.mod: {ludeon.rimworld: after}}
//
// # Repairing
//
// [Autofix] mutates the active list (and pulls missing dependencies out of
// the inactive list) until no issues remain or the retry budget runs out.
// It is a bounded heuristic: ordering cycles and incompatibilities make it
// fail, leaving the lists in their partially repaired state.
//
//	if err := modlist.Autofix(db, active, inactive, issues); err != nil {
//	    // errors.Is(err, modlist.ErrIncompatible), ErrMissingDependency or
//	    // ErrBudgetExhausted tell why; issues still holds what is left
//	}
//
// # Concurrency
//
// Nothing in this package is safe for concurrent use. Lists, databases and
// issue caches are owned by a single caller for the duration of a call.
package modlist
