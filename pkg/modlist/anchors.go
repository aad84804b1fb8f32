package modlist

// PinAnchors moves mods that any source marks with StartAnchor to the front
// of l and mods marked with EndAnchor to the back. Relative order within the
// pinned groups and the middle is preserved. A mod with both flags counts as
// start-anchored. It returns the number of mods whose position changed.
//
// Anchors are not constraints: [FindIssues] ignores them and a later
// [Autofix] may move anchored mods again to satisfy relations.
func PinAnchors(db *RuleDB, l *List) int {
	var start, middle, end []Entry
	for _, e := range l.entries {
		pinStart, pinEnd := db.anchors(e.ID)
		switch {
		case pinStart:
			start = append(start, e)
		case pinEnd:
			end = append(end, e)
		default:
			middle = append(middle, e)
		}
	}
	if len(start) == 0 && len(end) == 0 {
		return 0
	}

	ordered := make([]Entry, 0, len(l.entries))
	ordered = append(ordered, start...)
	ordered = append(ordered, middle...)
	ordered = append(ordered, end...)

	moved := 0
	for i, e := range ordered {
		if l.entries[i].ID != e.ID {
			moved++
		}
	}
	l.entries = ordered
	l.reindex(0, len(ordered))
	return moved
}

// anchors ORs the anchor flags of mod across all sources.
func (db *RuleDB) anchors(mod ID) (start, end bool) {
	for _, src := range db.order {
		if rs, ok := db.sources[src][mod]; ok {
			start = start || rs.StartAnchor
			end = end || rs.EndAnchor
		}
	}
	return start, end
}
