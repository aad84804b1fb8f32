package modlist

import "maps"

// RuleSet holds the relations one mod declares toward other mods.
//
// A mod declares at most one relation per target. The anchor flags ask for
// the mod to be pinned to the start or the end of the load order; they are
// only honored by [PinAnchors].
type RuleSet struct {
	StartAnchor bool            `toml:"start_anchor" yaml:"start_anchor" json:"start_anchor,omitempty"`
	EndAnchor   bool            `toml:"end_anchor" yaml:"end_anchor" json:"end_anchor,omitempty"`
	Rules       map[ID]Relation `toml:"rules" yaml:"rules" json:"rules,omitempty"`
}

// NewRuleSet returns an empty RuleSet with an initialized rule map.
func NewRuleSet() *RuleSet {
	return &RuleSet{Rules: make(map[ID]Relation)}
}

// Merge folds other into rs. The anchor flags are overwritten by other's
// values and other's rules replace rs's rules for the same target.
func (rs *RuleSet) Merge(other *RuleSet) {
	if other == nil {
		return
	}
	rs.StartAnchor = other.StartAnchor
	rs.EndAnchor = other.EndAnchor
	if rs.Rules == nil {
		rs.Rules = make(map[ID]Relation, len(other.Rules))
	}
	maps.Copy(rs.Rules, other.Rules)
}

// Set records rel toward target, replacing any earlier relation.
func (rs *RuleSet) Set(target ID, rel Relation) {
	if rs.Rules == nil {
		rs.Rules = make(map[ID]Relation)
	}
	rs.Rules[target] = rel
}
