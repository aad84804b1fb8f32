package io

import (
	"github.com/matzehuels/loadorder/pkg/modlist"
)

// Profile is a saved load order.
type Profile struct {
	Version  string       `json:"version,omitempty"`
	Active   []modlist.ID `json:"active"`
	Inactive []modlist.ID `json:"inactive,omitempty"`
}

// NewProfile snapshots active and inactive for release.
func NewProfile(release string, active, inactive *modlist.List) *Profile {
	p := &Profile{Version: release, Active: active.IDs()}
	if inactive != nil && inactive.Len() > 0 {
		p.Inactive = inactive.IDs()
	}
	return p
}
