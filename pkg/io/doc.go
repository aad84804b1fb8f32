// Package io provides JSON import and export for load order profiles.
//
// # Overview
//
// A profile is a snapshot of a load order that can be shared or restored
// later, independent of the game's ModsConfig.xml. Installed mods that a
// profile does not mention stay inactive when it is applied.
//
// # JSON Format
//
//	{
//	  "version": "1.5",
//	  "active": ["ludeon.rimworld", "brrainz.harmony", "ui.mod"],
//	  "inactive": ["old.mod"]
//	}
//
// "active" is required and ordered. "version" records the game release the
// profile was made for. IDs are lowercased on import.
//
// # Import
//
// Use [ImportProfile] to read a profile from a file path, or [ReadProfile]
// to read from any io.Reader. Both reject invalid package IDs and IDs
// listed twice.
//
// # Export
//
// Use [ExportProfile] to write a profile to a file, or [WriteProfile] to
// write to any io.Writer. [NewProfile] snapshots the two mod lists.
package io
