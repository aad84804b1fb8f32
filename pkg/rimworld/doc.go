// Package rimworld reads and writes the files a RimWorld installation uses
// to describe mods and their load order.
//
// It is the bridge between the disk and the constraint solver in
// [github.com/matzehuels/loadorder/pkg/modlist]:
//
//   - [ParseGameVersion] reads Version.txt; only the release (major.minor)
//     matters when matching mods against the game.
//   - [ParseAbout] decodes a mod's About/About.xml and [About.LoadRules]
//     turns its loadBefore/loadAfter/modDependencies/incompatibleWith
//     declarations into the metadata source of a [modlist.RuleDB].
//   - [ReadModsConfig] and [ModsConfig.Write] handle the game's
//     ModsConfig.xml, the file that holds the active load order.
//   - [Scanner] walks the game, workshop and extra mod folders and returns a
//     [Catalog]: every usable mod in the inactive list plus the rules they
//     declare.
//   - [CheckSavable] refuses to persist load orders the game would reject.
//
// # Typical flow
//
//	cat, err := rimworld.Scanner{}.Scan(ctx, install)
//	cfg, err := rimworld.ReadModsConfig(rimworld.ModsConfigPath())
//	cat.Activate(cfg.ActiveMods)
//	issues := modlist.FindIssues(cat.Rules, cat.Active)
//	if err := modlist.Autofix(cat.Rules, cat.Active, cat.Inactive, issues); err == nil {
//	    err = rimworld.SaveModsConfig(path, cat.Version.Original(), cat.Active, issues)
//	}
package rimworld
