package rimworld

import (
	"reflect"
	"strings"
	"testing"

	apperrors "github.com/matzehuels/loadorder/pkg/errors"
	"github.com/matzehuels/loadorder/pkg/modlist"
)

const fullAbout = `<?xml version="1.0" encoding="utf-8"?>
<ModMetaData>
  <name>Combat Extended</name>
  <author>NoImageAvailable, Alistaire</author>
  <authors><li>N7Huntsman</li><li>Alistaire</li></authors>
  <description><![CDATA[Overhauls combat.]]></description>
  <packageID>CETeam.CombatExtended</packageID>
  <supportedVersions>
    <li>1.4</li>
    <li>1.5</li>
    <li>garbage</li>
  </supportedVersions>
  <loadBefore><li>Some.Patch</li></loadBefore>
  <loadBeforeByVersion>
    <v1.5><li>Late.Patch</li></v1.5>
  </loadBeforeByVersion>
  <forceLoadBefore><li>Forced.Before</li></forceLoadBefore>
  <loadAfter><li>Ludeon.RimWorld</li><li>Ludeon.RimWorld.Royalty</li></loadAfter>
  <loadAfterByVersion>
    <v1.4><li>Only.Old</li></v1.4>
  </loadAfterByVersion>
  <forceLoadAfter><li>Forced.After</li></forceLoadAfter>
  <modDependencies>
    <li>
      <packageId>brrainz.harmony</packageId>
      <displayName>Harmony</displayName>
      <steamWorkshopUrl>steam://url/CommunityFilePage/2009463077</steamWorkshopUrl>
    </li>
    <li>
      <packageId>broken.link</packageId>
      <steamWorkshopUrl>not a url</steamWorkshopUrl>
    </li>
  </modDependencies>
  <modDependenciesByVersion>
    <v1.5>
      <li><packageId>unlimitedhugs.hugslib</packageId></li>
    </v1.5>
  </modDependenciesByVersion>
  <incompatibleWith><li>Other.Combat</li></incompatibleWith>
  <incompatibleWithByVersion>
    <v1.5><li>Yet.Another</li></v1.5>
  </incompatibleWithByVersion>
</ModMetaData>`

func TestParseAbout(t *testing.T) {
	a, err := ParseAbout(strings.NewReader(fullAbout))
	if err != nil {
		t.Fatalf("ParseAbout: %v", err)
	}
	if a.PackageID != "ceteam.combatextended" {
		t.Errorf("PackageID = %q", a.PackageID)
	}
	if a.Name != "Combat Extended" || a.Description != "Overhauls combat." {
		t.Errorf("Name/Description = %q/%q", a.Name, a.Description)
	}
	if want := []string{"NoImageAvailable", "Alistaire", "N7Huntsman"}; !reflect.DeepEqual(a.Authors, want) {
		t.Errorf("Authors = %v, want %v", a.Authors, want)
	}
	if want := []string{"1.4", "1.5"}; !reflect.DeepEqual(a.SupportedVersions, want) {
		t.Errorf("SupportedVersions = %v, want %v", a.SupportedVersions, want)
	}
	if want := modlist.IDs("ludeon.rimworld", "ludeon.rimworld.royalty"); !reflect.DeepEqual(a.LoadAfter, want) {
		t.Errorf("LoadAfter = %v", a.LoadAfter)
	}
	if got := a.LoadBeforeByVersion["1.5"]; !reflect.DeepEqual(got, modlist.IDs("late.patch")) {
		t.Errorf("LoadBeforeByVersion[1.5] = %v", got)
	}
	if len(a.Dependencies) != 2 {
		t.Fatalf("Dependencies = %+v", a.Dependencies)
	}
	if a.Dependencies[0].SteamWorkshopURL == "" || a.Dependencies[0].DisplayName != "Harmony" {
		t.Errorf("first dependency = %+v", a.Dependencies[0])
	}
	if a.Dependencies[1].SteamWorkshopURL != "" {
		t.Errorf("invalid workshop url should be dropped, got %q", a.Dependencies[1].SteamWorkshopURL)
	}
}

func TestAboutLoadRules(t *testing.T) {
	a, err := ParseAbout(strings.NewReader(fullAbout))
	if err != nil {
		t.Fatal(err)
	}
	db := modlist.NewRuleDB()
	a.LoadRules("1.5", db)

	want := map[modlist.ID]modlist.Relation{
		"some.patch":              modlist.Before,
		"late.patch":              modlist.Before,
		"forced.before":           modlist.Before,
		"ludeon.rimworld":         modlist.After,
		"ludeon.rimworld.royalty": modlist.After,
		"forced.after":            modlist.After,
		"brrainz.harmony":         modlist.Dependency,
		"broken.link":             modlist.Dependency,
		"unlimitedhugs.hugslib":   modlist.Dependency,
		"other.combat":            modlist.Incompatible,
		"yet.another":             modlist.Incompatible,
	}
	got := db.Declared("ceteam.combatextended").Rules
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rules for 1.5 =\n%v\nwant\n%v", got, want)
	}

	db = modlist.NewRuleDB()
	a.LoadRules("1.4", db)
	rules := db.Declared("ceteam.combatextended").Rules
	if rules["only.old"] != modlist.After {
		t.Error("1.4 should pick up loadAfterByVersion v1.4")
	}
	if _, ok := rules["late.patch"]; ok {
		t.Error("1.4 should not pick up loadBeforeByVersion v1.5")
	}
}

func TestAboutLoadRulesUnsupported(t *testing.T) {
	a, err := ParseAbout(strings.NewReader(harmonyAbout))
	if err != nil {
		t.Fatal(err)
	}
	db := modlist.NewRuleDB()
	a.LoadRules("1.0", db)
	rs := db.Rules(modlist.MetadataSource)["brrainz.harmony"]
	if rs == nil {
		t.Fatal("rule set should exist for unsupported release")
	}
	if len(rs.Rules) != 0 {
		t.Errorf("unsupported release should contribute no rules, got %v", rs.Rules)
	}
}

func TestAboutLoadRulesLaterListWins(t *testing.T) {
	a := &About{
		PackageID:        "a",
		LoadBefore:       modlist.IDs("b"),
		IncompatibleWith: modlist.IDs("b"),
		LoadAfter:        modlist.IDs("a"),
	}
	db := modlist.NewRuleDB()
	a.LoadRules("1.5", db)
	rules := db.Declared("a").Rules
	if rules["b"] != modlist.Incompatible {
		t.Errorf("b = %v, want incompatible", rules["b"])
	}
	if _, ok := rules["a"]; ok {
		t.Error("self references should be ignored")
	}
}

func TestAboutSupports(t *testing.T) {
	base := &About{PackageID: modlist.CoreID}
	if !base.Supports("1.5") {
		t.Error("mods without supportedVersions support every release")
	}
	mod := &About{PackageID: "x", SupportedVersions: []string{"1.4", "1.5"}}
	if !mod.Supports("1.5") || mod.Supports("1.3") {
		t.Error("Supports should match listed releases only")
	}
}

func TestParseAboutErrors(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{"malformed", "<ModMetaData><packageId>x</ModMetaData>"},
		{"wrong root", "<Defs><packageId>x</packageId></Defs>"},
		{"no package id", "<ModMetaData><name>x</name></ModMetaData>"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAbout(strings.NewReader(tt.xml))
			if !apperrors.Is(err, apperrors.ErrCodeInvalidMetadata) {
				t.Errorf("err = %v, want INVALID_METADATA", err)
			}
		})
	}
}

func TestAboutInfo(t *testing.T) {
	a, err := ParseAbout(strings.NewReader(coreAbout))
	if err != nil {
		t.Fatal(err)
	}
	info := a.Info("/game/Data/Core")
	if info.Name != "ludeon.rimworld" {
		t.Errorf("Name should fall back to the package id, got %q", info.Name)
	}
	if info.Path != "/game/Data/Core" || info.Description != "The core game." {
		t.Errorf("Info = %+v", info)
	}
}
