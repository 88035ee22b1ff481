package blocks

import (
	"reflect"
	"testing"
)

func TestMergeVariantDefaultsFreshHeroMinimalText(t *testing.T) {
	got := MergeVariantDefaults(BlockHero, "hero-minimal-text", nil)

	want := map[string]any{
		"title":           "Simple. Powerful. Effective.",
		"subtitle":        "",
		"backgroundColor": "#000000",
		"textColor":       "#ffffff",
		"textAlign":       "center",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected defaults:\n got %#v\nwant %#v", got, want)
	}
}

func TestMergeVariantDefaultsKeepsExistingAndPrunesUnknown(t *testing.T) {
	existing := map[string]any{
		"title":    "Launch Week",
		"ghostKey": "stale",
	}
	got := MergeVariantDefaults(BlockHero, "hero-minimal-text", existing)

	if got["title"] != "Launch Week" {
		t.Fatalf("existing title clobbered: %v", got["title"])
	}
	if _, ok := got["ghostKey"]; ok {
		t.Fatal("schema-unknown key survived the merge")
	}
	if got["backgroundColor"] != "#000000" {
		t.Fatalf("missing field not defaulted: %v", got["backgroundColor"])
	}
}

func TestMergeVariantDefaultsReplacesIncompatibleValues(t *testing.T) {
	got := MergeVariantDefaults(BlockFeatures, "features-grid", map[string]any{
		"columns":      "three",
		"sectionTitle": 42,
	})
	if got["columns"] != 3 {
		t.Fatalf("incompatible number not reset to default: %v", got["columns"])
	}
	if got["sectionTitle"] != "" {
		t.Fatalf("incompatible text not reset: %v", got["sectionTitle"])
	}
}

func TestMergeVariantDefaultsRejectsOutOfEnumSelect(t *testing.T) {
	got := MergeVariantDefaults(BlockHero, "hero-minimal-text", map[string]any{
		"textAlign": "diagonal",
	})
	if got["textAlign"] != "center" {
		t.Fatalf("out-of-enum select not reset to default: %v", got["textAlign"])
	}

	got = MergeVariantDefaults(BlockHero, "hero-minimal-text", map[string]any{
		"textAlign": "right",
	})
	if got["textAlign"] != "right" {
		t.Fatalf("declared option not carried: %v", got["textAlign"])
	}
}

func TestMergeVariantDefaultsAboutTeam(t *testing.T) {
	got := MergeVariantDefaults(BlockAbout, "about-team", nil)

	if got["subtitle"] != "Meet the experts" {
		t.Fatalf("subtitle default: %v", got["subtitle"])
	}
	members, ok := got["members"].([]map[string]any)
	if !ok {
		t.Fatalf("members is %T, want []map[string]any", got["members"])
	}
	if len(members) != 1 {
		t.Fatalf("expected members padded to MinItems=1, got %d", len(members))
	}
	wantMember := map[string]any{"name": "", "role": "", "photo": "", "bio": ""}
	if !reflect.DeepEqual(members[0], wantMember) {
		t.Fatalf("member defaults:\n got %#v\nwant %#v", members[0], wantMember)
	}
}

func TestMergeVariantDefaultsRecursesIntoExistingListItems(t *testing.T) {
	existing := map[string]any{
		"members": []any{
			map[string]any{"name": "Dana", "extra": "drop me"},
		},
	}
	got := MergeVariantDefaults(BlockAbout, "about-team", existing)

	members := got["members"].([]map[string]any)
	if len(members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(members))
	}
	if members[0]["name"] != "Dana" {
		t.Fatalf("existing item value lost: %v", members[0]["name"])
	}
	if _, ok := members[0]["extra"]; ok {
		t.Fatal("unknown item key survived the merge")
	}
	if members[0]["role"] != "" {
		t.Fatalf("missing item field not defaulted: %v", members[0]["role"])
	}
}

func TestMergeVariantDefaultsClampsListToMaxItems(t *testing.T) {
	var slides []any
	for i := 0; i < 12; i++ {
		slides = append(slides, map[string]any{"caption": "c"})
	}
	got := MergeVariantDefaults(BlockHero, "hero-gallery", map[string]any{"slides": slides})

	items := got["slides"].([]map[string]any)
	if len(items) != 8 {
		t.Fatalf("expected slides clamped to 8, got %d", len(items))
	}
}

func TestMergeVariantDefaultsFallsBackToDefaultVariant(t *testing.T) {
	got := MergeVariantDefaults(BlockHero, "hero-retired", nil)
	if got["title"] != "Simple. Powerful. Effective." {
		t.Fatalf("expected default variant defaults, got %#v", got)
	}
}

func TestMergeVariantDefaultsFallsBackToPlaceholder(t *testing.T) {
	got := MergeVariantDefaults(BlockType("MYSTERY"), "whatever", nil)
	if _, ok := got["title"]; !ok {
		t.Fatalf("placeholder merge missing title: %#v", got)
	}
	if _, ok := got["content"]; !ok {
		t.Fatalf("placeholder merge missing content: %#v", got)
	}
}

func TestMergeVariantDefaultsIdempotent(t *testing.T) {
	first := MergeVariantDefaults(BlockAbout, "about-team", map[string]any{
		"sectionTitle": "People",
		"members": []any{
			map[string]any{"name": "Omar", "role": "Engineer"},
		},
	})
	second := MergeVariantDefaults(BlockAbout, "about-team", first)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("merge not idempotent:\nfirst  %#v\nsecond %#v", first, second)
	}
}

func TestCreateListItemDefaults(t *testing.T) {
	item := CreateListItemDefaults(BlockAbout, "about-team", "members")
	want := map[string]any{"name": "", "role": "", "photo": "", "bio": ""}
	if !reflect.DeepEqual(item, want) {
		t.Fatalf("item defaults:\n got %#v\nwant %#v", item, want)
	}

	if item := CreateListItemDefaults(BlockAbout, "about-team", "subtitle"); len(item) != 0 {
		t.Fatalf("non-list field should yield empty map, got %#v", item)
	}
}
