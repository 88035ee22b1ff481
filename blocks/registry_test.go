package blocks

import (
	"errors"
	"testing"
)

func TestNewRegistryRejectsDuplicateVariantIDs(t *testing.T) {
	_, err := NewRegistry(BlockTypeDefinition{
		Type:           BlockHero,
		Label:          "Hero",
		DefaultVariant: "hero-a",
		Variants: []VariantSchema{
			{ID: "hero-a", Type: BlockHero, Name: "A", Fields: []FieldDefinition{{Name: "title", Kind: FieldText}}},
			{ID: "hero-a", Type: BlockHero, Name: "A again", Fields: []FieldDefinition{{Name: "title", Kind: FieldText}}},
		},
	})
	if !errors.Is(err, ErrDuplicateVariantID) {
		t.Fatalf("expected ErrDuplicateVariantID, got %v", err)
	}
}

func TestNewRegistryRejectsUnknownDefaultVariant(t *testing.T) {
	_, err := NewRegistry(BlockTypeDefinition{
		Type:           BlockCTA,
		Label:          "CTA",
		DefaultVariant: "cta-missing",
		Variants: []VariantSchema{
			{ID: "cta-banner", Type: BlockCTA, Name: "Banner", Fields: []FieldDefinition{{Name: "headline", Kind: FieldText}}},
		},
	})
	if !errors.Is(err, ErrDefaultVariantUnknown) {
		t.Fatalf("expected ErrDefaultVariantUnknown, got %v", err)
	}
}

func TestNewRegistryRejectsSelectWithoutOptions(t *testing.T) {
	_, err := NewRegistry(BlockTypeDefinition{
		Type:           BlockHero,
		Label:          "Hero",
		DefaultVariant: "hero-a",
		Variants: []VariantSchema{
			{ID: "hero-a", Type: BlockHero, Name: "A", Fields: []FieldDefinition{
				{Name: "align", Kind: FieldSelect},
			}},
		},
	})
	if !errors.Is(err, ErrSelectOptionsRequired) {
		t.Fatalf("expected ErrSelectOptionsRequired, got %v", err)
	}
}

func TestNewRegistryRejectsInvalidListBounds(t *testing.T) {
	_, err := NewRegistry(BlockTypeDefinition{
		Type:           BlockMedia,
		Label:          "Media",
		DefaultVariant: "media-a",
		Variants: []VariantSchema{
			{ID: "media-a", Type: BlockMedia, Name: "A", Fields: []FieldDefinition{
				{Name: "cards", Kind: FieldList, MinItems: 4, MaxItems: 2, Fields: []FieldDefinition{
					{Name: "title", Kind: FieldText},
				}},
			}},
		},
	})
	if !errors.Is(err, ErrListBoundsInvalid) {
		t.Fatalf("expected ErrListBoundsInvalid, got %v", err)
	}
}

func TestRegistryResolvesLowerCaseType(t *testing.T) {
	def := GetBlockTypeDefinition(BlockType("hero"))
	if def.Type != BlockHero {
		t.Fatalf("expected HERO definition, got %q", def.Type)
	}
	if _, ok := def.Variant("hero-minimal-text"); !ok {
		t.Fatal("lower-case lookup lost the type's variants")
	}

	got := MergeVariantDefaults(BlockType("hero"), "hero-minimal-text", map[string]any{
		"title": "Welcome",
	})
	if got["title"] != "Welcome" {
		t.Fatalf("lower-case type stripped real fields: %#v", got)
	}
	if got["backgroundColor"] != "#000000" {
		t.Fatalf("lower-case type skipped variant defaults: %#v", got)
	}
}

func TestRegistryFallsBackToPlaceholderForUnknownType(t *testing.T) {
	def := GetBlockTypeDefinition(BlockType("MYSTERY"))
	if def.Type != PlaceholderType {
		t.Fatalf("expected placeholder type, got %q", def.Type)
	}
	schema, ok := def.Variant(def.DefaultVariant)
	if !ok {
		t.Fatal("placeholder default variant missing")
	}
	if schema.Field("title") == nil || schema.Field("content") == nil {
		t.Fatal("placeholder schema must declare title and content")
	}
}

func TestCatalogExposesEveryBuiltInType(t *testing.T) {
	want := []BlockType{BlockHero, BlockAbout, BlockFeatures, BlockForm, BlockMedia, BlockCTA, BlockProject}
	got := GetAllBlockTypes()
	if len(got) != len(want) {
		t.Fatalf("expected %d block types, got %d", len(want), len(got))
	}
	for i, def := range got {
		if def.Type != want[i] {
			t.Fatalf("position %d: expected %q, got %q", i, want[i], def.Type)
		}
		if _, ok := def.Variant(def.DefaultVariant); !ok {
			t.Fatalf("%s: default variant %q not declared", def.Type, def.DefaultVariant)
		}
	}
}

func TestGetVariantSchemaUnknownVariant(t *testing.T) {
	if _, ok := GetVariantSchema(BlockHero, "hero-nope"); ok {
		t.Fatal("expected miss for unknown variant id")
	}
	schema, ok := GetVariantSchema(BlockHero, "hero-gallery")
	if !ok {
		t.Fatal("expected hero-gallery to resolve")
	}
	if schema.Type != BlockHero {
		t.Fatalf("expected HERO schema, got %q", schema.Type)
	}
}
