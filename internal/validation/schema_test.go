package validation

import (
	"errors"
	"testing"

	"github.com/pagecraft-cms/pagecraft/blocks"
)

func minimalTextSchema(t *testing.T) blocks.VariantSchema {
	t.Helper()
	schema, ok := blocks.GetVariantSchema(blocks.BlockHero, "hero-minimal-text")
	if !ok {
		t.Fatal("hero-minimal-text missing")
	}
	return schema
}

func TestValidatePayloadAcceptsResolvedDefaults(t *testing.T) {
	payload := blocks.MergeVariantDefaults(blocks.BlockHero, "hero-minimal-text", nil)
	if err := ValidatePayload(minimalTextSchema(t), payload); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestValidatePayloadRejectsUnknownKey(t *testing.T) {
	payload := blocks.MergeVariantDefaults(blocks.BlockHero, "hero-minimal-text", nil)
	payload["ghost"] = true

	err := ValidatePayload(minimalTextSchema(t), payload)
	if !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}
	if len(Issues(err)) == 0 {
		t.Fatal("expected at least one issue")
	}
}

func TestValidatePayloadRejectsEnumViolation(t *testing.T) {
	payload := blocks.MergeVariantDefaults(blocks.BlockHero, "hero-minimal-text", nil)
	payload["textAlign"] = "diagonal"

	var payloadErr *PayloadValidationError
	err := ValidatePayload(minimalTextSchema(t), payload)
	if !errors.As(err, &payloadErr) {
		t.Fatalf("expected PayloadValidationError, got %v", err)
	}
}

func TestValidatePayloadListBounds(t *testing.T) {
	schema, ok := blocks.GetVariantSchema(blocks.BlockAbout, "about-team")
	if !ok {
		t.Fatal("about-team missing")
	}

	payload := blocks.MergeVariantDefaults(blocks.BlockAbout, "about-team", nil)
	if err := ValidatePayload(schema, payload); err != nil {
		t.Fatalf("padded defaults should validate: %v", err)
	}

	payload["members"] = []map[string]any{}
	if err := ValidatePayload(schema, payload); !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected minItems violation, got %v", err)
	}
}
