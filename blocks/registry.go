package blocks

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"
)

// Registry is the sole source of truth for what content shape a given
// (type, variant) pair expects. It is built once at process start and never
// mutated afterwards, so concurrent reads from multiple editors need no
// synchronization.
type Registry struct {
	types   map[BlockType]BlockTypeDefinition
	ordered []BlockType
}

// NewRegistry validates and indexes the provided block type definitions.
// Variant ids are slug-normalized so hand-built definitions and stored
// content agree on the lookup key.
func NewRegistry(defs ...BlockTypeDefinition) (*Registry, error) {
	r := &Registry{
		types: make(map[BlockType]BlockTypeDefinition, len(defs)),
	}

	seenVariants := map[string]BlockType{}
	for _, def := range defs {
		normalized := normalizeDefinition(def)
		if err := validateDefinition(normalized, seenVariants); err != nil {
			return nil, err
		}
		for _, variant := range normalized.Variants {
			seenVariants[variant.ID] = normalized.Type
		}
		if _, exists := r.types[normalized.Type]; !exists {
			r.ordered = append(r.ordered, normalized.Type)
		}
		r.types[normalized.Type] = normalized
	}

	return r, nil
}

// MustNewRegistry builds a registry and panics on invalid definitions. The
// built-in catalog goes through this path so a bad declaration fails fast at
// startup rather than corrupting editor state later.
func MustNewRegistry(defs ...BlockTypeDefinition) *Registry {
	r, err := NewRegistry(defs...)
	if err != nil {
		panic(err)
	}
	return r
}

// BlockTypeDefinition resolves the definition for a block type. Unknown types
// return a generic placeholder definition instead of failing so the editor
// never crashes on stale stored type values.
func (r *Registry) BlockTypeDefinition(blockType BlockType) BlockTypeDefinition {
	if r != nil {
		if def, ok := r.types[normalizeBlockType(blockType)]; ok {
			return def
		}
	}
	return PlaceholderDefinition(blockType)
}

// VariantSchema looks up a variant by id within a type. The second return is
// false when the type does not declare the variant; callers must fall back to
// the type's default variant.
func (r *Registry) VariantSchema(blockType BlockType, variantID string) (VariantSchema, bool) {
	def := r.BlockTypeDefinition(blockType)
	return def.Variant(strings.TrimSpace(variantID))
}

// AllBlockTypes returns every registered definition in declaration order.
func (r *Registry) AllBlockTypes() []BlockTypeDefinition {
	if r == nil {
		return nil
	}
	out := make([]BlockTypeDefinition, 0, len(r.ordered))
	for _, blockType := range r.ordered {
		out = append(out, r.types[blockType])
	}
	return out
}

// BlockVariants returns the ordered variant schemas for a type. Unknown types
// yield the placeholder definition's variants.
func (r *Registry) BlockVariants(blockType BlockType) []VariantSchema {
	def := r.BlockTypeDefinition(blockType)
	return append([]VariantSchema(nil), def.Variants...)
}

// PlaceholderType marks definitions synthesized for unknown block types.
const PlaceholderType BlockType = "GENERIC"

// PlaceholderDefinition builds the minimal title/content definition used when
// a stored block references a type the registry no longer knows. The
// definition always reports PlaceholderType; the unknown name survives only
// as the display label.
func PlaceholderDefinition(blockType BlockType) BlockTypeDefinition {
	label := strings.TrimSpace(string(blockType))
	if label == "" {
		label = string(PlaceholderType)
	}
	variant := VariantSchema{
		ID:   "generic-content",
		Type: PlaceholderType,
		Name: "Generic Content",
		Fields: []FieldDefinition{
			{Name: "title", Kind: FieldText, Label: "Title"},
			{Name: "content", Kind: FieldTextarea, Label: "Content"},
		},
	}
	return BlockTypeDefinition{
		Type:           PlaceholderType,
		Label:          label,
		DefaultVariant: variant.ID,
		Variants:       []VariantSchema{variant},
	}
}

func normalizeDefinition(def BlockTypeDefinition) BlockTypeDefinition {
	def.Type = normalizeBlockType(def.Type)
	def.DefaultVariant = normalizeVariantID(def.DefaultVariant)
	variants := make([]VariantSchema, len(def.Variants))
	for i, variant := range def.Variants {
		variant.ID = normalizeVariantID(variant.ID)
		if variant.Type == "" {
			variant.Type = def.Type
		} else {
			variant.Type = normalizeBlockType(variant.Type)
		}
		variants[i] = variant
	}
	def.Variants = variants
	return def
}

// normalizeBlockType maps stored type values onto the registry's upper-case
// keys so documents written as "hero" still resolve the HERO definition.
func normalizeBlockType(blockType BlockType) BlockType {
	return BlockType(strings.ToUpper(strings.TrimSpace(string(blockType))))
}

func normalizeVariantID(id string) string {
	candidate := strings.TrimSpace(id)
	if candidate == "" {
		return ""
	}
	normalized, err := slug.Normalize(candidate)
	if err != nil || normalized == "" {
		return candidate
	}
	return normalized
}

func validateDefinition(def BlockTypeDefinition, seenVariants map[string]BlockType) error {
	errs := validation.Errors{}

	if strings.TrimSpace(string(def.Type)) == "" {
		errs["type"] = ErrTypeRequired
	}
	if _, ok := def.Variant(def.DefaultVariant); !ok {
		errs["default_variant"] = ErrDefaultVariantUnknown
	}

	local := map[string]struct{}{}
	for _, variant := range def.Variants {
		if variant.ID == "" {
			errs["variants"] = ErrVariantIDRequired
			continue
		}
		if variant.Type != def.Type {
			errs[variant.ID] = ErrVariantTypeMismatch
			continue
		}
		_, dupLocal := local[variant.ID]
		_, dupGlobal := seenVariants[variant.ID]
		if dupLocal || dupGlobal {
			errs[variant.ID] = ErrDuplicateVariantID
			continue
		}
		local[variant.ID] = struct{}{}
		if err := validateFields(variant.Fields); err != nil {
			errs[variant.ID] = err
		}
	}

	if len(errs) > 0 {
		return &definitionError{fields: errs}
	}
	return nil
}

// definitionError keeps ozzo's per-field attribution while exposing the
// underlying sentinels to errors.Is.
type definitionError struct {
	fields validation.Errors
}

func (e *definitionError) Error() string {
	return e.fields.Error()
}

func (e *definitionError) Unwrap() []error {
	unwrapped := make([]error, 0, len(e.fields))
	for _, err := range e.fields {
		unwrapped = append(unwrapped, err)
	}
	return unwrapped
}

func validateFields(fields []FieldDefinition) error {
	seen := map[string]struct{}{}
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return fmt.Errorf("%w: empty field name", ErrFieldNameDuplicate)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %s", ErrFieldNameDuplicate, name)
		}
		seen[name] = struct{}{}

		if !field.Kind.Valid() {
			return fmt.Errorf("%w: %s (%s)", ErrFieldKindInvalid, field.Kind, name)
		}
		if field.Kind == FieldSelect && len(field.Options) == 0 {
			return fmt.Errorf("%w: %s", ErrSelectOptionsRequired, name)
		}
		if field.IsList() {
			if field.MinItems < 0 || (field.MaxItems > 0 && field.MaxItems < field.MinItems) {
				return fmt.Errorf("%w: %s", ErrListBoundsInvalid, name)
			}
			if len(field.Fields) == 0 {
				return fmt.Errorf("%w: %s", ErrListChildFieldsMissing, name)
			}
			if err := validateFields(field.Fields); err != nil {
				return err
			}
		}
	}
	return nil
}

var defaultRegistry = MustNewRegistry(catalog()...)

// DefaultRegistry exposes the built-in block catalog.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// GetBlockTypeDefinition resolves a type against the built-in catalog,
// falling back to a placeholder for unknown types.
func GetBlockTypeDefinition(blockType BlockType) BlockTypeDefinition {
	return defaultRegistry.BlockTypeDefinition(blockType)
}

// GetVariantSchema resolves a (type, variant) pair against the built-in
// catalog. The boolean is false when the variant id is unknown for the type.
func GetVariantSchema(blockType BlockType, variantID string) (VariantSchema, bool) {
	return defaultRegistry.VariantSchema(blockType, variantID)
}

// GetAllBlockTypes lists the built-in catalog in declaration order.
func GetAllBlockTypes() []BlockTypeDefinition {
	return defaultRegistry.AllBlockTypes()
}

// GetBlockVariants lists the variants declared for a type in the built-in
// catalog.
func GetBlockVariants(blockType BlockType) []VariantSchema {
	return defaultRegistry.BlockVariants(blockType)
}
