package blocks

// FieldKind enumerates the closed set of editable field kinds understood by
// the variant schema system. The kind decides which input widget the editor
// renders and how values merge across locale branches.
type FieldKind string

const (
	FieldText                FieldKind = "text"
	FieldTextarea            FieldKind = "textarea"
	FieldNumber              FieldKind = "number"
	FieldColor               FieldKind = "color"
	FieldSelect              FieldKind = "select"
	FieldSwitch              FieldKind = "switch"
	FieldImage               FieldKind = "image"
	FieldVideo               FieldKind = "video"
	FieldMedia               FieldKind = "media"
	FieldURL                 FieldKind = "url"
	FieldCollectionReference FieldKind = "collection-reference"
	FieldList                FieldKind = "list"
)

// Shared reports whether values of this kind are authored once in the English
// branch and mirrored into the Arabic branch. Media assets and URLs stay
// identical across locales; everything else is translated independently.
func (k FieldKind) Shared() bool {
	switch k {
	case FieldImage, FieldVideo, FieldMedia, FieldURL:
		return true
	default:
		return false
	}
}

// Valid reports whether the kind belongs to the closed enumeration.
func (k FieldKind) Valid() bool {
	switch k {
	case FieldText, FieldTextarea, FieldNumber, FieldColor, FieldSelect,
		FieldSwitch, FieldImage, FieldVideo, FieldMedia, FieldURL,
		FieldCollectionReference, FieldList:
		return true
	default:
		return false
	}
}

// SelectOption is one entry in a select field's ordered option set.
type SelectOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FieldDefinition describes one editable slot in a block or collection item's
// content. Name is the stable identifier used as the JSON property key; the
// remaining presentation fields never affect stored data.
type FieldDefinition struct {
	Name         string         `json:"name"`
	Kind         FieldKind      `json:"kind"`
	Label        string         `json:"label,omitempty"`
	Placeholder  string         `json:"placeholder,omitempty"`
	Description  string         `json:"description,omitempty"`
	Required     bool           `json:"required,omitempty"`
	DefaultValue any            `json:"default_value,omitempty"`
	Options      []SelectOption `json:"options,omitempty"`

	// List-kind extensions. Fields is the nested child schema; nesting depth
	// is unbounded although practical schemas stay at two levels or fewer.
	ItemLabel string            `json:"item_label,omitempty"`
	MinItems  int               `json:"min_items,omitempty"`
	MaxItems  int               `json:"max_items,omitempty"`
	Fields    []FieldDefinition `json:"fields,omitempty"`
}

// IsList reports whether the field holds a nested record list.
func (f FieldDefinition) IsList() bool {
	return f.Kind == FieldList
}

// VariantSchema names one visual variant of a block type and carries the
// ordered field definitions that describe its editable content. ID is
// globally unique across every variant of every type so stored content stays
// valid when variants are reordered or new variants inserted.
type VariantSchema struct {
	ID          string            `json:"id"`
	Type        BlockType         `json:"type"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Fields      []FieldDefinition `json:"fields"`
}

// Field returns the definition with the given name, searching the schema's
// top level only.
func (s VariantSchema) Field(name string) *FieldDefinition {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i]
		}
	}
	return nil
}

// BlockType identifies a block family in the fixed enumeration.
type BlockType string

const (
	BlockHero     BlockType = "HERO"
	BlockAbout    BlockType = "ABOUT"
	BlockFeatures BlockType = "FEATURES"
	BlockForm     BlockType = "FORM"
	BlockMedia    BlockType = "MEDIA"
	BlockCTA      BlockType = "CTA"
	BlockProject  BlockType = "PROJECT"
)

// BlockTypeDefinition groups the variants of one block type and names the
// variant used when nothing else is specified. DefaultVariant must equal the
// ID of one entry in Variants.
type BlockTypeDefinition struct {
	Type           BlockType       `json:"type"`
	Label          string          `json:"label"`
	Description    string          `json:"description,omitempty"`
	DefaultVariant string          `json:"default_variant"`
	Variants       []VariantSchema `json:"variants"`
}

// Variant returns the variant schema with the given id, or false when the
// type does not declare it.
func (d BlockTypeDefinition) Variant(variantID string) (VariantSchema, bool) {
	for _, variant := range d.Variants {
		if variant.ID == variantID {
			return variant, true
		}
	}
	return VariantSchema{}, false
}
