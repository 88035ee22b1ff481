package content

import (
	"encoding/json"
	"fmt"

	"github.com/pagecraft-cms/pagecraft/blocks"
	"github.com/pagecraft-cms/pagecraft/internal/logging"
	"github.com/pagecraft-cms/pagecraft/pkg/interfaces"
)

// Editor holds the in-memory editing state for a single block: the resolved
// variant schema, the full two-branch document, and the active locale. Every
// write produces a complete document, never a partial patch, and is followed
// by a pass that mirrors shared fields from the English branch into the
// Arabic one.
type Editor struct {
	registry  *blocks.Registry
	blockType blocks.BlockType
	variantID string
	schema    blocks.VariantSchema
	doc       Document
	active    Locale
	logger    interfaces.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger used for edit tracing.
func WithLogger(logger interfaces.Logger) Option {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRegistry overrides the built-in catalog, mostly for tests.
func WithRegistry(registry *blocks.Registry) Option {
	return func(e *Editor) {
		if registry != nil {
			e.registry = registry
		}
	}
}

// NewEditor opens an editing session over doc. A nil document starts empty,
// a legacy flat document is promoted to the split shape on first write, and
// malformed locale branches read as empty maps.
func NewEditor(blockType blocks.BlockType, variantID string, doc Document, opts ...Option) *Editor {
	editor := &Editor{
		registry:  blocks.DefaultRegistry(),
		blockType: blockType,
		variantID: variantID,
		doc:       doc.Clone(),
		active:    LocaleEN,
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(editor)
	}
	editor.schema = editor.registry.ResolveVariant(blockType, variantID)
	return editor
}

// ActiveLocale returns the locale currently being authored.
func (e *Editor) ActiveLocale() Locale {
	return e.active
}

// SetActiveLocale switches the authoring locale. Switching never mutates
// the document.
func (e *Editor) SetActiveLocale(locale Locale) error {
	if !locale.Valid() {
		return fmt.Errorf("%w: %q", ErrLocaleUnknown, locale)
	}
	e.active = locale
	return nil
}

// Schema returns the variant schema the editor resolved for this block.
func (e *Editor) Schema() blocks.VariantSchema {
	return e.schema
}

// Document returns a copy of the full two-branch document for persistence.
func (e *Editor) Document() Document {
	return e.doc.Clone()
}

// VisibleValues computes the complete value set for the active locale: the
// locale's branch (or the whole document when no split exists yet) merged
// through the variant defaults so every schema field is present.
func (e *Editor) VisibleValues() map[string]any {
	return e.registry.MergeVariantDefaults(e.blockType, e.variantID, e.visibleBranch())
}

func (e *Editor) visibleBranch() map[string]any {
	if !e.doc.IsSplit() {
		return map[string]any(e.doc)
	}
	return e.doc.Branch(e.active)
}

// ApplyFieldChange merges one field edit into the document. Shared-kind
// fields (image, video, media, url) are authored in the English branch only;
// an attempt to edit one while Arabic is active is rejected without touching
// the document. Every successful write ends with the shared-field sync pass.
func (e *Editor) ApplyFieldChange(fieldName string, value any) error {
	field := e.schema.Field(fieldName)
	if field == nil {
		return fmt.Errorf("%w: %s", ErrFieldUnknown, fieldName)
	}

	if field.Kind.Shared() {
		if e.active == LocaleAR {
			return fmt.Errorf("%w: %s", ErrSharedFieldLocale, fieldName)
		}
		e.ensureSplit()
		e.doc.Branch(LocaleEN)[fieldName] = value
		e.syncSharedFields()
		e.logger.Debug("field changed", "field", fieldName, "shared", true)
		return nil
	}

	e.ensureSplit()
	e.doc.Branch(e.active)[fieldName] = value
	e.syncSharedFields()
	e.logger.Debug("field changed", "field", fieldName, "locale", string(e.active))
	return nil
}

// AddListItem appends a default item to a list field in the active locale's
// branch, honoring the schema's MaxItems bound.
func (e *Editor) AddListItem(fieldName string) error {
	field := e.schema.Field(fieldName)
	if field == nil {
		return fmt.Errorf("%w: %s", ErrFieldUnknown, fieldName)
	}
	if !field.IsList() {
		return fmt.Errorf("%w: %s", ErrListFieldExpected, fieldName)
	}

	e.ensureSplit()
	branch := e.doc.Branch(e.active)
	items := e.paddedListItems(field, branch[fieldName])
	if field.MaxItems > 0 && len(items) >= field.MaxItems {
		return fmt.Errorf("%w: %s", ErrListFull, fieldName)
	}

	item := e.registry.CreateListItemDefaults(e.blockType, e.variantID, fieldName)
	branch[fieldName] = append(items, item)
	e.syncSharedFields()
	return nil
}

// RemoveListItem removes the item at index from a list field in the active
// locale's branch. Lists never shrink below the schema's MinItems.
func (e *Editor) RemoveListItem(fieldName string, index int) error {
	field := e.schema.Field(fieldName)
	if field == nil {
		return fmt.Errorf("%w: %s", ErrFieldUnknown, fieldName)
	}
	if !field.IsList() {
		return fmt.Errorf("%w: %s", ErrListFieldExpected, fieldName)
	}

	e.ensureSplit()
	branch := e.doc.Branch(e.active)
	items := e.paddedListItems(field, branch[fieldName])
	if index < 0 || index >= len(items) {
		return fmt.Errorf("%w: %s[%d]", ErrIndexOutOfRange, fieldName, index)
	}
	if len(items) <= field.MinItems {
		return fmt.Errorf("%w: %s", ErrListAtMinimum, fieldName)
	}

	branch[fieldName] = append(items[:index:index], items[index+1:]...)
	e.syncSharedFields()
	return nil
}

// paddedListItems resolves the stored list to the state the resolver shows:
// padded up to the schema's MinItems. Add and remove operate on this view so
// the edit applies to the list the user actually sees.
func (e *Editor) paddedListItems(field *blocks.FieldDefinition, raw any) []any {
	items := listItems(raw)
	for len(items) < field.MinItems {
		items = append(items, e.registry.CreateListItemDefaults(e.blockType, e.variantID, field.Name))
	}
	return items
}

// ApplyRawLocaleJSON replaces the active locale's branch with user-pasted
// JSON. Invalid JSON leaves the document untouched so the editor can keep
// the raw text in a local error state.
func (e *Editor) ApplyRawLocaleJSON(raw string) error {
	var branch map[string]any
	if err := json.Unmarshal([]byte(raw), &branch); err != nil {
		return fmt.Errorf("%w: %v", ErrRawJSONInvalid, err)
	}
	if branch == nil {
		branch = map[string]any{}
	}

	e.ensureSplit()
	e.doc[string(e.active)] = branch
	e.syncSharedFields()
	e.logger.Debug("raw branch replaced", "locale", string(e.active))
	return nil
}

// NormalizeDocument runs a document through the editor's own merge rules
// without an interactive session: the document is promoted to the locale
// split, each branch is completed against the variant defaults, and shared
// fields are mirrored from English. The save path uses this as its gate so
// persisted documents are always full, schema-shaped, and in sync.
func NormalizeDocument(blockType blocks.BlockType, variantID string, doc Document, opts ...Option) Document {
	editor := NewEditor(blockType, variantID, doc, opts...)
	editor.ensureSplit()
	for _, locale := range []Locale{LocaleEN, LocaleAR} {
		branch := editor.doc.Branch(locale)
		editor.doc[string(locale)] = editor.registry.MergeVariantDefaults(blockType, variantID, branch)
	}
	editor.syncSharedFields()
	return editor.Document()
}

// ensureSplit promotes a legacy flat document into the two-branch shape,
// seeding both branches from the flat values so nothing visible is lost.
func (e *Editor) ensureSplit() {
	if e.doc == nil {
		e.doc = Document{}
	}
	if e.doc.IsSplit() {
		if _, ok := e.doc[string(LocaleEN)].(map[string]any); !ok {
			e.doc[string(LocaleEN)] = map[string]any{}
		}
		if _, ok := e.doc[string(LocaleAR)].(map[string]any); !ok {
			e.doc[string(LocaleAR)] = map[string]any{}
		}
		return
	}

	flat := make(map[string]any, len(e.doc))
	for key, value := range e.doc {
		flat[key] = value
		delete(e.doc, key)
	}
	e.doc[string(LocaleEN)] = flat
	e.doc[string(LocaleAR)] = cloneValue(flat).(map[string]any)
}

// syncSharedFields mirrors every shared-kind field's current English value
// into the Arabic branch. It runs after every write so the branches cannot
// drift, no matter which locale or field changed.
func (e *Editor) syncSharedFields() {
	en := e.doc.Branch(LocaleEN)
	ar := e.doc.Branch(LocaleAR)
	for _, field := range e.schema.Fields {
		if !field.Kind.Shared() {
			continue
		}
		value, ok := en[field.Name]
		if !ok {
			delete(ar, field.Name)
			continue
		}
		ar[field.Name] = cloneValue(value)
	}
}

func listItems(raw any) []any {
	switch typed := raw.(type) {
	case []any:
		return typed
	case []map[string]any:
		items := make([]any, len(typed))
		for i, item := range typed {
			items[i] = item
		}
		return items
	default:
		return nil
	}
}
