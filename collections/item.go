package collections

import (
	"fmt"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/pagecraft-cms/pagecraft/content"
)

// BuildDocument turns the item editor's rows into the persisted two-branch
// document: a flat key→value map per locale, with the field schema attached
// to both branches under "_schema". Rows are validated before anything is
// built; a failed save never produces a partial document.
func BuildDocument(rows []Row) (content.Document, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, err
	}

	schema := make([]FieldSpec, 0, len(rows))
	en := make(map[string]any, len(rows)+1)
	ar := make(map[string]any, len(rows)+1)
	for _, row := range rows {
		schema = append(schema, FieldSpec{Key: row.Key, Type: row.Type})
		en[row.Key] = row.ValueEN
		ar[row.Key] = row.ValueAR
	}
	en[SchemaKey] = schema
	ar[SchemaKey] = append([]FieldSpec(nil), schema...)

	return content.Document{
		string(content.LocaleEN): en,
		string(content.LocaleAR): ar,
	}, nil
}

// ValidateRows applies the save-time rules: every row needs a key, keys are
// unique within the item, and the type must be one the editor supports.
// Failures come back as a validation.Errors map keyed by row position.
func ValidateRows(rows []Row) error {
	errs := validation.Errors{}
	seen := map[string]int{}
	for i, row := range rows {
		pos := strconv.Itoa(i)
		if row.Key == "" {
			errs[pos] = validation.NewError("validation_key_required", "field key is required")
			continue
		}
		if first, ok := seen[row.Key]; ok {
			errs[pos] = validation.NewError("validation_key_duplicate",
				fmt.Sprintf("field key %q already used at row %d", row.Key, first))
			continue
		}
		seen[row.Key] = i
		if !row.Type.Valid() {
			errs[pos] = validation.NewError("validation_type_unknown",
				fmt.Sprintf("unknown field type %q", row.Type))
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParseDocument reconstructs editor rows from a stored item document. The
// schema is read from the English branch, falling back to the Arabic one
// for documents whose English branch was damaged. Documents written before
// the locale split carry schema and values at the root; both sides of a
// flat document read from there.
func ParseDocument(doc content.Document) ([]Row, error) {
	en := doc.Branch(content.LocaleEN)
	ar := doc.Branch(content.LocaleAR)
	if !doc.IsSplit() {
		en = map[string]any(doc)
		ar = en
	}

	schema, ok := decodeSchema(en[SchemaKey])
	if !ok {
		if schema, ok = decodeSchema(ar[SchemaKey]); !ok {
			return nil, ErrSchemaMissing
		}
	}

	rows := make([]Row, 0, len(schema))
	for _, spec := range schema {
		rows = append(rows, Row{
			Key:     spec.Key,
			Type:    spec.Type,
			ValueEN: stringValue(en[spec.Key]),
			ValueAR: stringValue(ar[spec.Key]),
		})
	}
	return rows, nil
}

// ResolveValue reads one field for a renderer locale. Shared types always
// read from the English branch since the Arabic tab never authors them.
func ResolveValue(doc content.Document, key string, locale content.Locale) string {
	rows, err := ParseDocument(doc)
	if err != nil {
		return ""
	}
	for _, row := range rows {
		if row.Key != key {
			continue
		}
		if locale == content.LocaleAR && !row.Type.Shared() {
			return row.ValueAR
		}
		return row.ValueEN
	}
	return ""
}

// decodeSchema accepts both the in-memory shape ([]FieldSpec) and the shape
// that comes back from a JSON round trip ([]any of maps).
func decodeSchema(raw any) ([]FieldSpec, bool) {
	switch typed := raw.(type) {
	case []FieldSpec:
		return typed, true
	case []any:
		specs := make([]FieldSpec, 0, len(typed))
		for _, entry := range typed {
			m, ok := entry.(map[string]any)
			if !ok {
				return nil, false
			}
			specs = append(specs, FieldSpec{
				Key:  stringValue(m["key"]),
				Type: FieldType(stringValue(m["type"])),
			})
		}
		return specs, true
	}
	return nil, false
}

func stringValue(raw any) string {
	s, _ := raw.(string)
	return s
}
