package content

import "github.com/pagecraft-cms/pagecraft/blocks"

// ResolveForLocale computes the value set a renderer should use for one
// locale. Arabic reads from the Arabic branch but falls back to English for
// shared-kind fields whose Arabic value is empty, a defense for documents
// saved before the sync pass existed. English reads from the English branch,
// falling back to the legacy flat root when the document predates the locale
// split.
func ResolveForLocale(doc Document, schema blocks.VariantSchema, locale Locale) map[string]any {
	if !doc.IsSplit() {
		return pick(map[string]any(doc), schema)
	}

	en := doc.Branch(LocaleEN)
	if locale != LocaleAR {
		return pick(en, schema)
	}

	ar := doc.Branch(LocaleAR)
	resolved := make(map[string]any, len(schema.Fields))
	for _, field := range schema.Fields {
		value := ar[field.Name]
		if field.Kind.Shared() && emptyValue(value) {
			value = en[field.Name]
		}
		if value != nil {
			resolved[field.Name] = cloneValue(value)
		}
	}
	return resolved
}

func pick(values map[string]any, schema blocks.VariantSchema) map[string]any {
	resolved := make(map[string]any, len(schema.Fields))
	for _, field := range schema.Fields {
		if value, ok := values[field.Name]; ok {
			resolved[field.Name] = cloneValue(value)
		}
	}
	return resolved
}

func emptyValue(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}
