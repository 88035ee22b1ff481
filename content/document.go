package content

// Locale identifies one authored branch of a content document.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleAR Locale = "ar"
)

// Valid reports whether the locale is one the editor knows how to author.
func (l Locale) Valid() bool {
	return l == LocaleEN || l == LocaleAR
}

// Document is the stored shape of a block's content. Current documents carry
// two locale branches under "en" and "ar"; documents written before the
// locale split are flat field maps at the root and stay readable through the
// legacy path.
type Document map[string]any

// IsSplit reports whether the document carries locale branches.
func (d Document) IsSplit() bool {
	if d == nil {
		return false
	}
	_, hasEN := d[string(LocaleEN)]
	_, hasAR := d[string(LocaleAR)]
	return hasEN || hasAR
}

// Branch returns the named locale branch. A missing or malformed branch
// reads as an empty map, never an error.
func (d Document) Branch(locale Locale) map[string]any {
	if d == nil {
		return map[string]any{}
	}
	branch, ok := d[string(locale)].(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return branch
}

// Clone deep-copies the document so callers can hand it out without
// aliasing editor state.
func (d Document) Clone() Document {
	if d == nil {
		return Document{}
	}
	clone := make(Document, len(d))
	for key, value := range d {
		clone[key] = cloneValue(value)
	}
	return clone
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[k] = cloneValue(v)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, v := range typed {
			out[i] = cloneValue(v)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(typed))
		for i, item := range typed {
			out[i] = cloneValue(item).(map[string]any)
		}
		return out
	default:
		return typed
	}
}
