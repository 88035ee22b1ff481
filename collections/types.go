package collections

// FieldType enumerates the value types a collection author can give a
// custom field. Collections use a lighter set than blocks: flat values
// only, no lists and no nested fields.
type FieldType string

const (
	TypeText     FieldType = "text"
	TypeTextarea FieldType = "textarea"
	TypeNumber   FieldType = "number"
	TypeImage    FieldType = "image"
	TypeVideo    FieldType = "video"
	TypeMedia    FieldType = "media"
)

// Valid reports whether the type is one the item editor supports.
func (t FieldType) Valid() bool {
	switch t {
	case TypeText, TypeTextarea, TypeNumber, TypeImage, TypeVideo, TypeMedia:
		return true
	}
	return false
}

// Shared reports whether the field is authored only in the English tab.
// Unlike block fields there is no server-side mirror pass for these; the
// editor simply never emits Arabic values for them.
func (t FieldType) Shared() bool {
	switch t {
	case TypeImage, TypeVideo, TypeMedia:
		return true
	}
	return false
}

// FieldSpec is one entry of a collection's user-defined schema, stored as
// the "_schema" array inside the item content itself.
type FieldSpec struct {
	Key  string    `json:"key"`
	Type FieldType `json:"type"`
}

// Row is one line of the item editor: a field spec plus the values typed
// into the English and Arabic tabs.
type Row struct {
	Key     string
	Type    FieldType
	ValueEN string
	ValueAR string
}

// SchemaKey is the reserved content key the field schema is stored under,
// in both locale branches.
const SchemaKey = "_schema"
