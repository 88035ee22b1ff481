package blocks

import "errors"

var (
	ErrTypeRequired           = errors.New("blocks: block type is required")
	ErrVariantIDRequired      = errors.New("blocks: variant id is required")
	ErrVariantTypeMismatch    = errors.New("blocks: variant type does not match its block type")
	ErrDuplicateVariantID     = errors.New("blocks: variant id already registered")
	ErrDefaultVariantUnknown  = errors.New("blocks: default variant must be declared in variants")
	ErrFieldNameDuplicate     = errors.New("blocks: field names must be unique within a schema")
	ErrFieldKindInvalid       = errors.New("blocks: field kind is not recognised")
	ErrSelectOptionsRequired  = errors.New("blocks: select fields require at least one option")
	ErrListBoundsInvalid      = errors.New("blocks: list min/max bounds are inconsistent")
	ErrListChildFieldsMissing = errors.New("blocks: list fields require child field definitions")
)
