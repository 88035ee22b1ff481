package content

import "errors"

var (
	ErrLocaleUnknown     = errors.New("content: unknown locale")
	ErrFieldUnknown      = errors.New("content: field not declared by schema")
	ErrSharedFieldLocale = errors.New("content: shared fields are edited in the English tab")
	ErrRawJSONInvalid    = errors.New("content: raw locale JSON is not valid")
	ErrListFieldExpected = errors.New("content: field is not a list")
	ErrListFull          = errors.New("content: list is at its maximum length")
	ErrListAtMinimum     = errors.New("content: list is at its minimum length")
	ErrIndexOutOfRange   = errors.New("content: list index out of range")
)
