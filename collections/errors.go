package collections

import "errors"

var (
	ErrSchemaMissing = errors.New("collections: document carries no _schema")
)
