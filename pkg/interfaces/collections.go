package interfaces

import "context"

// CollectionRef identifies a selectable collection surfaced to
// collection-reference fields.
type CollectionRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CollectionLookup supplies the options for collection-reference fields. The
// editor stores only the chosen ID as the field's string value.
type CollectionLookup interface {
	ListCollections(ctx context.Context) ([]CollectionRef, error)
}
