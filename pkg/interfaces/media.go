package interfaces

import "context"

// MediaUploader abstracts the object-storage collaborator used by media-kind
// fields. Implementations receive the raw payload and return a public URL;
// the editor stores only that URL and performs no validation beyond
// "non-empty string".
type MediaUploader interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}

// NoOpUploader satisfies MediaUploader without side effects. Useful for tests
// and deployments where media fields are authored as external URLs.
type NoOpUploader struct{}

// Upload returns the filename unchanged so callers can exercise the flow
// without object storage.
func (NoOpUploader) Upload(_ context.Context, filename string, _ []byte) (string, error) {
	return filename, nil
}
