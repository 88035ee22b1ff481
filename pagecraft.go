package pagecraft

import (
	"context"
	"io/fs"

	"github.com/pagecraft-cms/pagecraft/blocks"
	"github.com/pagecraft-cms/pagecraft/documents"
	intcollections "github.com/pagecraft-cms/pagecraft/internal/collections"
	collectionscmd "github.com/pagecraft-cms/pagecraft/internal/commands/collections"
	"github.com/pagecraft-cms/pagecraft/internal/di"
	"github.com/pagecraft-cms/pagecraft/internal/markdown"
	"github.com/pagecraft-cms/pagecraft/pages"
	"github.com/pagecraft-cms/pagecraft/pkg/interfaces"
)

// DocumentService exports the block content service contract.
type DocumentService = documents.Service

// PageService exports the page service contract.
type PageService = pages.Service

// CollectionService exports the collection item service.
type CollectionService = *intcollections.Service

// Module is the top level pagecraft runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a pagecraft module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Blocks returns the block catalog in use.
func (m *Module) Blocks() *blocks.Registry {
	return m.container.Registry()
}

// Documents returns the block content service.
func (m *Module) Documents() DocumentService {
	return m.container.DocumentService()
}

// Pages returns the page service.
func (m *Module) Pages() PageService {
	return m.container.PageService()
}

// Collections returns the collection item service.
func (m *Module) Collections() CollectionService {
	return m.container.CollectionService()
}

// Media returns the configured media uploader. Image, video, and media
// fields store the URL this uploader returns.
func (m *Module) Media() interfaces.MediaUploader {
	return m.container.MediaUploader()
}

// Logger returns a named logger from the configured provider.
func (m *Module) Logger(name string) interfaces.Logger {
	return m.container.ModuleLogger(name)
}

// ImportCollectionItems discovers Markdown item files on the given
// filesystem and imports them into the named collection.
func (m *Module) ImportCollectionItems(ctx context.Context, fsys fs.FS, collection string) error {
	loader := markdown.NewLoader(fsys, markdown.LoaderConfig{
		Pattern:   m.container.Config.Markdown.Pattern,
		Recursive: m.container.Config.Markdown.Recursive,
	})
	sources, err := loader.LoadSources(ctx)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return nil
	}

	handler := collectionscmd.NewImportItemsHandler(
		m.container.CollectionService(),
		m.container.MarkdownRenderer(),
	)
	return handler.Execute(ctx, collectionscmd.ImportItemsCommand{
		Collection: collection,
		Sources:    sources,
	})
}

// Close releases resources the module opened itself.
func (m *Module) Close() error {
	return m.container.Close()
}
