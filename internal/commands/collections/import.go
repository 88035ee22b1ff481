package collectionscmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/pagecraft-cms/pagecraft/internal/commands"
	collectionsvc "github.com/pagecraft-cms/pagecraft/internal/collections"
	"github.com/pagecraft-cms/pagecraft/internal/markdown"
)

const importItemsMessageType = "pagecraft.collections.items.import"

// ImportItemsCommand imports one or more Markdown-authored collection item
// files into a single collection. Each source carries its own frontmatter
// schema and per-locale values.
type ImportItemsCommand struct {
	Collection string   `json:"collection"`
	Sources    [][]byte `json:"sources"`
}

// Type implements command.Message.
func (ImportItemsCommand) Type() string { return importItemsMessageType }

// Validate ensures the command names a collection and carries sources.
func (m ImportItemsCommand) Validate() error {
	errs := validation.Errors{}
	if m.Collection == "" {
		errs["collection"] = validation.NewError("pagecraft.collections.items.import.collection_required", "collection is required")
	}
	if len(m.Sources) == 0 {
		errs["sources"] = validation.NewError("pagecraft.collections.items.import.sources_required", "at least one source file is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NewImportItemsHandler wires the import command to the collection service.
// Item bodies are rendered to HTML with the provided renderer; a nil
// renderer falls back to the default Markdown engine.
func NewImportItemsHandler(service *collectionsvc.Service, renderer *markdown.Renderer, opts ...commands.HandlerOption[ImportItemsCommand]) *commands.Handler[ImportItemsCommand] {
	exec := func(ctx context.Context, msg ImportItemsCommand) error {
		for _, source := range msg.Sources {
			file, err := markdown.ParseItemFile(source)
			if err != nil {
				return err
			}
			rows, err := file.Rows(renderer)
			if err != nil {
				return err
			}
			if _, err := service.SaveItem(ctx, collectionsvc.SaveItemInput{
				Collection: msg.Collection,
				Name:       file.Name,
				Rows:       rows,
			}); err != nil {
				return err
			}
		}
		return nil
	}
	opts = append([]commands.HandlerOption[ImportItemsCommand]{
		commands.WithOperation[ImportItemsCommand]("collections.items.import"),
	}, opts...)
	return commands.NewHandler(exec, opts...)
}
