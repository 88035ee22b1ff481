package collectionscmd

import (
	"context"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	intcollections "github.com/pagecraft-cms/pagecraft/internal/collections"
	"github.com/pagecraft-cms/pagecraft/internal/markdown"
)

const chairSource = `---
name: walnut-chair
body_field: description
fields:
  - key: title
    type: text
  - key: description
    type: textarea
  - key: photo
    type: image
en:
  title: Walnut Chair
  photo: /media/chair.jpg
ar:
  title: كرسي جوز
---
Hand carved from **walnut**.
`

func TestImportItemsCommandValidation(t *testing.T) {
	if err := (ImportItemsCommand{}).Validate(); err == nil {
		t.Fatal("expected validation error for empty command")
	}
	cmd := ImportItemsCommand{
		Collection: "furniture",
		Sources:    [][]byte{[]byte(chairSource)},
	}
	if err := cmd.Validate(); err != nil {
		t.Fatalf("expected valid command, got %v", err)
	}
}

func TestImportItemsHandlerSavesParsedItems(t *testing.T) {
	service := intcollections.NewService(intcollections.NewMemoryRepository())
	handler := NewImportItemsHandler(service, markdown.NewRenderer(markdown.RendererOptions{}))

	err := handler.Execute(context.Background(), ImportItemsCommand{
		Collection: "furniture",
		Sources:    [][]byte{[]byte(chairSource)},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	items, err := service.ListItems(context.Background(), "furniture")
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	item := items[0]
	if item.Name != "walnut-chair" {
		t.Fatalf("unexpected item name %q", item.Name)
	}

	var description, title string
	for _, row := range item.Rows {
		switch row.Key {
		case "description":
			description = row.ValueEN
		case "title":
			title = row.ValueAR
		}
	}
	if !strings.Contains(description, "<strong>walnut</strong>") {
		t.Fatalf("expected rendered body in description, got %q", description)
	}
	if title != "كرسي جوز" {
		t.Fatalf("expected arabic title preserved, got %q", title)
	}
}

func TestImportItemsHandlerWrapsParseFailures(t *testing.T) {
	service := intcollections.NewService(intcollections.NewMemoryRepository())
	handler := NewImportItemsHandler(service, nil)

	err := handler.Execute(context.Background(), ImportItemsCommand{
		Collection: "furniture",
		Sources:    [][]byte{[]byte("---\nname: [broken\n---\nbody")},
	})
	if err == nil {
		t.Fatal("expected parse failure")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}

	items, err := service.ListItems(context.Background(), "furniture")
	if err == nil && len(items) != 0 {
		t.Fatalf("expected no items persisted, got %d", len(items))
	}
}
