package collections

import (
	"context"
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	pubcollections "github.com/pagecraft-cms/pagecraft/collections"
	"github.com/pagecraft-cms/pagecraft/internal/identity"
)

func fixedClock() func() time.Time {
	at := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func sampleRows() []pubcollections.Row {
	return []pubcollections.Row{
		{Key: "title", Type: pubcollections.TypeText, ValueEN: "Oak Table", ValueAR: "طاولة بلوط"},
		{Key: "photo", Type: pubcollections.TypeImage, ValueEN: "/media/oak.jpg"},
		{Key: "price", Type: pubcollections.TypeNumber, ValueEN: "1200"},
	}
}

func TestEnsureCollectionIsIdempotent(t *testing.T) {
	svc := NewService(NewMemoryRepository(), WithClock(fixedClock()))
	ctx := context.Background()

	first, err := svc.EnsureCollection(ctx, "furniture")
	if err != nil {
		t.Fatalf("EnsureCollection: %v", err)
	}
	if first.ID != identity.CollectionUUID("furniture") {
		t.Fatalf("unexpected collection id %s", first.ID)
	}
	if first.Slug != "furniture" {
		t.Fatalf("unexpected slug %q", first.Slug)
	}

	second, err := svc.EnsureCollection(ctx, "furniture")
	if err != nil {
		t.Fatalf("EnsureCollection again: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same collection, got %s and %s", first.ID, second.ID)
	}

	refs, err := svc.ListCollections(ctx)
	if err != nil {
		t.Fatalf("ListCollections: %v", err)
	}
	if len(refs) != 1 {
		t.Fatalf("expected 1 collection, got %d", len(refs))
	}
	if refs[0].Name != "furniture" || refs[0].ID != first.ID.String() {
		t.Fatalf("unexpected ref %+v", refs[0])
	}
}

func TestSaveItemUpsertsUnderDeterministicID(t *testing.T) {
	svc := NewService(NewMemoryRepository(), WithClock(fixedClock()))
	ctx := context.Background()

	item, err := svc.SaveItem(ctx, SaveItemInput{
		Collection: "furniture",
		Name:       "oak-table",
		Rows:       sampleRows(),
	})
	if err != nil {
		t.Fatalf("SaveItem: %v", err)
	}
	wantID := identity.UUID("pagecraft:item:furniture:oak-table")
	if item.ID != wantID {
		t.Fatalf("expected id %s, got %s", wantID, item.ID)
	}

	rows := sampleRows()
	rows[0].ValueEN = "Walnut Table"
	again, err := svc.SaveItem(ctx, SaveItemInput{
		Collection: "furniture",
		Name:       "oak-table",
		Rows:       rows,
	})
	if err != nil {
		t.Fatalf("SaveItem again: %v", err)
	}
	if again.ID != wantID {
		t.Fatalf("expected upsert in place, got new id %s", again.ID)
	}

	items, err := svc.ListItems(ctx, "furniture")
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item after upsert, got %d", len(items))
	}
	if items[0].Rows[0].ValueEN != "Walnut Table" {
		t.Fatalf("expected updated title, got %q", items[0].Rows[0].ValueEN)
	}
}

func TestSaveItemRejectsInvalidRowsWithoutPersisting(t *testing.T) {
	svc := NewService(NewMemoryRepository(), WithClock(fixedClock()))
	ctx := context.Background()

	_, err := svc.SaveItem(ctx, SaveItemInput{
		Collection: "furniture",
		Name:       "broken",
		Rows: []pubcollections.Row{
			{Key: "title", Type: pubcollections.TypeText},
			{Key: "title", Type: pubcollections.TypeText},
		},
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var issues validation.Errors
	if !errors.As(err, &issues) {
		t.Fatalf("expected validation.Errors, got %T", err)
	}

	items, err := svc.ListItems(ctx, "furniture")
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected nothing persisted, got %d items", len(items))
	}
}

func TestGetItemRoundTripsRows(t *testing.T) {
	svc := NewService(NewMemoryRepository(), WithClock(fixedClock()))
	ctx := context.Background()

	saved, err := svc.SaveItem(ctx, SaveItemInput{
		Collection: "furniture",
		Name:       "oak-table",
		Rows:       sampleRows(),
	})
	if err != nil {
		t.Fatalf("SaveItem: %v", err)
	}

	loaded, err := svc.GetItem(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if len(loaded.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(loaded.Rows))
	}
	if loaded.Rows[0].ValueAR != "طاولة بلوط" {
		t.Fatalf("expected arabic title preserved, got %q", loaded.Rows[0].ValueAR)
	}
	if loaded.Rows[1].Type != pubcollections.TypeImage {
		t.Fatalf("expected image type preserved, got %q", loaded.Rows[1].Type)
	}
}

func TestDeleteItem(t *testing.T) {
	svc := NewService(NewMemoryRepository(), WithClock(fixedClock()))
	ctx := context.Background()

	saved, err := svc.SaveItem(ctx, SaveItemInput{
		Collection: "furniture",
		Name:       "oak-table",
		Rows:       sampleRows(),
	})
	if err != nil {
		t.Fatalf("SaveItem: %v", err)
	}
	if err := svc.DeleteItem(ctx, saved.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	if _, err := svc.GetItem(ctx, saved.ID); !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
