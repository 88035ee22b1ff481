package contentcmd

import (
	"context"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/pagecraft-cms/pagecraft/content"
	intdocuments "github.com/pagecraft-cms/pagecraft/internal/documents"
	"github.com/pagecraft-cms/pagecraft/internal/identity"
)

func TestSaveBlockContentCommandValidation(t *testing.T) {
	msg := SaveBlockContentCommand{}
	err := msg.Validate()
	if err == nil {
		t.Fatal("expected validation error for empty command")
	}

	msg = SaveBlockContentCommand{
		PageID:    identity.PageUUID("home"),
		Region:    "main",
		Position:  0,
		BlockType: "hero",
		VariantID: "hero-minimal-text",
	}
	if err := msg.Validate(); err != nil {
		t.Fatalf("expected valid command, got %v", err)
	}
}

func TestSaveBlockContentHandlerPersistsDocument(t *testing.T) {
	repo := intdocuments.NewMemoryRepository()
	service := intdocuments.NewService(repo)
	handler := NewSaveBlockContentHandler(service)

	pageID := identity.PageUUID("home")
	err := handler.Execute(context.Background(), SaveBlockContentCommand{
		PageID:    pageID,
		Region:    "main",
		Position:  0,
		BlockType: "hero",
		VariantID: "hero-split",
		Content: content.Document{
			"title": "Welcome",
			"image": "/media/hero.jpg",
		},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	blocksOnPage, err := service.ListByPage(context.Background(), pageID)
	if err != nil {
		t.Fatalf("ListByPage: %v", err)
	}
	if len(blocksOnPage) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocksOnPage))
	}

	stored := blocksOnPage[0].Content
	en := stored.Branch(content.LocaleEN)
	ar := stored.Branch(content.LocaleAR)
	if en["title"] != "Welcome" {
		t.Fatalf("expected english title, got %v", en["title"])
	}
	if ar["image"] != "/media/hero.jpg" {
		t.Fatalf("expected shared image mirrored to arabic, got %v", ar["image"])
	}
}

func TestSaveBlockContentHandlerRejectsInvalidMessage(t *testing.T) {
	repo := intdocuments.NewMemoryRepository()
	service := intdocuments.NewService(repo)
	handler := NewSaveBlockContentHandler(service)

	err := handler.Execute(context.Background(), SaveBlockContentCommand{
		Region: "main",
	})
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}

	if _, err := service.ListByPage(context.Background(), uuid.Nil); err != nil {
		t.Fatalf("ListByPage: %v", err)
	}
}
