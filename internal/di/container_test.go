package di

import (
	"context"
	"testing"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/pagecraft-cms/pagecraft/content"
	"github.com/pagecraft-cms/pagecraft/documents"
	"github.com/pagecraft-cms/pagecraft/internal/identity"
	"github.com/pagecraft-cms/pagecraft/internal/runtimeconfig"
	"github.com/pagecraft-cms/pagecraft/pages"
)

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.DefaultLocale = "fr"

	if _, err := NewContainer(cfg); err == nil {
		t.Fatal("expected config validation error")
	}
}

func TestContainerWiresMemoryServices(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	defer container.Close()

	if container.DocumentService() == nil {
		t.Fatal("expected document service")
	}
	if container.PageService() == nil {
		t.Fatal("expected page service")
	}
	if container.CollectionService() == nil {
		t.Fatal("expected collection service")
	}
	if container.Registry() == nil {
		t.Fatal("expected block registry")
	}

	ctx := context.Background()
	saved, err := container.DocumentService().Save(ctx, documents.SaveInput{
		PageID:    identity.PageUUID("home"),
		Region:    "main",
		Position:  0,
		BlockType: "hero",
		VariantID: "hero-minimal-text",
		Content:   content.Document{"title": "Hi"},
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID != identity.BlockContentUUID(identity.PageUUID("home"), "main", 0) {
		t.Fatalf("unexpected id %s", saved.ID)
	}
}

func TestContainerConfiguresNavigation(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Navigation.RouteConfig = &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "frontend",
				BaseURL: "https://example.com",
				Paths:   map[string]string{"page": "/pages/:slug"},
				Groups: []urlkit.GroupConfig{
					{
						Name:  "ar",
						Path:  "/ar",
						Paths: map[string]string{"page": "/pages/:slug"},
					},
				},
			},
		},
	}
	cfg.Navigation.URLKit = runtimeconfig.URLKitResolverConfig{
		DefaultGroup: "frontend",
		LocaleGroups: map[string]string{"ar": "frontend.ar"},
		DefaultRoute: "page",
		SlugParam:    "slug",
	}

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	defer container.Close()

	if container.RouteManager() == nil {
		t.Fatal("expected route manager")
	}

	ctx := context.Background()
	page, err := container.PageService().Create(ctx, pages.CreatePageRequest{
		Slug: "home",
		Translations: []pages.TranslationInput{
			{Locale: content.LocaleEN, Title: "Home"},
			{Locale: content.LocaleAR, Title: "الرئيسية"},
		},
	})
	if err != nil {
		t.Fatalf("Create page: %v", err)
	}

	arURL, err := container.PageService().URL(ctx, page.ID, content.LocaleAR)
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if arURL != "https://example.com/ar/pages/home" {
		t.Fatalf("unexpected arabic url %q", arURL)
	}
}
