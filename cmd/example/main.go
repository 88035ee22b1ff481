package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	urlkit "github.com/goliatone/go-urlkit"

	pagecraft "github.com/pagecraft-cms/pagecraft"
	"github.com/pagecraft-cms/pagecraft/content"
	"github.com/pagecraft-cms/pagecraft/documents"
	"github.com/pagecraft-cms/pagecraft/pages"
)

const chairItem = `---
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
Hand carved from **walnut**, finished with natural oil.
`

func main() {
	ctx := context.Background()

	cfg := pagecraft.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Features.StrictValidation = true
	cfg.Logging.Provider = "console"
	cfg.Logging.Level = "info"

	cfg.Navigation.RouteConfig = &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "frontend",
				BaseURL: "https://example.com",
				Paths: map[string]string{
					"page": "/pages/:slug",
				},
				Groups: []urlkit.GroupConfig{
					{
						Name: "ar",
						Path: "/ar",
						Paths: map[string]string{
							"page": "/pages/:slug",
						},
					},
				},
			},
		},
	}
	cfg.Navigation.URLKit = pagecraft.URLKitResolverConfig{
		DefaultGroup: "frontend",
		LocaleGroups: map[string]string{
			"ar": "frontend.ar",
		},
		DefaultRoute: "page",
		SlugParam:    "slug",
	}

	module, err := pagecraft.New(cfg)
	if err != nil {
		log.Fatalf("initialise pagecraft: %v", err)
	}
	defer module.Close()

	page, err := module.Pages().Create(ctx, pages.CreatePageRequest{
		Slug:   "home",
		Status: "published",
		Translations: []pages.TranslationInput{
			{Locale: content.LocaleEN, Title: "Home", MetaTitle: "Home | Pagecraft"},
			{Locale: content.LocaleAR, Title: "الرئيسية", MetaTitle: "الرئيسية | بيج كرافت"},
		},
	})
	if err != nil {
		log.Fatalf("create page: %v", err)
	}

	hero, err := module.Documents().Save(ctx, documents.SaveInput{
		PageID:    page.ID,
		Region:    "main",
		Position:  0,
		BlockType: "hero",
		VariantID: "hero-minimal-text",
		Content: content.Document{
			"en": map[string]any{
				"title":    "Handmade furniture, built to last",
				"subtitle": "Crafted in small batches",
			},
			"ar": map[string]any{
				"title": "أثاث يدوي يدوم طويلا",
			},
		},
	})
	if err != nil {
		log.Fatalf("save hero block: %v", err)
	}

	contentDir, err := os.MkdirTemp("", "pagecraft-content")
	if err != nil {
		log.Fatalf("create content dir: %v", err)
	}
	defer os.RemoveAll(contentDir)
	if err := os.WriteFile(filepath.Join(contentDir, "walnut-chair.md"), []byte(chairItem), 0o644); err != nil {
		log.Fatalf("write item file: %v", err)
	}

	if err := module.ImportCollectionItems(ctx, os.DirFS(contentDir), "furniture"); err != nil {
		log.Fatalf("import collection items: %v", err)
	}

	for _, locale := range []content.Locale{content.LocaleEN, content.LocaleAR} {
		url, err := module.Pages().URL(ctx, page.ID, locale)
		if err != nil {
			log.Fatalf("resolve %s url: %v", locale, err)
		}

		resolved, err := module.Documents().GetResolved(ctx, hero.ID, locale)
		if err != nil {
			log.Fatalf("resolve %s hero: %v", locale, err)
		}

		fmt.Printf("\n%s -> %s\n", locale, url)
		if err := printJSON(resolved); err != nil {
			log.Fatalf("print %s hero: %v", locale, err)
		}
	}

	stored, err := module.Collections().ListItems(ctx, "furniture")
	if err != nil {
		log.Fatalf("list furniture items: %v", err)
	}
	fmt.Printf("\nfurniture items: %d\n", len(stored))
	for _, item := range stored {
		for _, row := range item.Rows {
			fmt.Printf("  %s [%s] en=%q ar=%q\n", row.Key, row.Type, row.ValueEN, row.ValueAR)
		}
	}
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
