package pages

import (
	"context"
	"errors"
	"testing"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/pagecraft-cms/pagecraft/content"
	"github.com/pagecraft-cms/pagecraft/internal/identity"
	"github.com/pagecraft-cms/pagecraft/pages"
)

func newTestService(t *testing.T, opts ...ServiceOption) *Service {
	t.Helper()
	return NewService(NewMemoryRepository(), opts...)
}

func createHome(t *testing.T, svc *Service) *pages.Page {
	t.Helper()
	page, err := svc.Create(context.Background(), pages.CreatePageRequest{
		Slug:   "Home Page",
		Status: "published",
		Translations: []pages.TranslationInput{
			{Locale: content.LocaleEN, Title: "Home", MetaTitle: "Home | PageCraft"},
			{Locale: content.LocaleAR, Title: "الرئيسية"},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return page
}

func TestCreateNormalizesSlugAndDerivesID(t *testing.T) {
	svc := newTestService(t)
	page := createHome(t, svc)

	if page.Slug != "home-page" {
		t.Fatalf("slug: %q", page.Slug)
	}
	if page.ID != identity.PageUUID("home-page") {
		t.Fatalf("id not deterministic: %s", page.ID)
	}
	if len(page.Translations) != 2 {
		t.Fatalf("translations: %d", len(page.Translations))
	}
	if tr, ok := page.Translation(content.LocaleAR); !ok || tr.Title != "الرئيسية" {
		t.Fatalf("ar translation: %+v", tr)
	}
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	svc := newTestService(t)
	createHome(t, svc)

	_, err := svc.Create(context.Background(), pages.CreatePageRequest{
		Slug: "home page",
		Translations: []pages.TranslationInput{
			{Locale: content.LocaleEN, Title: "Home again"},
		},
	})
	if !errors.Is(err, pages.ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}
}

func TestCreateRequiresEnglishTranslation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), pages.CreatePageRequest{
		Slug: "about",
		Translations: []pages.TranslationInput{
			{Locale: content.LocaleAR, Title: "من نحن"},
		},
	})
	if !errors.Is(err, pages.ErrEnglishRequired) {
		t.Fatalf("expected ErrEnglishRequired, got %v", err)
	}
}

func TestCreateRejectsDuplicateLocale(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), pages.CreatePageRequest{
		Slug: "about",
		Translations: []pages.TranslationInput{
			{Locale: content.LocaleEN, Title: "About"},
			{Locale: content.LocaleEN, Title: "About again"},
		},
	})
	if !errors.Is(err, pages.ErrDuplicateLocale) {
		t.Fatalf("expected ErrDuplicateLocale, got %v", err)
	}
}

func TestUpdateReplacesTranslations(t *testing.T) {
	svc := newTestService(t)
	page := createHome(t, svc)

	updated, err := svc.Update(context.Background(), pages.UpdatePageRequest{
		ID:     page.ID,
		Status: "draft",
		Translations: []pages.TranslationInput{
			{Locale: content.LocaleEN, Title: "Start", MetaDescription: "Landing page"},
		},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != "draft" {
		t.Fatalf("status: %q", updated.Status)
	}
	if len(updated.Translations) != 1 {
		t.Fatalf("translations after replace: %d", len(updated.Translations))
	}
	if updated.Translations[0].MetaDescription != "Landing page" {
		t.Fatalf("meta description: %q", updated.Translations[0].MetaDescription)
	}
}

func TestGetBySlugNormalizesLookup(t *testing.T) {
	svc := newTestService(t)
	createHome(t, svc)

	page, err := svc.GetBySlug(context.Background(), "Home Page")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if page.Slug != "home-page" {
		t.Fatalf("slug: %q", page.Slug)
	}
}

func TestURLBuildsLocalizedRoutes(t *testing.T) {
	manager := urlkit.NewRouteManager(&urlkit.Config{
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
	})
	resolver := NewURLKitResolver(URLKitResolverOptions{
		Manager:      manager,
		DefaultGroup: "frontend",
		LocaleGroups: map[content.Locale]string{
			content.LocaleAR: "frontend.ar",
		},
	})

	svc := newTestService(t, WithURLResolver(resolver))
	page := createHome(t, svc)

	enURL, err := svc.URL(context.Background(), page.ID, content.LocaleEN)
	if err != nil {
		t.Fatalf("en url: %v", err)
	}
	if enURL != "https://example.com/pages/home-page" {
		t.Fatalf("en url: %q", enURL)
	}

	arURL, err := svc.URL(context.Background(), page.ID, content.LocaleAR)
	if err != nil {
		t.Fatalf("ar url: %v", err)
	}
	if arURL != "https://example.com/ar/pages/home-page" {
		t.Fatalf("ar url: %q", arURL)
	}
}

func TestURLWithoutResolver(t *testing.T) {
	svc := newTestService(t)
	page := createHome(t, svc)

	if _, err := svc.URL(context.Background(), page.ID, content.LocaleEN); !errors.Is(err, pages.ErrURLResolverMissing) {
		t.Fatalf("expected ErrURLResolverMissing, got %v", err)
	}
}
