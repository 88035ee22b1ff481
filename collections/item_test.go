package collections

import (
	"encoding/json"
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/pagecraft-cms/pagecraft/content"
)

func sampleRows() []Row {
	return []Row{
		{Key: "name", Type: TypeText, ValueEN: "Novella Chair", ValueAR: "كرسي نوفيلا"},
		{Key: "description", Type: TypeTextarea, ValueEN: "Solid oak.", ValueAR: "بلوط صلب."},
		{Key: "photo", Type: TypeImage, ValueEN: "https://cdn.example.com/chair.jpg"},
	}
}

func TestBuildDocumentAttachesSchemaToBothBranches(t *testing.T) {
	doc, err := BuildDocument(sampleRows())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	for _, locale := range []content.Locale{content.LocaleEN, content.LocaleAR} {
		branch := doc.Branch(locale)
		schema, ok := branch[SchemaKey].([]FieldSpec)
		if !ok {
			t.Fatalf("%s: _schema is %T", locale, branch[SchemaKey])
		}
		if len(schema) != 3 {
			t.Fatalf("%s: schema length %d", locale, len(schema))
		}
		if schema[0] != (FieldSpec{Key: "name", Type: TypeText}) {
			t.Fatalf("%s: schema[0] = %#v", locale, schema[0])
		}
	}

	if got := doc.Branch(content.LocaleEN)["name"]; got != "Novella Chair" {
		t.Fatalf("en name: %v", got)
	}
	if got := doc.Branch(content.LocaleAR)["name"]; got != "كرسي نوفيلا" {
		t.Fatalf("ar name: %v", got)
	}
}

func TestBuildDocumentRejectsMissingKey(t *testing.T) {
	_, err := BuildDocument([]Row{{Key: "", Type: TypeText}})
	var errs validation.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected validation.Errors, got %v", err)
	}
	if _, ok := errs["0"]; !ok {
		t.Fatalf("expected failure on row 0, got %v", errs)
	}
}

func TestBuildDocumentRejectsDuplicateKeys(t *testing.T) {
	_, err := BuildDocument([]Row{
		{Key: "name", Type: TypeText},
		{Key: "name", Type: TypeText},
	})
	var errs validation.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected validation.Errors, got %v", err)
	}
	if _, ok := errs["1"]; !ok {
		t.Fatalf("expected failure on row 1, got %v", errs)
	}
}

func TestBuildDocumentRejectsUnknownType(t *testing.T) {
	_, err := BuildDocument([]Row{{Key: "name", Type: FieldType("select")}})
	var errs validation.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected validation.Errors, got %v", err)
	}
}

func TestParseDocumentRoundTrip(t *testing.T) {
	doc, err := BuildDocument(sampleRows())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	rows, err := ParseDocument(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows: %d", len(rows))
	}
	if rows[0] != sampleRows()[0] {
		t.Fatalf("row 0: %#v", rows[0])
	}
}

func TestParseDocumentAfterJSONRoundTrip(t *testing.T) {
	doc, err := BuildDocument(sampleRows())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var stored content.Document
	if err := json.Unmarshal(raw, &stored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	rows, err := ParseDocument(stored)
	if err != nil {
		t.Fatalf("parse stored: %v", err)
	}
	if rows[2].Key != "photo" || rows[2].Type != TypeImage {
		t.Fatalf("row 2: %#v", rows[2])
	}
	if rows[0].ValueAR != "كرسي نوفيلا" {
		t.Fatalf("row 0 ar value: %q", rows[0].ValueAR)
	}
}

func TestParseDocumentLegacyFlat(t *testing.T) {
	doc := content.Document{
		SchemaKey: []any{
			map[string]any{"key": "name", "type": "text"},
			map[string]any{"key": "photo", "type": "image"},
		},
		"name":  "Legacy Chair",
		"photo": "https://cdn.example.com/legacy.jpg",
	}

	rows, err := ParseDocument(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows: %d", len(rows))
	}
	if rows[0].ValueEN != "Legacy Chair" || rows[0].ValueAR != "Legacy Chair" {
		t.Fatalf("flat values should feed both sides: %#v", rows[0])
	}
	if rows[1].Type != TypeImage {
		t.Fatalf("rows[1] type: %v", rows[1].Type)
	}
}

func TestParseDocumentWithoutSchema(t *testing.T) {
	doc := content.Document{
		"en": map[string]any{"name": "x"},
		"ar": map[string]any{},
	}
	if _, err := ParseDocument(doc); !errors.Is(err, ErrSchemaMissing) {
		t.Fatalf("expected ErrSchemaMissing, got %v", err)
	}
}

func TestResolveValueSharedTypeReadsEnglish(t *testing.T) {
	doc, err := BuildDocument(sampleRows())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if got := ResolveValue(doc, "photo", content.LocaleAR); got != "https://cdn.example.com/chair.jpg" {
		t.Fatalf("shared field did not read english: %q", got)
	}
	if got := ResolveValue(doc, "name", content.LocaleAR); got != "كرسي نوفيلا" {
		t.Fatalf("text field ar: %q", got)
	}
	if got := ResolveValue(doc, "name", content.LocaleEN); got != "Novella Chair" {
		t.Fatalf("text field en: %q", got)
	}
}
