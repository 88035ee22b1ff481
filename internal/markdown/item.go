package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/pagecraft-cms/pagecraft/collections"
)

// ItemFile is one collection item authored as a Markdown file: the field
// schema and per-locale values live in the frontmatter, the Markdown body
// feeds a designated textarea field.
type ItemFile struct {
	Name      string
	BodyField string
	Fields    []collections.FieldSpec
	EN        map[string]string
	AR        map[string]string
	Body      []byte
}

type itemEnvelope struct {
	Name      string            `yaml:"name"`
	BodyField string            `yaml:"body_field"`
	Fields    []itemFieldSpec   `yaml:"fields"`
	EN        map[string]string `yaml:"en"`
	AR        map[string]string `yaml:"ar"`
}

type itemFieldSpec struct {
	Key  string `yaml:"key"`
	Type string `yaml:"type"`
}

// ParseItemFile extracts the frontmatter and Markdown body from a collection
// item source file.
func ParseItemFile(source []byte) (*ItemFile, error) {
	var meta itemEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, fmt.Errorf("parse item frontmatter: %w", err)
	}

	fields := make([]collections.FieldSpec, 0, len(meta.Fields))
	for _, spec := range meta.Fields {
		fields = append(fields, collections.FieldSpec{
			Key:  strings.TrimSpace(spec.Key),
			Type: collections.FieldType(strings.TrimSpace(spec.Type)),
		})
	}

	item := &ItemFile{
		Name:      meta.Name,
		BodyField: strings.TrimSpace(meta.BodyField),
		Fields:    fields,
		EN:        meta.EN,
		AR:        meta.AR,
		Body:      body,
	}
	if item.EN == nil {
		item.EN = map[string]string{}
	}
	if item.AR == nil {
		item.AR = map[string]string{}
	}
	return item, nil
}

// Rows converts the parsed file into item editor rows. When the file names a
// body field, the Markdown body is rendered to HTML and becomes that field's
// English value unless the frontmatter already set one.
func (f *ItemFile) Rows(renderer *Renderer) ([]collections.Row, error) {
	rows := make([]collections.Row, 0, len(f.Fields))
	for _, spec := range f.Fields {
		row := collections.Row{
			Key:     spec.Key,
			Type:    spec.Type,
			ValueEN: f.EN[spec.Key],
			ValueAR: f.AR[spec.Key],
		}
		if spec.Key == f.BodyField && row.ValueEN == "" && len(bytes.TrimSpace(f.Body)) > 0 {
			if renderer == nil {
				renderer = NewRenderer(RendererOptions{})
			}
			rendered, err := renderer.Render(f.Body)
			if err != nil {
				return nil, err
			}
			row.ValueEN = strings.TrimSpace(string(rendered))
		}
		rows = append(rows, row)
	}
	return rows, nil
}
