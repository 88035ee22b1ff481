package pages

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// PageRecord is the storage row for a page.
type PageRecord struct {
	bun.BaseModel `bun:"table:pages,alias:p"`

	ID        uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	Slug      string     `bun:"slug,notnull" json:"slug"`
	Status    string     `bun:"status" json:"status,omitempty"`
	DeletedAt *time.Time `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Translations []*TranslationRecord `bun:"rel:has-many,join:id=page_id" json:"translations,omitempty"`
}

// TranslationRecord is the storage row for one locale of a page.
type TranslationRecord struct {
	bun.BaseModel `bun:"table:page_translations,alias:pt"`

	ID              uuid.UUID `bun:",pk,type:uuid" json:"id"`
	PageID          uuid.UUID `bun:"page_id,notnull,type:uuid" json:"page_id"`
	Locale          string    `bun:"locale,notnull" json:"locale"`
	Title           string    `bun:"title,notnull" json:"title"`
	MetaTitle       string    `bun:"meta_title" json:"meta_title,omitempty"`
	MetaDescription string    `bun:"meta_description" json:"meta_description,omitempty"`
	OGImage         string    `bun:"og_image" json:"og_image,omitempty"`
	CreatedAt       time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
