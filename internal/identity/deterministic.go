package identity

import (
	"strconv"
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// LocaleUUID returns the stable identifier for a locale code.
func LocaleUUID(localeCode string) uuid.UUID {
	return UUID("pagecraft:locale:" + strings.ToLower(strings.TrimSpace(localeCode)))
}

// PageUUID returns the stable identifier derived from a page slug.
func PageUUID(slug string) uuid.UUID {
	return UUID("pagecraft:page:" + strings.ToLower(strings.TrimSpace(slug)))
}

// CollectionUUID returns the stable identifier for a named collection.
func CollectionUUID(name string) uuid.UUID {
	return UUID("pagecraft:collection:" + strings.ToLower(strings.TrimSpace(name)))
}

// BlockContentUUID returns the stable identifier for a block placed on a page.
func BlockContentUUID(pageID uuid.UUID, region string, position int) uuid.UUID {
	return UUID("pagecraft:block_content:" + pageID.String() + ":" + strings.TrimSpace(region) + ":" + strconv.Itoa(position))
}
