package domain

import (
	"strings"
	"time"
)

// Visibility of a list.
const (
	VisibilityPrivate = "private"
	VisibilityPublic  = "public"
)

// List is a named collection of vocabulary items owned by a single user.
// The id is deterministic (slug + owner, or a synthetic prefix for
// language and imported lists), so a direct key lookup doubles as the
// uniqueness check.
type List struct {
	OwnerID      string    `json:"ownerId"`
	ListID       string    `json:"listId"`
	ListName     string    `json:"listName"`
	Description  string    `json:"description"`
	Languages    []string  `json:"languages"`
	Visibility   string    `json:"visibility"`
	IsDefault    bool      `json:"isDefault"`
	Imported     bool      `json:"imported"`
	ImportedFrom string    `json:"importedFrom,omitempty"`
	WordCount    int       `json:"wordCount"`
	CoverURL     string    `json:"coverUrl,omitempty"`
	CoverAssetID string    `json:"coverAssetId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Slug normalizes a user-supplied name into an id fragment: lowercased,
// with runs of whitespace collapsed to single underscores. Names that
// differ only by casing or spacing collide on purpose.
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}

// NewListID derives the deterministic id for a user-created list.
func NewListID(name, ownerID string) string {
	return Slug(name) + "_" + ownerID
}

// LanguageListID derives the deterministic id for the per-language
// aggregation list of an owner.
func LanguageListID(targetLang, ownerID string) string {
	return "lang_list_" + targetLang + "_" + ownerID
}

// ImportedListID derives the id of an imported copy of a shared list.
func ImportedListID(sourceListID string) string {
	return "import_" + sourceListID
}
