package domain

import "time"

// SharedCode maps an opaque token to an (owner, list) pair. The token
// carries no structure; resolving it always goes through the registry.
// Rows are soft-deleted so a token is never reused.
type SharedCode struct {
	SharedID   string    `json:"sharedId"`
	SharedCode string    `json:"sharedCode"`
	OwnerID    string    `json:"ownerId"`
	ListID     string    `json:"listId"`
	ShareURL   string    `json:"shareUrl"`
	IsDeleted  bool      `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SharedList is the read-only view handed to anyone holding a valid
// share token.
type SharedList struct {
	OwnerID string `json:"ownerId"`
	List    *List  `json:"list"`
	Items   []Item `json:"items"`
}

// ImportResult reports the outcome of cloning a shared list.
type ImportResult struct {
	ImportedListID string `json:"importedListId"`
	ItemCount      int    `json:"itemCount"`
}
