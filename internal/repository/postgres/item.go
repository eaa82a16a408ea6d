package postgres

import (
	"database/sql"
	"fmt"

	"lingolist/internal/domain"
)

// ItemRepo implements repository.ItemRepository
type ItemRepo struct {
	db *sql.DB
}

// NewItemRepo creates a new item repository
func NewItemRepo(db *sql.DB) *ItemRepo {
	return &ItemRepo{db: db}
}

const itemColumns = `owner_id, list_id, word_id, original_word, translated_word,
	translated_lang, capture_id, note, added_at`

const insertItemQuery = `
	INSERT INTO list_items (owner_id, list_id, word_id, original_word, translated_word,
		translated_lang, capture_id, note, added_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

// Insert adds one item; the primary key makes a repeated wordId a
// duplicate rather than a second row.
func (r *ItemRepo) Insert(item *domain.Item) error {
	_, err := r.db.Exec(insertItemQuery,
		item.OwnerID, item.ListID, item.WordID, item.OriginalWord, item.TranslatedWord,
		item.TranslatedLang, item.CaptureID, item.Note, item.AddedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("item %q in list %q: %w", item.WordID, item.ListID, domain.ErrAlreadyExists)
	}
	return err
}

// Delete removes one item from a list
func (r *ItemRepo) Delete(ownerID, listID, wordID string) error {
	query := `DELETE FROM list_items WHERE owner_id = $1 AND list_id = $2 AND word_id = $3`
	res, err := r.db.Exec(query, ownerID, listID, wordID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("item %q in list %q: %w", wordID, listID, domain.ErrNotFound)
	}
	return nil
}

// DeleteAll removes every item of a list, used by the delete cascade
func (r *ItemRepo) DeleteAll(ownerID, listID string) error {
	query := `DELETE FROM list_items WHERE owner_id = $1 AND list_id = $2`
	_, err := r.db.Exec(query, ownerID, listID)
	return err
}

// ListByList returns all items of a list ordered by insertion time
func (r *ItemRepo) ListByList(ownerID, listID string) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM list_items WHERE owner_id = $1 AND list_id = $2 ORDER BY added_at`
	rows, err := r.db.Query(query, ownerID, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(
			&it.OwnerID, &it.ListID, &it.WordID, &it.OriginalWord, &it.TranslatedWord,
			&it.TranslatedLang, &it.CaptureID, &it.Note, &it.AddedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Count returns the actual number of items in a list
func (r *ItemRepo) Count(ownerID, listID string) (int, error) {
	query := `SELECT COUNT(*) FROM list_items WHERE owner_id = $1 AND list_id = $2`
	var count int
	err := r.db.QueryRow(query, ownerID, listID).Scan(&count)
	return count, err
}

// InsertBatch writes all items inside one transaction. The batch is
// atomic relative to itself, not relative to any preceding list write.
func (r *ItemRepo) InsertBatch(items []domain.Item) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	for _, it := range items {
		if _, err := tx.Exec(insertItemQuery,
			it.OwnerID, it.ListID, it.WordID, it.OriginalWord, it.TranslatedWord,
			it.TranslatedLang, it.CaptureID, it.Note, it.AddedAt,
		); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
