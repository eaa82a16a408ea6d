package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"lingolist/internal/domain"

	"github.com/lib/pq"
)

// ListRepo implements repository.ListRepository
type ListRepo struct {
	db *sql.DB
}

// NewListRepo creates a new list repository
func NewListRepo(db *sql.DB) *ListRepo {
	return &ListRepo{db: db}
}

const listColumns = `owner_id, list_id, list_name, description, languages, visibility,
	is_default, imported, imported_from, word_count, cover_url, cover_asset_id,
	created_at, updated_at`

// Insert stores a new list; a colliding deterministic id means a list
// with the same normalized name already exists.
func (r *ListRepo) Insert(list *domain.List) error {
	query := `
		INSERT INTO lists (owner_id, list_id, list_name, description, languages, visibility,
			is_default, imported, imported_from, word_count, cover_url, cover_asset_id,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.Exec(query,
		list.OwnerID, list.ListID, list.ListName, list.Description,
		pq.Array(list.Languages), list.Visibility, list.IsDefault, list.Imported,
		nullString(list.ImportedFrom), list.WordCount, list.CoverURL, list.CoverAssetID,
		list.CreatedAt, list.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("list %q: %w", list.ListID, domain.ErrAlreadyExists)
	}
	return err
}

// InsertIfAbsent creates the list unless its id is already taken.
func (r *ListRepo) InsertIfAbsent(list *domain.List) (bool, error) {
	query := `
		INSERT INTO lists (owner_id, list_id, list_name, description, languages, visibility,
			is_default, imported, imported_from, word_count, cover_url, cover_asset_id,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (owner_id, list_id) DO NOTHING
	`
	res, err := r.db.Exec(query,
		list.OwnerID, list.ListID, list.ListName, list.Description,
		pq.Array(list.Languages), list.Visibility, list.IsDefault, list.Imported,
		nullString(list.ImportedFrom), list.WordCount, list.CoverURL, list.CoverAssetID,
		list.CreatedAt, list.UpdatedAt,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Get returns a single list by its key
func (r *ListRepo) Get(ownerID, listID string) (*domain.List, error) {
	query := `SELECT ` + listColumns + ` FROM lists WHERE owner_id = $1 AND list_id = $2`
	list, err := scanList(r.db.QueryRow(query, ownerID, listID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("list %q: %w", listID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ListByOwner returns all lists of an owner
func (r *ListRepo) ListByOwner(ownerID string) ([]domain.List, error) {
	query := `SELECT ` + listColumns + ` FROM lists WHERE owner_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []domain.List
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, *list)
	}
	return lists, rows.Err()
}

// Delete removes the list document itself; cascading is the service's job
func (r *ListRepo) Delete(ownerID, listID string) error {
	query := `DELETE FROM lists WHERE owner_id = $1 AND list_id = $2`
	return r.execExpectingRow(query, listID, ownerID, listID)
}

// Rename updates the display name, leaving the deterministic id alone
func (r *ListRepo) Rename(ownerID, listID, listName string, updatedAt time.Time) error {
	query := `UPDATE lists SET list_name = $3, updated_at = $4 WHERE owner_id = $1 AND list_id = $2`
	return r.execExpectingRow(query, listID, ownerID, listID, listName, updatedAt)
}

// SetVisibility flips a list between private and public
func (r *ListRepo) SetVisibility(ownerID, listID, visibility string, updatedAt time.Time) error {
	query := `UPDATE lists SET visibility = $3, updated_at = $4 WHERE owner_id = $1 AND list_id = $2`
	return r.execExpectingRow(query, listID, ownerID, listID, visibility, updatedAt)
}

// SetCover records the uploaded cover asset on the list
func (r *ListRepo) SetCover(ownerID, listID, coverURL, coverAssetID string, updatedAt time.Time) error {
	query := `UPDATE lists SET cover_url = $3, cover_asset_id = $4, updated_at = $5 WHERE owner_id = $1 AND list_id = $2`
	return r.execExpectingRow(query, listID, ownerID, listID, coverURL, coverAssetID, updatedAt)
}

// IncrementWordCount adjusts the cached counter in a single atomic
// statement, so concurrent adders cannot lose an increment.
func (r *ListRepo) IncrementWordCount(ownerID, listID string, delta int, updatedAt time.Time) error {
	query := `UPDATE lists SET word_count = word_count + $3, updated_at = $4 WHERE owner_id = $1 AND list_id = $2`
	return r.execExpectingRow(query, listID, ownerID, listID, delta, updatedAt)
}

// SetWordCount overwrites the cached counter, used when reconciling it
// against an actual item count.
func (r *ListRepo) SetWordCount(ownerID, listID string, count int, updatedAt time.Time) error {
	query := `UPDATE lists SET word_count = $3, updated_at = $4 WHERE owner_id = $1 AND list_id = $2`
	return r.execExpectingRow(query, listID, ownerID, listID, count, updatedAt)
}

func (r *ListRepo) execExpectingRow(query, listID string, args ...interface{}) error {
	res, err := r.db.Exec(query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("list %q: %w", listID, domain.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanList(row rowScanner) (*domain.List, error) {
	var l domain.List
	var importedFrom sql.NullString
	err := row.Scan(
		&l.OwnerID, &l.ListID, &l.ListName, &l.Description,
		pq.Array(&l.Languages), &l.Visibility, &l.IsDefault, &l.Imported,
		&importedFrom, &l.WordCount, &l.CoverURL, &l.CoverAssetID,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if importedFrom.Valid {
		l.ImportedFrom = importedFrom.String
	}
	return &l, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
