package postgres

import (
	"database/sql"
	"fmt"

	"lingolist/internal/domain"
)

// ShareRepo implements repository.SharedCodeRepository
type ShareRepo struct {
	db *sql.DB
}

// NewShareRepo creates a new shared-code repository
func NewShareRepo(db *sql.DB) *ShareRepo {
	return &ShareRepo{db: db}
}

// Insert stores a freshly issued share token
func (r *ShareRepo) Insert(code *domain.SharedCode) error {
	query := `
		INSERT INTO shared_codes (shared_id, shared_code, owner_id, list_id, share_url, is_deleted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(query,
		code.SharedID, code.SharedCode, code.OwnerID, code.ListID,
		code.ShareURL, code.IsDeleted, code.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("shared code: %w", domain.ErrAlreadyExists)
	}
	return err
}

// GetByCode resolves a token. Soft-deleted rows are invisible here, so
// a token dies with its list and is never reused.
func (r *ShareRepo) GetByCode(sharedCode string) (*domain.SharedCode, error) {
	query := `
		SELECT shared_id, shared_code, owner_id, list_id, share_url, is_deleted, created_at
		FROM shared_codes
		WHERE shared_code = $1 AND is_deleted = FALSE
		LIMIT 1
	`
	var sc domain.SharedCode
	err := r.db.QueryRow(query, sharedCode).Scan(
		&sc.SharedID, &sc.SharedCode, &sc.OwnerID, &sc.ListID,
		&sc.ShareURL, &sc.IsDeleted, &sc.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("shared code: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

// SoftDeleteByList marks every token of a list deleted. Rows stay for
// the audit trail.
func (r *ShareRepo) SoftDeleteByList(ownerID, listID string) error {
	query := `UPDATE shared_codes SET is_deleted = TRUE WHERE owner_id = $1 AND list_id = $2`
	_, err := r.db.Exec(query, ownerID, listID)
	return err
}
