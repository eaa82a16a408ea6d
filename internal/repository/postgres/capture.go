package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"lingolist/internal/domain"
)

// CaptureRepo implements repository.CaptureRepository
type CaptureRepo struct {
	db *sql.DB
}

// NewCaptureRepo creates a new capture repository
func NewCaptureRepo(db *sql.DB) *CaptureRepo {
	return &CaptureRepo{db: db}
}

const captureColumns = `owner_id, capture_id, object_name, target_lang, accuracy,
	image_mime_type, image_size_bytes, status, word_id, translated_word,
	created_at, updated_at`

// Insert stores a new capture
func (r *CaptureRepo) Insert(c *domain.Capture) error {
	query := `
		INSERT INTO captures (owner_id, capture_id, object_name, target_lang, accuracy,
			image_mime_type, image_size_bytes, status, word_id, translated_word,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(query,
		c.OwnerID, c.CaptureID, c.ObjectName, c.TargetLang, c.Accuracy,
		c.ImageMimeType, c.ImageSizeBytes, c.Status, c.WordID, c.TranslatedWord,
		c.CreatedAt, c.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("capture %q: %w", c.CaptureID, domain.ErrAlreadyExists)
	}
	return err
}

// Get returns a single capture by its key
func (r *CaptureRepo) Get(ownerID, captureID string) (*domain.Capture, error) {
	query := `SELECT ` + captureColumns + ` FROM captures WHERE owner_id = $1 AND capture_id = $2`
	c, err := scanCapture(r.db.QueryRow(query, ownerID, captureID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("capture %q: %w", captureID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// SetTranslation merges translation results into an existing capture,
// leaving the other fields untouched.
func (r *CaptureRepo) SetTranslation(ownerID, captureID, wordID, translatedWord, status string, updatedAt time.Time) error {
	query := `
		UPDATE captures
		SET word_id = $3, translated_word = $4, status = $5, updated_at = $6
		WHERE owner_id = $1 AND capture_id = $2
	`
	res, err := r.db.Exec(query, ownerID, captureID, wordID, translatedWord, status, updatedAt)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("capture %q: %w", captureID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a capture
func (r *CaptureRepo) Delete(ownerID, captureID string) error {
	query := `DELETE FROM captures WHERE owner_id = $1 AND capture_id = $2`
	res, err := r.db.Exec(query, ownerID, captureID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("capture %q: %w", captureID, domain.ErrNotFound)
	}
	return nil
}

// ListByOwner returns all captures of an owner, newest first
func (r *CaptureRepo) ListByOwner(ownerID string) ([]domain.Capture, error) {
	query := `SELECT ` + captureColumns + ` FROM captures WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var captures []domain.Capture
	for rows.Next() {
		c, err := scanCapture(rows)
		if err != nil {
			return nil, err
		}
		captures = append(captures, *c)
	}
	return captures, rows.Err()
}

func scanCapture(row rowScanner) (*domain.Capture, error) {
	var c domain.Capture
	var accuracy sql.NullFloat64
	err := row.Scan(
		&c.OwnerID, &c.CaptureID, &c.ObjectName, &c.TargetLang, &accuracy,
		&c.ImageMimeType, &c.ImageSizeBytes, &c.Status, &c.WordID, &c.TranslatedWord,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if accuracy.Valid {
		c.Accuracy = &accuracy.Float64
	}
	return &c, nil
}
