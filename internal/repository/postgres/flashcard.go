package postgres

import (
	"database/sql"
	"fmt"

	"lingolist/internal/domain"
)

// FlashcardRepo implements repository.FlashcardRepository
type FlashcardRepo struct {
	db *sql.DB
}

// NewFlashcardRepo creates a new flashcard repository
func NewFlashcardRepo(db *sql.DB) *FlashcardRepo {
	return &FlashcardRepo{db: db}
}

const flashcardColumns = `owner_id, flashcard_id, capture_id, word_id, original_text,
	translated_text, target_lang, description, created_at`

// Insert stores a new flashcard; the deterministic id makes a second
// card for the same capture a duplicate.
func (r *FlashcardRepo) Insert(card *domain.Flashcard) error {
	query := `
		INSERT INTO flashcards (owner_id, flashcard_id, capture_id, word_id, original_text,
			translated_text, target_lang, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(query,
		card.OwnerID, card.FlashcardID, card.CaptureID, card.WordID, card.OriginalText,
		card.TranslatedText, card.TargetLang, card.Description, card.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("flashcard %q: %w", card.FlashcardID, domain.ErrAlreadyExists)
	}
	return err
}

// Get returns a single flashcard by its key
func (r *FlashcardRepo) Get(ownerID, flashcardID string) (*domain.Flashcard, error) {
	query := `SELECT ` + flashcardColumns + ` FROM flashcards WHERE owner_id = $1 AND flashcard_id = $2`
	card, err := scanFlashcard(r.db.QueryRow(query, ownerID, flashcardID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("flashcard %q: %w", flashcardID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return card, nil
}

// ListByOwner returns all flashcards of an owner, newest first
func (r *FlashcardRepo) ListByOwner(ownerID string) ([]domain.Flashcard, error) {
	query := `SELECT ` + flashcardColumns + ` FROM flashcards WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []domain.Flashcard
	for rows.Next() {
		card, err := scanFlashcard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *card)
	}
	return cards, rows.Err()
}

// Delete removes a flashcard
func (r *FlashcardRepo) Delete(ownerID, flashcardID string) error {
	query := `DELETE FROM flashcards WHERE owner_id = $1 AND flashcard_id = $2`
	res, err := r.db.Exec(query, ownerID, flashcardID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("flashcard %q: %w", flashcardID, domain.ErrNotFound)
	}
	return nil
}

func scanFlashcard(row rowScanner) (*domain.Flashcard, error) {
	var f domain.Flashcard
	err := row.Scan(
		&f.OwnerID, &f.FlashcardID, &f.CaptureID, &f.WordID, &f.OriginalText,
		&f.TranslatedText, &f.TargetLang, &f.Description, &f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
