package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"lingolist/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// Get returns a word record by id
func (r *WordRepo) Get(wordID string) (*domain.Word, error) {
	query := `SELECT word_id, original_word, translations FROM words WHERE word_id = $1`
	return r.scanWord(r.db.QueryRow(query, wordID), wordID)
}

// FindByOriginal looks the cache up by original text. A miss is not an
// error; it returns nil.
func (r *WordRepo) FindByOriginal(originalWord string) (*domain.Word, error) {
	query := `SELECT word_id, original_word, translations FROM words WHERE original_word = $1 LIMIT 1`
	word, err := r.scanWord(r.db.QueryRow(query, originalWord), originalWord)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return word, err
}

// Upsert merges one translation into the word record, creating it if
// absent. The jsonb concat keeps translations for other languages.
func (r *WordRepo) Upsert(wordID, originalWord, targetLang, translatedWord string) error {
	translations, err := json.Marshal(map[string]string{targetLang: translatedWord})
	if err != nil {
		return err
	}
	query := `
		INSERT INTO words (word_id, original_word, translations)
		VALUES ($1, $2, $3)
		ON CONFLICT (word_id) DO UPDATE
		SET translations = words.translations || EXCLUDED.translations
	`
	_, err = r.db.Exec(query, wordID, originalWord, translations)
	return err
}

func (r *WordRepo) scanWord(row rowScanner, key string) (*domain.Word, error) {
	var w domain.Word
	var translations []byte
	err := row.Scan(&w.WordID, &w.OriginalWord, &translations)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("word %q: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(translations, &w.Translations); err != nil {
		return nil, fmt.Errorf("decode translations for %q: %w", key, err)
	}
	return &w, nil
}
