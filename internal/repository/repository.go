package repository

import (
	"time"

	"lingolist/internal/domain"
)

// ListRepository defines list document operations
type ListRepository interface {
	Insert(list *domain.List) error
	// InsertIfAbsent is the conditional-create used for language lists:
	// the deterministic id makes a lost race an overwrite-free no-op.
	InsertIfAbsent(list *domain.List) (created bool, err error)
	Get(ownerID, listID string) (*domain.List, error)
	ListByOwner(ownerID string) ([]domain.List, error)
	Delete(ownerID, listID string) error
	Rename(ownerID, listID, listName string, updatedAt time.Time) error
	SetVisibility(ownerID, listID, visibility string, updatedAt time.Time) error
	SetCover(ownerID, listID, coverURL, coverAssetID string, updatedAt time.Time) error
	// IncrementWordCount applies the store's atomic counter primitive;
	// never read-then-write the cached count.
	IncrementWordCount(ownerID, listID string, delta int, updatedAt time.Time) error
	SetWordCount(ownerID, listID string, count int, updatedAt time.Time) error
}

// ItemRepository defines item operations nested under a list
type ItemRepository interface {
	Insert(item *domain.Item) error
	Delete(ownerID, listID, wordID string) error
	DeleteAll(ownerID, listID string) error
	ListByList(ownerID, listID string) ([]domain.Item, error)
	Count(ownerID, listID string) (int, error)
	// InsertBatch writes all items in a single transaction, the batched
	// multi-write primitive used by import.
	InsertBatch(items []domain.Item) error
}

// SharedCodeRepository defines share-token registry operations
type SharedCodeRepository interface {
	Insert(code *domain.SharedCode) error
	GetByCode(sharedCode string) (*domain.SharedCode, error)
	SoftDeleteByList(ownerID, listID string) error
}

// WordRepository defines translation-cache operations
type WordRepository interface {
	Get(wordID string) (*domain.Word, error)
	FindByOriginal(originalWord string) (*domain.Word, error)
	Upsert(wordID, originalWord, targetLang, translatedWord string) error
}

// FlashcardRepository defines flashcard operations
type FlashcardRepository interface {
	Insert(card *domain.Flashcard) error
	Get(ownerID, flashcardID string) (*domain.Flashcard, error)
	ListByOwner(ownerID string) ([]domain.Flashcard, error)
	Delete(ownerID, flashcardID string) error
}

// CaptureRepository defines capture operations
type CaptureRepository interface {
	Insert(capture *domain.Capture) error
	Get(ownerID, captureID string) (*domain.Capture, error)
	SetTranslation(ownerID, captureID, wordID, translatedWord, status string, updatedAt time.Time) error
	Delete(ownerID, captureID string) error
	ListByOwner(ownerID string) ([]domain.Capture, error)
}
