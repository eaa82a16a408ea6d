package testutil

import (
	"context"
	"time"

	"lingolist/internal/assets"
	"lingolist/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockListRepository is a mock for ListRepository
type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) Insert(list *domain.List) error {
	args := m.Called(list)
	return args.Error(0)
}

func (m *MockListRepository) InsertIfAbsent(list *domain.List) (bool, error) {
	args := m.Called(list)
	return args.Bool(0), args.Error(1)
}

func (m *MockListRepository) Get(ownerID, listID string) (*domain.List, error) {
	args := m.Called(ownerID, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.List), args.Error(1)
}

func (m *MockListRepository) ListByOwner(ownerID string) ([]domain.List, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.List), args.Error(1)
}

func (m *MockListRepository) Delete(ownerID, listID string) error {
	args := m.Called(ownerID, listID)
	return args.Error(0)
}

func (m *MockListRepository) Rename(ownerID, listID, listName string, updatedAt time.Time) error {
	args := m.Called(ownerID, listID, listName, updatedAt)
	return args.Error(0)
}

func (m *MockListRepository) SetVisibility(ownerID, listID, visibility string, updatedAt time.Time) error {
	args := m.Called(ownerID, listID, visibility, updatedAt)
	return args.Error(0)
}

func (m *MockListRepository) SetCover(ownerID, listID, coverURL, coverAssetID string, updatedAt time.Time) error {
	args := m.Called(ownerID, listID, coverURL, coverAssetID, updatedAt)
	return args.Error(0)
}

func (m *MockListRepository) IncrementWordCount(ownerID, listID string, delta int, updatedAt time.Time) error {
	args := m.Called(ownerID, listID, delta, updatedAt)
	return args.Error(0)
}

func (m *MockListRepository) SetWordCount(ownerID, listID string, count int, updatedAt time.Time) error {
	args := m.Called(ownerID, listID, count, updatedAt)
	return args.Error(0)
}

// MockItemRepository is a mock for ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Insert(item *domain.Item) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ownerID, listID, wordID string) error {
	args := m.Called(ownerID, listID, wordID)
	return args.Error(0)
}

func (m *MockItemRepository) DeleteAll(ownerID, listID string) error {
	args := m.Called(ownerID, listID)
	return args.Error(0)
}

func (m *MockItemRepository) ListByList(ownerID, listID string) ([]domain.Item, error) {
	args := m.Called(ownerID, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) Count(ownerID, listID string) (int, error) {
	args := m.Called(ownerID, listID)
	return args.Int(0), args.Error(1)
}

func (m *MockItemRepository) InsertBatch(items []domain.Item) error {
	args := m.Called(items)
	return args.Error(0)
}

// MockSharedCodeRepository is a mock for SharedCodeRepository
type MockSharedCodeRepository struct {
	mock.Mock
}

func (m *MockSharedCodeRepository) Insert(code *domain.SharedCode) error {
	args := m.Called(code)
	return args.Error(0)
}

func (m *MockSharedCodeRepository) GetByCode(sharedCode string) (*domain.SharedCode, error) {
	args := m.Called(sharedCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SharedCode), args.Error(1)
}

func (m *MockSharedCodeRepository) SoftDeleteByList(ownerID, listID string) error {
	args := m.Called(ownerID, listID)
	return args.Error(0)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) Get(wordID string) (*domain.Word, error) {
	args := m.Called(wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) FindByOriginal(originalWord string) (*domain.Word, error) {
	args := m.Called(originalWord)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) Upsert(wordID, originalWord, targetLang, translatedWord string) error {
	args := m.Called(wordID, originalWord, targetLang, translatedWord)
	return args.Error(0)
}

// MockFlashcardRepository is a mock for FlashcardRepository
type MockFlashcardRepository struct {
	mock.Mock
}

func (m *MockFlashcardRepository) Insert(card *domain.Flashcard) error {
	args := m.Called(card)
	return args.Error(0)
}

func (m *MockFlashcardRepository) Get(ownerID, flashcardID string) (*domain.Flashcard, error) {
	args := m.Called(ownerID, flashcardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) ListByOwner(ownerID string) ([]domain.Flashcard, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) Delete(ownerID, flashcardID string) error {
	args := m.Called(ownerID, flashcardID)
	return args.Error(0)
}

// MockCaptureRepository is a mock for CaptureRepository
type MockCaptureRepository struct {
	mock.Mock
}

func (m *MockCaptureRepository) Insert(capture *domain.Capture) error {
	args := m.Called(capture)
	return args.Error(0)
}

func (m *MockCaptureRepository) Get(ownerID, captureID string) (*domain.Capture, error) {
	args := m.Called(ownerID, captureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Capture), args.Error(1)
}

func (m *MockCaptureRepository) SetTranslation(ownerID, captureID, wordID, translatedWord, status string, updatedAt time.Time) error {
	args := m.Called(ownerID, captureID, wordID, translatedWord, status, updatedAt)
	return args.Error(0)
}

func (m *MockCaptureRepository) Delete(ownerID, captureID string) error {
	args := m.Called(ownerID, captureID)
	return args.Error(0)
}

func (m *MockCaptureRepository) ListByOwner(ownerID string) ([]domain.Capture, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Capture), args.Error(1)
}

// MockAssetStore is a mock for assets.Store
type MockAssetStore struct {
	mock.Mock
}

func (m *MockAssetStore) Upload(ctx context.Context, data []byte, contentType string) (*assets.UploadResult, error) {
	args := m.Called(ctx, data, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assets.UploadResult), args.Error(1)
}

func (m *MockAssetStore) Delete(ctx context.Context, assetID string) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}

// MockTranslatorProvider is a mock for translator.Provider
type MockTranslatorProvider struct {
	mock.Mock
}

func (m *MockTranslatorProvider) Translate(ctx context.Context, text, targetLang string) (string, error) {
	args := m.Called(ctx, text, targetLang)
	return args.String(0), args.Error(1)
}

// MockLanguageListEnsurer is a mock for service.LanguageListEnsurer
type MockLanguageListEnsurer struct {
	mock.Mock
}

func (m *MockLanguageListEnsurer) EnsureLanguageList(ownerID, targetLang string) (*domain.List, bool, error) {
	args := m.Called(ownerID, targetLang)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.List), args.Bool(1), args.Error(2)
}

// MockTranslating is a mock for service.Translating
type MockTranslating struct {
	mock.Mock
}

func (m *MockTranslating) Translate(ctx context.Context, text, targetLang string) (*domain.Translation, error) {
	args := m.Called(ctx, text, targetLang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Translation), args.Error(1)
}
