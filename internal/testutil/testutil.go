package testutil

import (
	"time"

	"lingolist/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestList creates a test list
func NewTestList(ownerID, listName string) *domain.List {
	now := time.Now().UTC()
	return &domain.List{
		OwnerID:    ownerID,
		ListID:     domain.NewListID(listName, ownerID),
		ListName:   listName,
		Visibility: domain.VisibilityPrivate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NewTestItem creates a test item
func NewTestItem(ownerID, listID, wordID, original, translated, lang string) domain.Item {
	return domain.Item{
		OwnerID:        ownerID,
		ListID:         listID,
		WordID:         wordID,
		OriginalWord:   original,
		TranslatedWord: translated,
		TranslatedLang: lang,
		AddedAt:        time.Now().UTC(),
	}
}

// NewTestCapture creates a translated test capture
func NewTestCapture(ownerID, objectName, targetLang string) *domain.Capture {
	now := time.Now().UTC()
	return &domain.Capture{
		OwnerID:    ownerID,
		CaptureID:  domain.NewCaptureID(objectName, targetLang, ownerID),
		ObjectName: domain.Slug(objectName),
		TargetLang: targetLang,
		Status:     domain.CaptureStatusTranslated,
		WordID:     domain.NewWordID(objectName),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NewTestSharedCode creates a test shared code
func NewTestSharedCode(code, ownerID, listID string) *domain.SharedCode {
	return &domain.SharedCode{
		SharedID:   "shared-" + code,
		SharedCode: code,
		OwnerID:    ownerID,
		ListID:     listID,
		ShareURL:   "https://lists.example.com/shared/" + code,
		CreatedAt:  time.Now().UTC(),
	}
}
