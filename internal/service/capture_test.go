package service

import (
	"context"
	"fmt"
	"testing"

	"lingolist/internal/domain"
	"lingolist/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCaptureService_Create(t *testing.T) {
	captureRepo := new(testutil.MockCaptureRepository)
	translation := new(testutil.MockTranslating)

	captureID := domain.NewCaptureID("Red Table", "it", "uid1")
	captureRepo.On("Insert", mock.MatchedBy(func(c *domain.Capture) bool {
		return c.CaptureID == captureID &&
			c.ObjectName == "red_table" &&
			c.Status == domain.CaptureStatusPending
	})).Return(nil)
	translation.On("Translate", mock.Anything, "red_table", "it").Return(&domain.Translation{
		WordID:         "id_red_table",
		OriginalWord:   "red_table",
		TranslatedWord: "tavolo rosso",
		TargetLang:     "it",
	}, nil)
	captureRepo.On("SetTranslation", "uid1", captureID, "id_red_table", "tavolo rosso",
		domain.CaptureStatusTranslated, mock.Anything).Return(nil)

	svc := NewCaptureService(captureRepo, translation, testutil.NewTestLogger())

	capture, err := svc.Create(context.Background(), "uid1", "Red Table", "it", nil, "image/jpeg", 1024)

	assert.NoError(t, err)
	assert.Equal(t, captureID, capture.CaptureID)
	assert.Equal(t, "tavolo rosso", capture.TranslatedWord)
	assert.Equal(t, domain.CaptureStatusTranslated, capture.Status)
	captureRepo.AssertExpectations(t)
	translation.AssertExpectations(t)
}

func TestCaptureService_Create_IdempotentForSameObject(t *testing.T) {
	captureRepo := new(testutil.MockCaptureRepository)
	translation := new(testutil.MockTranslating)

	existing := testutil.NewTestCapture("uid1", "table", "it")
	captureRepo.On("Insert", mock.Anything).Return(fmt.Errorf("capture: %w", domain.ErrAlreadyExists))
	captureRepo.On("Get", "uid1", existing.CaptureID).Return(existing, nil)

	svc := NewCaptureService(captureRepo, translation, testutil.NewTestLogger())

	capture, err := svc.Create(context.Background(), "uid1", "table", "it", nil, "image/jpeg", 1024)

	assert.NoError(t, err)
	assert.Same(t, existing, capture)
	// The existing capture is returned as-is, no second translation.
	translation.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything)
}

func TestCaptureService_Create_RetryFinishesPendingTranslation(t *testing.T) {
	captureRepo := new(testutil.MockCaptureRepository)
	translation := new(testutil.MockTranslating)

	pending := testutil.NewTestCapture("uid1", "table", "it")
	pending.Status = domain.CaptureStatusPending
	pending.WordID = ""
	pending.TranslatedWord = ""

	captureRepo.On("Insert", mock.Anything).Return(fmt.Errorf("capture: %w", domain.ErrAlreadyExists))
	captureRepo.On("Get", "uid1", pending.CaptureID).Return(pending, nil)
	translation.On("Translate", mock.Anything, "table", "it").Return(&domain.Translation{
		WordID:         "id_table",
		OriginalWord:   "table",
		TranslatedWord: "tavolo",
		TargetLang:     "it",
	}, nil)
	captureRepo.On("SetTranslation", "uid1", pending.CaptureID, "id_table", "tavolo",
		domain.CaptureStatusTranslated, mock.Anything).Return(nil)

	svc := NewCaptureService(captureRepo, translation, testutil.NewTestLogger())

	capture, err := svc.Create(context.Background(), "uid1", "table", "it", nil, "image/jpeg", 1024)

	assert.NoError(t, err)
	assert.Equal(t, domain.CaptureStatusTranslated, capture.Status)
	assert.Equal(t, "tavolo", capture.TranslatedWord)
	captureRepo.AssertExpectations(t)
	translation.AssertExpectations(t)
}

func TestCaptureService_Create_TranslationFailure(t *testing.T) {
	captureRepo := new(testutil.MockCaptureRepository)
	translation := new(testutil.MockTranslating)

	captureRepo.On("Insert", mock.Anything).Return(nil)
	translation.On("Translate", mock.Anything, "table", "it").
		Return(nil, fmt.Errorf("translate: %w", domain.ErrExternalFailure))

	svc := NewCaptureService(captureRepo, translation, testutil.NewTestLogger())

	_, err := svc.Create(context.Background(), "uid1", "table", "it", nil, "image/jpeg", 1024)

	assert.ErrorIs(t, err, domain.ErrExternalFailure)
	// The capture row stays pending for a later retry.
	captureRepo.AssertNotCalled(t, "SetTranslation",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCaptureService_Create_InvalidArguments(t *testing.T) {
	tests := []struct {
		name       string
		ownerID    string
		objectName string
		targetLang string
	}{
		{name: "no owner", objectName: "table", targetLang: "it"},
		{name: "no object name", ownerID: "uid1", objectName: "  ", targetLang: "it"},
		{name: "no target language", ownerID: "uid1", objectName: "table"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureRepo := new(testutil.MockCaptureRepository)
			translation := new(testutil.MockTranslating)

			svc := NewCaptureService(captureRepo, translation, testutil.NewTestLogger())

			_, err := svc.Create(context.Background(), tt.ownerID, tt.objectName, tt.targetLang, nil, "", 0)

			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
			captureRepo.AssertNotCalled(t, "Insert", mock.Anything)
		})
	}
}

func TestCaptureService_Delete(t *testing.T) {
	captureRepo := new(testutil.MockCaptureRepository)
	captureRepo.On("Delete", "uid1", "cap1").Return(nil)

	svc := NewCaptureService(captureRepo, new(testutil.MockTranslating), testutil.NewTestLogger())

	assert.NoError(t, svc.Delete("uid1", "cap1"))
	captureRepo.AssertExpectations(t)
}
