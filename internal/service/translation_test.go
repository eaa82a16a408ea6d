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

func TestTranslationService_Translate_CacheHit(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	provider := new(testutil.MockTranslatorProvider)

	wordRepo.On("FindByOriginal", "table").Return(&domain.Word{
		WordID:       "id_table",
		OriginalWord: "table",
		Translations: map[string]string{"it": "tavolo"},
	}, nil)

	svc := NewTranslationService(wordRepo, provider, testutil.NewTestLogger())

	tr, err := svc.Translate(context.Background(), "  Table ", "it")

	assert.NoError(t, err)
	assert.Equal(t, "tavolo", tr.TranslatedWord)
	assert.Equal(t, "id_table", tr.WordID)
	assert.True(t, tr.Cached)
	provider.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything)
	wordRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTranslationService_Translate_CacheMiss(t *testing.T) {
	tests := []struct {
		name         string
		existingWord *domain.Word
	}{
		{
			name: "word unknown",
		},
		{
			name: "word known but language missing",
			existingWord: &domain.Word{
				WordID:       "id_table",
				OriginalWord: "table",
				Translations: map[string]string{"de": "tisch"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wordRepo := new(testutil.MockWordRepository)
			provider := new(testutil.MockTranslatorProvider)

			wordRepo.On("FindByOriginal", "table").Return(tt.existingWord, nil)
			provider.On("Translate", mock.Anything, "table", "it").Return("tavolo", nil)
			wordRepo.On("Upsert", "id_table", "table", "it", "tavolo").Return(nil)

			svc := NewTranslationService(wordRepo, provider, testutil.NewTestLogger())

			tr, err := svc.Translate(context.Background(), "table", "it")

			assert.NoError(t, err)
			assert.Equal(t, "tavolo", tr.TranslatedWord)
			assert.False(t, tr.Cached)
			wordRepo.AssertExpectations(t)
			provider.AssertExpectations(t)
		})
	}
}

func TestTranslationService_Translate_ProviderFailure(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	provider := new(testutil.MockTranslatorProvider)

	wordRepo.On("FindByOriginal", "table").Return(nil, nil)
	provider.On("Translate", mock.Anything, "table", "it").Return("", fmt.Errorf("rate limited"))

	svc := NewTranslationService(wordRepo, provider, testutil.NewTestLogger())

	_, err := svc.Translate(context.Background(), "table", "it")

	assert.ErrorIs(t, err, domain.ErrExternalFailure)
	wordRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTranslationService_Translate_InvalidArguments(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		targetLang string
	}{
		{name: "empty text", text: "   ", targetLang: "it"},
		{name: "empty language", text: "table", targetLang: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wordRepo := new(testutil.MockWordRepository)
			provider := new(testutil.MockTranslatorProvider)

			svc := NewTranslationService(wordRepo, provider, testutil.NewTestLogger())

			_, err := svc.Translate(context.Background(), tt.text, tt.targetLang)

			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
			wordRepo.AssertNotCalled(t, "FindByOriginal", mock.Anything)
		})
	}
}
